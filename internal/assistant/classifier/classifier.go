package classifier

import (
	"strings"

	"luna-assistant/internal/model"
	"luna-assistant/pkg/textnorm"
)

// Classifier turns free text plus app context into an Intent. It is pure
// and deterministic: identical (text, context) pairs always produce the
// identical Intent, and classification never fails. The worst case is a
// low-confidence general/help intent.
type Classifier struct{}

// New creates a new Classifier.
// Convention: Factory function returns concrete type (not interface) for internal packages.
func New() *Classifier {
	return &Classifier{}
}

// fallbackIntent is returned when the input carries no usable signal.
func fallbackIntent() model.Intent {
	return model.Intent{
		Category:   model.CategoryGeneral,
		Action:     model.ActionHelp,
		Confidence: FallbackConfidence,
	}
}

// Classify scores every intent template against the folded input and picks
// the winner. When the top-two margin is below ScoreMarginDelta, the module
// disambiguation table decides; otherwise the keyword score wins outright.
func (c *Classifier) Classify(text string, appCtx model.AppContext) model.Intent {
	folded := textnorm.Fold(text)
	if folded == "" {
		return fallbackIntent()
	}

	// Stopword-only input carries no intent signal.
	if len(textnorm.SignalTokens(text)) == 0 {
		return fallbackIntent()
	}

	tokens := make(map[string]struct{})
	for _, tok := range textnorm.Tokenize(text) {
		tokens[tok] = struct{}{}
	}

	scores := make([]float64, len(templates))
	bestIdx, secondScore := -1, 0.0
	for i, tpl := range templates {
		scores[i] = scoreTemplate(tpl, folded, tokens)
		if bestIdx < 0 || scores[i] > scores[bestIdx] {
			if bestIdx >= 0 {
				secondScore = scores[bestIdx]
			}
			bestIdx = i
		} else if scores[i] > secondScore {
			secondScore = scores[i]
		}
	}

	best := templates[bestIdx]
	bestScore := scores[bestIdx]
	if bestScore < MinSignalScore {
		return fallbackIntent()
	}

	boost := 0.0
	if bestScore-secondScore < ScoreMarginDelta {
		if winner, ok := resolveByModule(appCtx.CurrentModule, scores); ok {
			best = templates[winner]
			bestScore = scores[winner]
			boost = ContextBoost
		}
	}

	return model.Intent{
		Category:   best.category,
		Action:     best.action,
		Confidence: confidence(bestScore, boost),
	}
}

// resolveByModule picks the best-scoring template of the category implied
// by the current module. Returns false when the module maps to nothing or
// none of its templates scored.
func resolveByModule(module model.Module, scores []float64) (int, bool) {
	category, ok := moduleCategories[module]
	if !ok {
		return 0, false
	}

	winner, winnerScore := -1, 0.0
	for i, tpl := range templates {
		if tpl.category != category {
			continue
		}
		if scores[i] > winnerScore {
			winner, winnerScore = i, scores[i]
		}
	}

	if winner < 0 {
		return 0, false
	}
	return winner, true
}

// scoreTemplate sums the weighted signals of one template against the input.
func scoreTemplate(tpl template, folded string, tokens map[string]struct{}) float64 {
	score := 0.0
	padded := " " + folded + " "

	for _, phrase := range tpl.phrases {
		if strings.Contains(padded, " "+phrase+" ") {
			score += WeightPhrase
			break // one phrase hit is enough evidence of its kind
		}
	}

	for _, kw := range tpl.keywords {
		if _, ok := tokens[kw]; ok {
			score += WeightKeyword
		}
	}

	for _, pattern := range tpl.patterns {
		if pattern.MatchString(folded) {
			score += WeightPattern
			break
		}
	}

	return score
}

// confidence maps a raw score into [FallbackConfidence, MaxConfidence].
func confidence(score, boost float64) float64 {
	conf := BaseConfidence + ConfidenceSlope*score + boost
	if conf > MaxConfidence {
		conf = MaxConfidence
	}
	if conf < FallbackConfidence {
		conf = FallbackConfidence
	}
	return conf
}
