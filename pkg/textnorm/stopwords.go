package textnorm

// stopwords covers the supported input languages (en, es, fr, de, pt),
// stored in folded form.
var stopwords = map[string]struct{}{
	// English
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {}, "to": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "it": {}, "this": {}, "that": {},
	"my": {}, "me": {}, "i": {}, "you": {}, "and": {}, "or": {}, "for": {},
	"do": {}, "does": {}, "can": {}, "could": {}, "would": {}, "please": {},
	// Spanish
	"el": {}, "la": {}, "los": {}, "las": {}, "un": {}, "una": {}, "es": {},
	"de": {}, "en": {}, "mi": {}, "por": {}, "que": {}, "y": {},
	// French
	"le": {}, "les": {}, "une": {}, "du": {}, "des": {}, "est": {}, "je": {},
	"mon": {}, "ma": {}, "et": {}, "pour": {},
	// German
	"der": {}, "die": {}, "das": {}, "ein": {}, "eine": {}, "ist": {},
	"ich": {}, "mein": {}, "und": {}, "fur": {},
	// Portuguese
	"o": {}, "os": {}, "as": {}, "um": {}, "uma": {}, "e": {}, "em": {},
	"meu": {}, "minha": {}, "para": {},
}

// IsStopword reports whether a folded token carries no intent signal.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// SignalTokens returns the tokens of the input that are not stopwords.
func SignalTokens(s string) []string {
	tokens := Tokenize(s)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !IsStopword(tok) {
			out = append(out, tok)
		}
	}
	return out
}
