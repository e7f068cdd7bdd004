package capability

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"luna-assistant/internal/model"
	"luna-assistant/pkg/mathexpr"
)

// Calculator evaluates arithmetic found in the utterance. Results depend
// only on the input, so they are safe to cache.
type Calculator struct{}

// NewCalculator creates the calculator capability.
func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Name() string { return "calculator" }

func (c *Calculator) Patterns() []Pattern {
	return []Pattern{
		{Category: model.CategoryGeneral, Action: model.ActionCalculate},
	}
}

func (c *Calculator) MaxExecutionTime() time.Duration { return 10 * time.Millisecond }

func (c *Calculator) Cacheable() bool { return true }

// exprWord accepts a word made of digits, operators and parentheses.
var exprWord = regexp.MustCompile(`^[0-9.()+\-*/x×÷,]+$`)

var hasDigit = regexp.MustCompile(`\d`)

// extractExpression pulls the longest run of arithmetic words out of the
// utterance, so "Calculate 25 * 8 for me" yields "25 * 8".
func extractExpression(input string) string {
	words := strings.Fields(input)

	best, current := []string(nil), []string(nil)
	flush := func() {
		if len(current) > len(best) && hasDigit.MatchString(strings.Join(current, " ")) {
			best = current
		}
		current = nil
	}

	for _, w := range words {
		if exprWord.MatchString(w) {
			current = append(current, w)
			continue
		}
		flush()
	}
	flush()

	return strings.Join(best, " ")
}

func (c *Calculator) Execute(input string, appCtx model.AppContext) (Output, error) {
	expr := extractExpression(input)
	if expr == "" {
		return Output{}, fmt.Errorf("no arithmetic expression in %q", input)
	}

	val, err := mathexpr.Evaluate(expr)
	if err != nil {
		return Output{}, fmt.Errorf("evaluate %q: %w", expr, err)
	}

	return Output{Content: mathexpr.Format(val)}, nil
}
