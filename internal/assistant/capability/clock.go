package capability

import (
	"fmt"
	"time"

	"luna-assistant/internal/model"
	"luna-assistant/pkg/textnorm"
)

// Clock answers time and date questions from the wall clock in the user's
// timezone. Its output is time-sensitive, so it is never cacheable.
type Clock struct {
	now func() time.Time
}

// NewClock creates the clock capability.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) Name() string { return "clock" }

func (c *Clock) Patterns() []Pattern {
	return []Pattern{
		{Category: model.CategoryGeneral, Action: model.ActionTime},
	}
}

func (c *Clock) MaxExecutionTime() time.Duration { return 5 * time.Millisecond }

func (c *Clock) Cacheable() bool { return false }

// dateWords marks inputs asking for the date rather than the time.
var dateWords = []string{
	"date", "day", "fecha", "dia", "jour", "datum", "tag", "data",
}

func (c *Clock) Execute(input string, appCtx model.AppContext) (Output, error) {
	loc, err := time.LoadLocation(appCtx.UserPreferences.Timezone)
	if err != nil {
		loc = time.UTC
	}
	now := c.now().In(loc)

	tokens := make(map[string]struct{})
	for _, tok := range textnorm.Tokenize(input) {
		tokens[tok] = struct{}{}
	}

	for _, w := range dateWords {
		if _, ok := tokens[w]; ok {
			return Output{
				Content: fmt.Sprintf("Today is %s, %s.",
					now.Weekday(), now.Format("January 2, 2006")),
			}, nil
		}
	}

	return Output{
		Content: fmt.Sprintf("It's %s.", now.Format("15:04")),
	}, nil
}
