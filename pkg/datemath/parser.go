package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"luna-assistant/pkg/textnorm"
)

// Parser converts relative date phrases to absolute time.Time values.
// Phrases are matched in folded form, so "Mañana" and "manana" both work.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// dayAliases maps folded relative-day words of the supported languages
// (en, es, fr, de, pt) onto a day offset from the base time.
var dayAliases = map[string]int{
	"today":       0,
	"hoy":         0,
	"aujourd'hui": 0,
	"aujourdhui":  0,
	"heute":       0,
	"hoje":        0,
	"tomorrow":    1,
	"manana":      1,
	"demain":      1,
	"morgen":      1,
	"amanha":      1,
	"yesterday":   -1,
	"ayer":        -1,
	"hier":        -1,
	"gestern":     -1,
	"ontem":       -1,
}

// weekdayAliases maps folded weekday names of the supported languages onto
// time.Weekday values.
var weekdayAliases = map[string]time.Weekday{
	"monday":     time.Monday,
	"lunes":      time.Monday,
	"lundi":      time.Monday,
	"montag":     time.Monday,
	"segunda":    time.Monday,
	"tuesday":    time.Tuesday,
	"martes":     time.Tuesday,
	"mardi":      time.Tuesday,
	"dienstag":   time.Tuesday,
	"terca":      time.Tuesday,
	"wednesday":  time.Wednesday,
	"miercoles":  time.Wednesday,
	"mercredi":   time.Wednesday,
	"mittwoch":   time.Wednesday,
	"quarta":     time.Wednesday,
	"thursday":   time.Thursday,
	"jueves":     time.Thursday,
	"jeudi":      time.Thursday,
	"donnerstag": time.Thursday,
	"quinta":     time.Thursday,
	"friday":     time.Friday,
	"viernes":    time.Friday,
	"vendredi":   time.Friday,
	"freitag":    time.Friday,
	"sexta":      time.Friday,
	"saturday":   time.Saturday,
	"sabado":     time.Saturday,
	"samedi":     time.Saturday,
	"samstag":    time.Saturday,
	"sunday":     time.Sunday,
	"domingo":    time.Sunday,
	"dimanche":   time.Sunday,
	"sonntag":    time.Sunday,
}

// Parse converts a relative date phrase to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = textnorm.Fold(relative)

	if offset, ok := dayAliases[relative]; ok {
		return p.startOfDay(baseTime.AddDate(0, 0, offset)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>" plus bare weekday names in any supported language
	if strings.HasPrefix(relative, "next ") {
		return p.parseWeekday(strings.TrimPrefix(relative, "next "), baseTime)
	}
	if _, ok := weekdayAliases[relative]; ok {
		return p.parseWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	re := regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	matches := re.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseWeekday resolves a weekday name to the next occurrence after baseTime.
func (p *Parser) parseWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdayAliases[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
