package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrTooFewValues = errors.New("too few values")
	ErrInvalidSleep = errors.New("invalid sleep hours")
	ErrInvalidFlag  = errors.New("invalid yes/no value")
)

const (
	ReportValueCount = 7
	ReportFormat     = "Format: <SLEEP> <BED Y/N> <WORKOUT Y/N> <EAT Y/N> <BLOCK1 Y/N> <BLOCK2 Y/N> <ANCHOR Y/N>\nExample: 7.2 Y N Y Y Y N"
)

// FlagFields names the six yes/no positions of a report, in order.
var FlagFields = [6]string{"Bed on time", "Workout", "Eating windows", "Block 1", "Block 2", "Anchor"}

// ReportError describes why a text report was rejected. Field is empty for
// count errors, "Sleep hours" for the sleep token, or one of FlagFields.
type ReportError struct {
	Kind  error
	Field string
	Value string
	Got   int
}

func (e *ReportError) Error() string {
	switch e.Kind {
	case ErrTooFewValues:
		return fmt.Sprintf("Expected %d values, got %d.\n\n%s", ReportValueCount, e.Got, ReportFormat)
	case ErrInvalidSleep:
		return fmt.Sprintf("Sleep hours must be 0–14. Got: %q", e.Value)
	case ErrInvalidFlag:
		return fmt.Sprintf("%q must be Y or N. Got: %q", e.Field, e.Value)
	default:
		return fmt.Sprintf("invalid report: %v", e.Kind)
	}
}

func (e *ReportError) Unwrap() error {
	return e.Kind
}

type ReportParser struct {
	clock  Clock
	scorer Scorer
}

func NewReportParser(clock Clock, scorer Scorer) *ReportParser {
	return &ReportParser{clock: clock, scorer: scorer}
}

// Parse validates a whitespace separated report such as "7.5 Y N Y Y Y N notes..."
// and returns today's scored reading. Tokens after the seventh become notes.
func (p *ReportParser) Parse(text string) (*DailyHabitReading, error) {
	tokens := strings.Fields(text)
	if len(tokens) < ReportValueCount {
		return nil, &ReportError{Kind: ErrTooFewValues, Got: len(tokens)}
	}

	sleepHours, err := ParseSleepHours(tokens[0])
	if err != nil {
		return nil, err
	}

	var flags [6]bool
	for i := range FlagFields {
		v, err := parseYesNo(FlagFields[i], tokens[i+1])
		if err != nil {
			return nil, err
		}
		flags[i] = v
	}

	notes := strings.Join(tokens[ReportValueCount:], " ")

	hf := HabitFlags{
		BedOnTime:  flags[0],
		Workout:    flags[1],
		EatWindows: flags[2],
		Block1:     flags[3],
		Block2:     flags[4],
		Anchor:     flags[5],
	}

	return NewDailyHabitReading(p.clock.Today(), sleepHours, hf, notes, p.scorer)
}

func ParseSleepHours(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !ValidSleepHours(v) {
		return 0, &ReportError{Kind: ErrInvalidSleep, Field: "Sleep hours", Value: raw}
	}
	return v, nil
}

func parseYesNo(field, raw string) (bool, error) {
	switch strings.ToUpper(raw) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, &ReportError{Kind: ErrInvalidFlag, Field: field, Value: raw}
	}
}
