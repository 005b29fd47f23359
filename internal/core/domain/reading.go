package domain

import (
	"errors"
	"math"
	"time"
)

var (
	ErrReadingNotFound = errors.New("daily reading not found")
	ErrInvalidReading  = errors.New("invalid daily reading data")
)

const (
	DateLayout    = "2006-01-02"
	MinSleepHours = 0.0
	MaxSleepHours = 14.0
)

// HabitFlags are the six yes/no habits of a report, in report order.
type HabitFlags struct {
	BedOnTime  bool `json:"bed_on_time" db:"bed_on_time"`
	Workout    bool `json:"workout" db:"workout"`
	EatWindows bool `json:"eat_windows" db:"eat_windows"`
	Block1     bool `json:"block1" db:"block1"`
	Block2     bool `json:"block2" db:"block2"`
	Anchor     bool `json:"anchor" db:"anchor"`
}

type Scores struct {
	EnergyScore int `json:"energy_score" db:"energy_score"`
	ExecScore   int `json:"exec_score" db:"exec_score"`
	LifeScore   int `json:"life_score" db:"life_score"`
	TotalScore  int `json:"total_score" db:"total_score"`
}

type DailyHabitReading struct {
	Date       string  `json:"date" db:"date"`
	SleepHours float64 `json:"sleep_hours" db:"sleep_hours"`
	HabitFlags
	Scores
	ScoringModel ScoringModel `json:"scoring_model" db:"scoring_model"`
	Notes        string       `json:"notes" db:"notes"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ReadingWindow is ordered most-recent first. Missing days are simply absent.
type ReadingWindow []*DailyHabitReading

func NewDailyHabitReading(date string, sleepHours float64, flags HabitFlags, notes string, scorer Scorer) (*DailyHabitReading, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidReading
	}
	if !ValidSleepHours(sleepHours) {
		return nil, ErrInvalidReading
	}

	return &DailyHabitReading{
		Date:         date,
		SleepHours:   roundToTenth(sleepHours),
		HabitFlags:   flags,
		Scores:       scorer.Score(sleepHours, flags),
		ScoringModel: scorer.Model(),
		Notes:        notes,
	}, nil
}

func (r *DailyHabitReading) Validate() error {
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if !ValidSleepHours(r.SleepHours) {
		return errors.New("sleep_hours must be within 0-14")
	}
	if r.TotalScore != r.EnergyScore+r.ExecScore+r.LifeScore {
		return errors.New("total_score must equal the sum of sub-scores")
	}
	if r.EnergyScore < 0 || r.ExecScore < 0 || r.LifeScore < 0 {
		return errors.New("scores cannot be negative")
	}
	return nil
}

func ValidSleepHours(h float64) bool {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return false
	}
	return h >= MinSleepHours && h <= MaxSleepHours
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
