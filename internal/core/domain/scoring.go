package domain

import (
	"fmt"
	"math"
)

type ScoringModel string

const (
	ScoringModelSevenPoint   ScoringModel = "v1"
	ScoringModelHundredPoint ScoringModel = "v2"

	SleepThresholdHours = 7.5
)

// Scorer turns one day's sleep value and habit flags into sub-scores.
// Implementations must be pure: identical inputs give identical Scores.
type Scorer interface {
	Model() ScoringModel
	MaxTotal() int
	Score(sleepHours float64, flags HabitFlags) Scores
}

func NewScorer(model ScoringModel) (Scorer, error) {
	switch model {
	case "", ScoringModelSevenPoint:
		return SevenPointScorer{}, nil
	case ScoringModelHundredPoint:
		return HundredPointScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown scoring model %q (must be v1 or v2)", model)
	}
}

// SevenPointScorer is the canonical model: one point per met habit,
// plus one for sleeping at least 7.5 hours.
type SevenPointScorer struct{}

func (SevenPointScorer) Model() ScoringModel { return ScoringModelSevenPoint }

func (SevenPointScorer) MaxTotal() int { return 7 }

func (SevenPointScorer) Score(sleepHours float64, f HabitFlags) Scores {
	energy := b2i(sleepHours >= SleepThresholdHours) + b2i(f.BedOnTime) + b2i(f.Workout) + b2i(f.EatWindows)
	exec := b2i(f.Block1) + b2i(f.Block2)
	life := b2i(f.Anchor)

	return Scores{
		EnergyScore: energy,
		ExecScore:   exec,
		LifeScore:   life,
		TotalScore:  energy + exec + life,
	}
}

const (
	hundredSleepMax    = 30
	hundredSleepFloor  = 5.0
	hundredSleepTarget = 8.0
)

// HundredPointScorer is the weighted variant on a 0-100 scale. Sleep earns
// points linearly between 5h and 8h. Out-of-range sleep is clamped here.
type HundredPointScorer struct{}

func (HundredPointScorer) Model() ScoringModel { return ScoringModelHundredPoint }

func (HundredPointScorer) MaxTotal() int { return 100 }

func (HundredPointScorer) Score(sleepHours float64, f HabitFlags) Scores {
	energy := hundredSleepPoints(sleepHours) +
		10*b2i(f.BedOnTime) + 15*b2i(f.Workout) + 10*b2i(f.EatWindows)
	exec := 10*b2i(f.Block1) + 10*b2i(f.Block2)
	life := 15 * b2i(f.Anchor)

	return Scores{
		EnergyScore: energy,
		ExecScore:   exec,
		LifeScore:   life,
		TotalScore:  energy + exec + life,
	}
}

func hundredSleepPoints(h float64) int {
	if math.IsNaN(h) {
		return 0
	}
	h = math.Max(MinSleepHours, math.Min(MaxSleepHours, h))
	if h <= hundredSleepFloor {
		return 0
	}
	if h >= hundredSleepTarget {
		return hundredSleepMax
	}
	return int(math.Round((h - hundredSleepFloor) / (hundredSleepTarget - hundredSleepFloor) * hundredSleepMax))
}

// LegacyTotal maps a 0-100 total onto the 0-7 scale of the canonical model.
func LegacyTotal(total int) int {
	if total <= 0 {
		return 0
	}
	if total >= 100 {
		return 7
	}
	return int(math.Round(float64(total) * 7 / 100))
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
