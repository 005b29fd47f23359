package domain

import "math"

type WeeklyStats struct {
	WeekStart        string    `json:"week_start" db:"week_start"`
	AvgScore         float64   `json:"avg_score" db:"avg_score"`
	BestDay          string    `json:"best_day" db:"best_day"`
	BestScore        int       `json:"best_score" db:"best_score"`
	WorstDay         string    `json:"worst_day" db:"worst_day"`
	WorstScore       int       `json:"worst_score" db:"worst_score"`
	BiggestDriftArea DriftArea `json:"biggest_drift" db:"biggest_drift"`
	SuggestedFix     string    `json:"suggested_fix" db:"suggested_fix"`
}

var suggestedFixes = map[DriftArea]string{
	DriftSleep:  "Set a hard phone-down time 30 min before bed.",
	DriftFood:   "Prep meals for your eating windows the night before.",
	DriftWork:   "Block 90 min tomorrow morning — phone on DND, no Slack.",
	DriftSocial: "Text one friend today. Schedule one family activity this week.",
	DriftNone:   "Keep the consistency. Add one ambitious thing.",
}

func SuggestedFix(area DriftArea) string {
	if fix, ok := suggestedFixes[area]; ok {
		return fix
	}
	return suggestedFixes[DriftNone]
}

// SynthesizeWeek summarizes a window (normally the last seven readings).
// It returns nil for an empty window. On score ties the most recent day wins.
func SynthesizeWeek(window ReadingWindow, weekStart string) *WeeklyStats {
	if len(window) == 0 {
		return nil
	}

	best, worst := window[0], window[0]
	for _, r := range window[1:] {
		if r.TotalScore > best.TotalScore {
			best = r
		}
		if r.TotalScore < worst.TotalScore {
			worst = r
		}
	}

	biggest := DetectDrift(window).Biggest

	return &WeeklyStats{
		WeekStart:        weekStart,
		AvgScore:         math.Round(meanTotal(window)*10) / 10,
		BestDay:          best.Date,
		BestScore:        best.TotalScore,
		WorstDay:         worst.Date,
		WorstScore:       worst.TotalScore,
		BiggestDriftArea: biggest,
		SuggestedFix:     SuggestedFix(biggest),
	}
}
