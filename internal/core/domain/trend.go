package domain

type TrendSignal string

const (
	TrendUp   TrendSignal = "UP"
	TrendDown TrendSignal = "DOWN"
	TrendFlat TrendSignal = "FLAT"

	MinTrendReadings = 5
	recentTrendSize  = 3
	trendNoiseBand   = 0.3
)

func (t TrendSignal) Arrow() string {
	switch t {
	case TrendUp:
		return "↑ UP"
	case TrendDown:
		return "↓ DOWN"
	case TrendFlat:
		return "→ FLAT"
	default:
		return ""
	}
}

// AnalyzeTrend compares the three most recent total scores with the rest of
// the window. ok is false when the window holds fewer than five readings.
func AnalyzeTrend(window ReadingWindow) (signal TrendSignal, ok bool) {
	if len(window) < MinTrendReadings {
		return "", false
	}

	recentAvg := meanTotal(window[:recentTrendSize])
	olderAvg := meanTotal(window[recentTrendSize:])

	switch {
	case recentAvg > olderAvg+trendNoiseBand:
		return TrendUp, true
	case recentAvg < olderAvg-trendNoiseBand:
		return TrendDown, true
	default:
		return TrendFlat, true
	}
}

func meanTotal(window ReadingWindow) float64 {
	if len(window) == 0 {
		return 0
	}
	sum := 0
	for _, r := range window {
		sum += r.TotalScore
	}
	return float64(sum) / float64(len(window))
}
