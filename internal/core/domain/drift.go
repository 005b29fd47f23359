package domain

import "sort"

type DriftArea string

const (
	DriftSleep  DriftArea = "SLEEP"
	DriftFood   DriftArea = "FOOD"
	DriftWork   DriftArea = "WORK"
	DriftSocial DriftArea = "SOCIAL"
	DriftNone   DriftArea = "None"
)

const (
	sleepAvgFloor     = 7.0
	bedMissTrigger    = 2
	foodMissTrigger   = 2
	workMissTrigger   = 3
	socialMissTrigger = 5
	lowSleepSeverity  = 2
)

// driftPriority breaks severity ties: lower value ranks first.
var driftPriority = map[DriftArea]int{
	DriftSleep:  0,
	DriftFood:   1,
	DriftWork:   2,
	DriftSocial: 3,
}

type DriftCategory struct {
	Area     DriftArea `json:"area"`
	Severity int       `json:"severity"`
}

type DriftStats struct {
	Days         int     `json:"days"`
	AvgSleep     float64 `json:"avg_sleep"`
	BedMisses    int     `json:"bed_misses"`
	FoodMisses   int     `json:"food_misses"`
	WorkMisses   int     `json:"work_misses"`
	SocialMisses int     `json:"social_misses"`
}

type DriftReport struct {
	Categories []DriftCategory `json:"categories"`
	Biggest    DriftArea       `json:"biggest"`
	Stats      DriftStats      `json:"stats"`
}

// Areas lists the triggered areas in ranked order.
func (r DriftReport) Areas() []DriftArea {
	areas := make([]DriftArea, 0, len(r.Categories))
	for _, c := range r.Categories {
		areas = append(areas, c.Area)
	}
	return areas
}

func DetectDrift(window ReadingWindow) DriftReport {
	report := DriftReport{Categories: []DriftCategory{}, Biggest: DriftNone}
	if len(window) == 0 {
		return report
	}

	stats := DriftStats{Days: len(window)}
	var sleepSum float64
	for _, r := range window {
		sleepSum += r.SleepHours
		if !r.BedOnTime {
			stats.BedMisses++
		}
		if !r.EatWindows {
			stats.FoodMisses++
		}
		if !r.Block1 {
			stats.WorkMisses++
		}
		if !r.Block2 {
			stats.WorkMisses++
		}
		if !r.Anchor {
			stats.SocialMisses++
		}
	}
	stats.AvgSleep = sleepSum / float64(stats.Days)
	report.Stats = stats

	lowSleep := stats.AvgSleep < sleepAvgFloor
	if lowSleep || stats.BedMisses >= bedMissTrigger {
		severity := stats.BedMisses
		if lowSleep {
			severity += lowSleepSeverity
		}
		report.Categories = append(report.Categories, DriftCategory{Area: DriftSleep, Severity: severity})
	}
	if stats.FoodMisses >= foodMissTrigger {
		report.Categories = append(report.Categories, DriftCategory{Area: DriftFood, Severity: stats.FoodMisses})
	}
	if stats.WorkMisses >= workMissTrigger {
		report.Categories = append(report.Categories, DriftCategory{Area: DriftWork, Severity: stats.WorkMisses})
	}
	if stats.SocialMisses >= socialMissTrigger {
		report.Categories = append(report.Categories, DriftCategory{Area: DriftSocial, Severity: stats.SocialMisses})
	}

	sort.Slice(report.Categories, func(i, j int) bool {
		a, b := report.Categories[i], report.Categories[j]
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		return driftPriority[a.Area] < driftPriority[b.Area]
	})

	if len(report.Categories) > 0 {
		report.Biggest = report.Categories[0].Area
	}
	return report
}
