package analytics

import (
	"time"

	"github.com/limbo/eventtracker/pkg/entity"
)

// DayCount is one heatmap cell. Week is the Monday-first week of the year
// (days before the first Monday are week 0) and Weekday runs Monday=0..Sunday=6.
type DayCount struct {
	Date    time.Time `json:"date" yaml:"date"`
	Count   int       `json:"count" yaml:"count"`
	Tier    Tier      `json:"tier" yaml:"tier"`
	Week    int       `json:"week" yaml:"week"`
	Weekday int       `json:"weekday" yaml:"weekday"`
}

// YearlyOccurrence returns one cell per day of year, Jan 1 through Dec 31.
// Dates from other years do not contribute.
func YearlyOccurrence(dates []time.Time, year int, scheme TierScheme) []DayCount {
	counts := make(map[time.Time]int)
	for _, d := range dates {
		if d.Year() == year {
			counts[entity.Day(d)]++
		}
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	out := make([]DayCount, 0, 366)
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		c := counts[cur]
		out = append(out, DayCount{
			Date:    cur,
			Count:   c,
			Tier:    scheme.Classify(c),
			Week:    mondayWeekOfYear(cur),
			Weekday: (int(cur.Weekday()) + 6) % 7,
		})
	}
	return out
}

// MonthlyOccurrence counts dates per month. All twelve months are present.
// The caller filters to a single year first.
func MonthlyOccurrence(dates []time.Time) map[time.Month]int {
	out := make(map[time.Month]int, 12)
	for m := time.January; m <= time.December; m++ {
		out[m] = 0
	}
	for _, d := range dates {
		out[d.Month()]++
	}
	return out
}

// TimelinePoint is the cumulative occurrence count at a date.
type TimelinePoint struct {
	Date  time.Time `json:"date" yaml:"date"`
	Total int       `json:"total" yaml:"total"`
}

func Timeline(dates []time.Time) []TimelinePoint {
	out := make([]TimelinePoint, len(dates))
	for i, d := range dates {
		out[i] = TimelinePoint{Date: entity.Day(d), Total: i + 1}
	}
	return out
}

// mondayWeekOfYear matches strftime's %W.
func mondayWeekOfYear(t time.Time) int {
	weekdayFromMonday := (int(t.Weekday()) + 6) % 7
	return (t.YearDay() + 6 - weekdayFromMonday) / 7
}
