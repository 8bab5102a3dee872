package analytics

import (
	"time"

	"github.com/limbo/eventtracker/pkg/entity"
)

type WeekBucket struct {
	Start time.Time `json:"start" yaml:"start"`
	Count int       `json:"count" yaml:"count"`
	Tier  Tier      `json:"tier" yaml:"tier"`
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	d := entity.Day(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeeklyDensity splits [rangeStart, rangeEnd] into Monday-anchored weeks and
// counts the dates falling into each one. Dates in weeks outside the range are
// ignored.
func WeeklyDensity(dates []time.Time, rangeStart, rangeEnd time.Time, scheme TierScheme) []WeekBucket {
	first := WeekStart(rangeStart)
	last := WeekStart(rangeEnd)
	if last.Before(first) {
		return nil
	}

	counts := make(map[time.Time]int, len(dates))
	for _, d := range dates {
		counts[WeekStart(d)]++
	}

	buckets := make([]WeekBucket, 0, int(last.Sub(first).Hours()/(24*7))+1)
	for cur := first; !cur.After(last); cur = cur.AddDate(0, 0, 7) {
		c := counts[cur]
		buckets = append(buckets, WeekBucket{Start: cur, Count: c, Tier: scheme.Classify(c)})
	}
	return buckets
}

// DefaultRange is the span a view covers when the caller does not pick one.
// Without a year filter it runs from the earliest occurrence to today, so the
// view always reaches the present, or to the latest occurrence when that lies
// after today. With a year it covers that year, cut at today. ok is false when
// there is nothing to show. dates must be sorted.
func DefaultRange(dates []time.Time, year entity.YearFilter, today time.Time) (start, end time.Time, ok bool) {
	today = entity.Day(today)
	if year == entity.AllYears {
		if len(dates) == 0 {
			return time.Time{}, time.Time{}, false
		}
		end = today
		if latest := entity.Day(dates[len(dates)-1]); latest.After(end) {
			end = latest
		}
		return entity.Day(dates[0]), end, true
	}
	start = time.Date(int(year), time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(int(year), time.December, 31, 0, 0, 0, 0, time.UTC)
	if today.Before(end) {
		end = today
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
