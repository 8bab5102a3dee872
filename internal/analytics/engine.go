package analytics

import (
	"time"

	"github.com/limbo/eventtracker/pkg/entity"
)

// Engine binds a tier scheme and a clock so presentation code can ask for a
// view by year filter alone.
type Engine struct {
	scheme TierScheme
	now    func() time.Time
}

func NewEngine(scheme TierScheme, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{scheme: scheme, now: now}
}

func (e *Engine) Scheme() TierScheme {
	return e.scheme
}

func (e *Engine) Today() time.Time {
	return entity.Day(e.now())
}

func (e *Engine) Weekly(dates []time.Time, year entity.YearFilter) []WeekBucket {
	start, end, ok := DefaultRange(dates, year, e.Today())
	if !ok {
		return nil
	}
	return WeeklyDensity(dates, start, end, e.scheme)
}

func (e *Engine) Gaps(dates []time.Time) GapDistribution {
	return Gaps(dates, e.Today())
}

// Heatmap uses the filtered year, or the current year when no filter is set.
func (e *Engine) Heatmap(dates []time.Time, year entity.YearFilter) []DayCount {
	y := int(year)
	if year == entity.AllYears {
		y = e.Today().Year()
	}
	return YearlyOccurrence(dates, y, e.scheme)
}

func (e *Engine) Monthly(dates []time.Time) map[time.Month]int {
	return MonthlyOccurrence(dates)
}

func (e *Engine) Timeline(dates []time.Time) []TimelinePoint {
	return Timeline(dates)
}
