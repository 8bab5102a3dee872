package analytics

import (
	"sort"
	"time"

	"github.com/limbo/eventtracker/pkg/entity"
)

// GapPair is the pair of dates that produced a gap. ToToday marks the trailing
// gap from the last occurrence to the reference day.
type GapPair struct {
	From    time.Time `json:"from" yaml:"from"`
	To      time.Time `json:"to" yaml:"to"`
	ToToday bool      `json:"toToday" yaml:"toToday"`
}

// GapDistribution groups gap lengths (in days) to the pairs that produced them.
type GapDistribution map[int][]GapPair

// Gaps computes the day difference of every successive pair of dates plus the
// trailing gap from the last date to today. Gaps of zero days (repeated dates)
// and negative trailing gaps (dates after today) are dropped.
func Gaps(dates []time.Time, today time.Time) GapDistribution {
	dist := make(GapDistribution)
	if len(dates) == 0 {
		return dist
	}
	for i := 1; i < len(dates); i++ {
		from, to := entity.Day(dates[i-1]), entity.Day(dates[i])
		if g := daysBetween(from, to); g > 0 {
			dist[g] = append(dist[g], GapPair{From: from, To: to})
		}
	}
	last, ref := entity.Day(dates[len(dates)-1]), entity.Day(today)
	if g := daysBetween(last, ref); g > 0 {
		dist[g] = append(dist[g], GapPair{From: last, To: ref, ToToday: true})
	}
	return dist
}

// Lengths returns the distinct gap lengths in ascending order.
func (d GapDistribution) Lengths() []int {
	out := make([]int, 0, len(d))
	for g := range d {
		out = append(out, g)
	}
	sort.Ints(out)
	return out
}

// Frequency is the number of times the gap length occurred.
func (d GapDistribution) Frequency(gap int) int {
	return len(d[gap])
}

// Total is the number of gaps counted.
func (d GapDistribution) Total() int {
	n := 0
	for _, pairs := range d {
		n += len(pairs)
	}
	return n
}

type GapBand string

const (
	BandGood GapBand = "good"
	BandFair GapBand = "fair"
	BandPoor GapBand = "poor"
)

// Band classifies a gap: up to 3 days good, 4 to 7 fair, longer poor.
func Band(gap int) GapBand {
	switch {
	case gap <= 3:
		return BandGood
	case gap <= 7:
		return BandFair
	default:
		return BandPoor
	}
}

func daysBetween(from, to time.Time) int {
	// Both are UTC midnights, so the division is exact.
	return int(to.Sub(from).Hours() / 24)
}
