// Package analytics computes the occurrence views of an event's date series.
// All functions expect dates in ascending order and take "today" from the
// caller, so results only depend on their arguments.
package analytics

import "fmt"

type Tier string

const (
	TierNone     Tier = "none"
	TierLow      Tier = "low"
	TierMedium   Tier = "medium"
	TierHigh     Tier = "high"
	TierVeryHigh Tier = "very-high"
)

// TierScheme is the number of density tiers a view distinguishes.
type TierScheme int

const (
	// FourTiers folds three or more occurrences into TierVeryHigh.
	FourTiers TierScheme = 4
	// FiveTiers keeps exactly three as TierHigh and four or more as TierVeryHigh.
	FiveTiers TierScheme = 5
)

func NewTierScheme(tierCount int) (TierScheme, error) {
	switch TierScheme(tierCount) {
	case FourTiers, FiveTiers:
		return TierScheme(tierCount), nil
	}
	return 0, fmt.Errorf("tier count must be 4 or 5, got %d", tierCount)
}

func (s TierScheme) Classify(count int) Tier {
	switch {
	case count <= 0:
		return TierNone
	case count == 1:
		return TierLow
	case count == 2:
		return TierMedium
	case s == FourTiers:
		return TierVeryHigh
	case count == 3:
		return TierHigh
	default:
		return TierVeryHigh
	}
}

// Tiers lists the tiers of the scheme from lowest to highest.
func (s TierScheme) Tiers() []Tier {
	if s == FourTiers {
		return []Tier{TierNone, TierLow, TierMedium, TierVeryHigh}
	}
	return []Tier{TierNone, TierLow, TierMedium, TierHigh, TierVeryHigh}
}
