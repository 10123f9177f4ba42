// Package freezone classifies revenue as qualifying or non-qualifying Free
// Zone income and evaluates the QFZP de-minimis thresholds.
//
// Classification is a pure function of the entry's current IsExport and
// ActivityType values. It is never stored on the entry, so it cannot go
// stale when one of the driving fields changes.
package freezone

import (
	"github.com/shopspring/decimal"

	"uaetax/pkg/models"
)

// Classification of a revenue entry for QFZP purposes.
type Classification string

const (
	Qualifying    Classification = "qualifying"
	NonQualifying Classification = "non-qualifying"
)

// De-minimis thresholds: non-qualifying income must stay within 5% of total
// income AND AED 5,000,000, whichever is breached first.
var (
	DeMinimisPercentage = decimal.NewFromFloat(0.05)
	DeMinimisAbsolute   = decimal.NewFromInt(5_000_000)
)

// qualifyingActivities are the activity types that make revenue qualifying
// regardless of the export flag.
var qualifyingActivities = map[models.ActivityType]bool{
	models.ActivityExportServices:       true,
	models.ActivityIntraZoneTrade:       true,
	models.ActivityQualifyingActivities: true,
}

// Classify returns the Free Zone income classification of a revenue entry:
// qualifying when the entry is an export or its activity type is on the
// qualifying list, non-qualifying otherwise. An unset activity type defaults
// to non-qualifying. Idempotent: the result depends only on the entry's
// current field values.
func Classify(entry models.RevenueEntry) Classification {
	if entry.IsExport || qualifyingActivities[entry.ActivityType] {
		return Qualifying
	}
	return NonQualifying
}

// SplitIncome sums revenue into qualifying and non-qualifying totals.
func SplitIncome(entries []models.RevenueEntry) (qualifying, nonQualifying decimal.Decimal) {
	qualifying, nonQualifying = decimal.Zero, decimal.Zero
	for _, e := range entries {
		if Classify(e) == Qualifying {
			qualifying = qualifying.Add(e.Amount)
		} else {
			nonQualifying = nonQualifying.Add(e.Amount)
		}
	}
	return qualifying, nonQualifying
}

// ExceedsDeMinimis reports whether non-qualifying income breaches the
// de-minimis limits: strictly more than 5% of total income, or strictly
// more than AED 5,000,000. Exactly hitting a threshold is not a breach.
//
// A breach invalidates QFZP 0% eligibility for the whole period; callers
// must surface it as a hard warning, never silently reclassify.
func ExceedsDeMinimis(nonQualifyingIncome, totalIncome decimal.Decimal) bool {
	if nonQualifyingIncome.GreaterThan(DeMinimisAbsolute) {
		return true
	}
	return nonQualifyingIncome.GreaterThan(totalIncome.Mul(DeMinimisPercentage))
}
