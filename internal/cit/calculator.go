// Package cit computes UAE Corporate Income Tax liabilities, including
// Small Business Relief and Qualifying Free Zone Person treatment.
package cit

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"uaetax/internal/freezone"
	"uaetax/internal/logger"
	"uaetax/pkg/models"
)

// Statutory constants, Federal Decree-Law 47 of 2022 and Ministerial
// Decision 73 of 2023.
var (
	// StandardRate is the headline CIT rate (9%).
	StandardRate = decimal.NewFromFloat(0.09)

	// FreeBracket is the 0% bracket for non-QFZP taxable income.
	FreeBracket = decimal.NewFromInt(375_000)

	// SmallBusinessReliefThreshold is the revenue ceiling under which a
	// period elects Small Business Relief and owes no CIT.
	SmallBusinessReliefThreshold = decimal.NewFromInt(3_000_000)
)

// Result is the outcome of a CIT computation for one period.
type Result struct {
	TaxableIncome              decimal.Decimal `json:"taxable_income"`
	CITPayable                 decimal.Decimal `json:"cit_payable"`
	EffectiveRate              decimal.Decimal `json:"effective_rate"`
	SmallBusinessReliefApplied bool            `json:"small_business_relief_applied"`
	IsQFZP                     bool            `json:"is_qfzp"`
	QualifyingIncome           decimal.Decimal `json:"qualifying_income"`
	NonQualifyingIncome        decimal.Decimal `json:"non_qualifying_income"`
	DeMinimisBreached          bool            `json:"de_minimis_breached"`
}

// Calculator derives CIT figures from pre-validated transaction sets.
type Calculator struct {
	log zerolog.Logger
}

func NewCalculator() *Calculator {
	return &Calculator{log: logger.WithComponent("cit-calculator")}
}

// Compute derives the CIT position for a period.
//
// The calculator assumes amounts were validated non-negative at the
// boundary. It never errors: zero or empty inputs degrade to a zero
// liability.
//
// Order of application:
//  1. taxable income = max(0, revenue - expenses)
//  2. Small Business Relief: when elected and revenue is within the
//     threshold, the payable is zero for the period
//  3. QFZP: qualifying income at 0%, non-qualifying share at 9%; a
//     de-minimis breach reverts the whole period to standard treatment
//  4. standard: 9% on taxable income above the AED 375,000 free bracket
func (c *Calculator) Compute(profile models.CompanyProfile, revenues []models.RevenueEntry, expenses []models.ExpenseEntry) Result {
	totalRevenue := decimal.Zero
	for _, r := range revenues {
		totalRevenue = totalRevenue.Add(r.Amount)
	}
	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	res := Result{
		CITPayable:          decimal.Zero,
		EffectiveRate:       decimal.Zero,
		IsQFZP:              profile.IsQFZP,
		QualifyingIncome:    decimal.Zero,
		NonQualifyingIncome: decimal.Zero,
	}

	netProfit := totalRevenue.Sub(totalExpenses)
	if netProfit.IsNegative() {
		res.TaxableIncome = decimal.Zero
	} else {
		res.TaxableIncome = netProfit
	}

	if profile.IsQFZP {
		res.QualifyingIncome, res.NonQualifyingIncome = freezone.SplitIncome(revenues)
		res.DeMinimisBreached = freezone.ExceedsDeMinimis(res.NonQualifyingIncome, totalRevenue)
	}

	if profile.ElectsSmallBusinessRelief && totalRevenue.LessThanOrEqual(SmallBusinessReliefThreshold) {
		res.SmallBusinessReliefApplied = true
		c.log.Debug().
			Str("total_revenue", totalRevenue.String()).
			Msg("Small Business Relief applied, CIT payable is zero")
		return res
	}

	switch {
	case profile.IsQFZP && !res.DeMinimisBreached:
		// Qualifying income at 0%; the non-qualifying share of taxable
		// income at 9% with no free bracket.
		nonQualifyingTaxable := apportion(res.TaxableIncome, res.NonQualifyingIncome, totalRevenue)
		res.CITPayable = nonQualifyingTaxable.Mul(StandardRate).Round(2)

	case profile.IsQFZP && res.DeMinimisBreached:
		// Loss of QFZP status is a period-level consequence: the entire
		// taxable income reverts to standard treatment.
		c.log.Warn().
			Str("non_qualifying_income", res.NonQualifyingIncome.String()).
			Str("total_revenue", totalRevenue.String()).
			Msg("De-minimis breached, entire period reverts to standard CIT treatment")
		res.CITPayable = standardPayable(res.TaxableIncome)

	default:
		res.CITPayable = standardPayable(res.TaxableIncome)
	}

	if res.TaxableIncome.IsPositive() {
		res.EffectiveRate = res.CITPayable.DivRound(res.TaxableIncome, 6)
	}
	return res
}

// standardPayable applies the non-QFZP formula: 9% of taxable income above
// the free bracket.
func standardPayable(taxableIncome decimal.Decimal) decimal.Decimal {
	over := taxableIncome.Sub(FreeBracket)
	if over.IsNegative() {
		return decimal.Zero
	}
	return over.Mul(StandardRate).Round(2)
}

// apportion scales taxable income by the non-qualifying revenue share.
func apportion(taxableIncome, part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return taxableIncome.Mul(part).DivRound(whole, 2)
}
