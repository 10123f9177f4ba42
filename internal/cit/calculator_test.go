package cit_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"uaetax/internal/cit"
	"uaetax/pkg/models"
)

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func revenues(amounts ...string) []models.RevenueEntry {
	out := make([]models.RevenueEntry, len(amounts))
	for i, a := range amounts {
		out[i] = models.RevenueEntry{Amount: amount(a)}
	}
	return out
}

func expenses(amounts ...string) []models.ExpenseEntry {
	out := make([]models.ExpenseEntry, len(amounts))
	for i, a := range amounts {
		out[i] = models.ExpenseEntry{Amount: amount(a)}
	}
	return out
}

// Revenue 2,000,000 with expenses 1,400,000, no QFZP, no relief election:
// taxable 600,000, payable (600,000-375,000)*9% = 20,250, effective 3.375%.
func TestComputeStandardTreatment(t *testing.T) {
	calc := cit.NewCalculator()

	res := calc.Compute(models.CompanyProfile{}, revenues("2000000"), expenses("1400000"))

	assert.True(t, res.TaxableIncome.Equal(amount("600000")), "taxable %s", res.TaxableIncome)
	assert.True(t, res.CITPayable.Equal(amount("20250")), "payable %s", res.CITPayable)
	assert.True(t, res.EffectiveRate.Equal(amount("0.033750")), "effective %s", res.EffectiveRate)
	assert.False(t, res.SmallBusinessReliefApplied)
	assert.False(t, res.IsQFZP)
}

func TestComputeLossMakingPeriod(t *testing.T) {
	calc := cit.NewCalculator()

	res := calc.Compute(models.CompanyProfile{}, revenues("100000"), expenses("250000"))

	assert.True(t, res.TaxableIncome.IsZero())
	assert.True(t, res.CITPayable.IsZero())
	assert.True(t, res.EffectiveRate.IsZero())
}

func TestComputeWithinFreeBracket(t *testing.T) {
	calc := cit.NewCalculator()

	res := calc.Compute(models.CompanyProfile{}, revenues("5000000"), expenses("4700000"))

	assert.True(t, res.TaxableIncome.Equal(amount("300000")))
	assert.True(t, res.CITPayable.IsZero(), "income within the 375k free bracket owes nothing")
}

func TestComputeSmallBusinessRelief(t *testing.T) {
	calc := cit.NewCalculator()
	profile := models.CompanyProfile{ElectsSmallBusinessRelief: true}

	res := calc.Compute(profile, revenues("2500000"), expenses("500000"))

	assert.True(t, res.SmallBusinessReliefApplied)
	assert.True(t, res.CITPayable.IsZero())
	assert.True(t, res.TaxableIncome.Equal(amount("2000000")), "relief zeroes the payable, not the taxable income")
}

func TestComputeSmallBusinessReliefNotElected(t *testing.T) {
	calc := cit.NewCalculator()

	res := calc.Compute(models.CompanyProfile{}, revenues("2500000"), expenses("500000"))

	assert.False(t, res.SmallBusinessReliefApplied)
	assert.True(t, res.CITPayable.Equal(amount("146250")), "payable %s", res.CITPayable)
}

func TestComputeSmallBusinessReliefAboveThreshold(t *testing.T) {
	calc := cit.NewCalculator()
	profile := models.CompanyProfile{ElectsSmallBusinessRelief: true}

	// Revenue above AED 3,000,000: the election grants nothing.
	res := calc.Compute(profile, revenues("3000001"), expenses("2000000"))

	assert.False(t, res.SmallBusinessReliefApplied)
	assert.True(t, res.CITPayable.GreaterThan(decimal.Zero))
}

func TestComputeQFZPSplit(t *testing.T) {
	calc := cit.NewCalculator()
	profile := models.CompanyProfile{IsQFZP: true}

	// 9,600,000 qualifying + 400,000 non-qualifying (4%, under de-minimis),
	// expenses 5,000,000: taxable 5,000,000, non-qualifying share 4% of
	// taxable = 200,000, payable 9% of that = 18,000.
	revs := []models.RevenueEntry{
		{Amount: amount("9600000"), IsExport: true},
		{Amount: amount("400000"), ActivityType: models.ActivityMainlandSales},
	}
	res := calc.Compute(profile, revs, expenses("5000000"))

	assert.True(t, res.IsQFZP)
	assert.False(t, res.DeMinimisBreached)
	assert.True(t, res.QualifyingIncome.Equal(amount("9600000")))
	assert.True(t, res.NonQualifyingIncome.Equal(amount("400000")))
	assert.True(t, res.TaxableIncome.Equal(amount("5000000")))
	assert.True(t, res.CITPayable.Equal(amount("18000")), "payable %s", res.CITPayable)
}

func TestComputeQFZPFullyQualifying(t *testing.T) {
	calc := cit.NewCalculator()
	profile := models.CompanyProfile{IsQFZP: true}

	revs := []models.RevenueEntry{{Amount: amount("8000000"), IsExport: true}}
	res := calc.Compute(profile, revs, expenses("3000000"))

	assert.True(t, res.CITPayable.IsZero(), "fully qualifying QFZP owes nothing")
	assert.True(t, res.EffectiveRate.IsZero())
}

// A de-minimis breach is a period-level consequence: the entire taxable
// income reverts to standard treatment, not just the offending lines.
func TestComputeQFZPDeMinimisBreach(t *testing.T) {
	calc := cit.NewCalculator()
	profile := models.CompanyProfile{IsQFZP: true}

	// Non-qualifying 1,000,000 of 10,000,000 total (10% > 5%): breach.
	revs := []models.RevenueEntry{
		{Amount: amount("9000000"), IsExport: true},
		{Amount: amount("1000000"), ActivityType: models.ActivityMainlandSales},
	}
	res := calc.Compute(profile, revs, expenses("4000000"))

	assert.True(t, res.DeMinimisBreached)
	assert.True(t, res.TaxableIncome.Equal(amount("6000000")))
	// Standard treatment: (6,000,000 - 375,000) * 9% = 506,250.
	assert.True(t, res.CITPayable.Equal(amount("506250")), "payable %s", res.CITPayable)
}

func TestComputeEmptyInputs(t *testing.T) {
	calc := cit.NewCalculator()

	res := calc.Compute(models.CompanyProfile{}, nil, nil)

	assert.True(t, res.TaxableIncome.IsZero())
	assert.True(t, res.CITPayable.IsZero())
	assert.True(t, res.EffectiveRate.IsZero())
}
