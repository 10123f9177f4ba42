package vat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uaetax/internal/vat"
	"uaetax/pkg/models"
)

func TestSummarize(t *testing.T) {
	r := vat.NewResolver()

	// r1 yields 5000 of output VAT; r2 is exempt; r3 is zero-rated.
	revenues := []models.RevenueEntry{
		{ID: "r1", Category: models.CategorySalesRevenue, Amount: amount("100000")},
		{ID: "r2", Category: models.CategoryInterestIncome, Amount: amount("20000")},
		{ID: "r3", Category: models.CategoryExportSales, Amount: amount("50000")},
	}
	// e1 yields 2000 of input VAT; e2 yields 500 under reverse charge; e3 is
	// out of scope.
	expenses := []models.ExpenseEntry{
		{ID: "e1", Category: models.CategoryRent, Amount: amount("40000")},
		{ID: "e2", Category: models.CategoryImportedSoftware, Amount: amount("10000")},
		{ID: "e3", Category: models.CategorySalariesWages, Amount: amount("60000")},
	}

	s := r.Summarize(revenues, expenses)

	assert.True(t, s.TotalVATOnSupplies.Equal(amount("5000")), "supplies %s", s.TotalVATOnSupplies)
	assert.True(t, s.TotalVATOnPurchases.Equal(amount("2500")), "purchases %s", s.TotalVATOnPurchases)
	assert.True(t, s.NetVATDue.Equal(amount("2500")), "net %s", s.NetVATDue)

	require.Len(t, s.ReverseChargeTransactions, 1)
	line := s.ReverseChargeTransactions[0]
	assert.Equal(t, "e2", line.ExpenseID)
	assert.True(t, line.VATAmount.Equal(amount("500")))
}

func TestSummarizeRefundablePosition(t *testing.T) {
	r := vat.NewResolver()

	revenues := []models.RevenueEntry{
		{ID: "r1", Category: models.CategoryExportSales, Amount: amount("500000")},
	}
	expenses := []models.ExpenseEntry{
		{ID: "e1", Category: models.CategoryRent, Amount: amount("100000")},
	}

	s := r.Summarize(revenues, expenses)
	assert.True(t, s.NetVATDue.IsNegative(), "zero-rated exporter should be refundable, got %s", s.NetVATDue)
	assert.True(t, s.NetVATDue.Equal(amount("-5000")))
}

func TestSummarizeEmptyInputs(t *testing.T) {
	r := vat.NewResolver()

	s := r.Summarize(nil, nil)
	assert.True(t, s.TotalVATOnSupplies.IsZero())
	assert.True(t, s.TotalVATOnPurchases.IsZero())
	assert.True(t, s.NetVATDue.IsZero())
	assert.Empty(t, s.ReverseChargeTransactions)
}

// Summarize is a pure fold: running it twice over the same slices must
// yield identical results.
func TestSummarizeIsPure(t *testing.T) {
	r := vat.NewResolver()

	revenues := []models.RevenueEntry{
		{ID: "r1", Category: models.CategoryServiceIncome, Amount: amount("12345.67")},
	}

	first := r.Summarize(revenues, nil)
	second := r.Summarize(revenues, nil)
	assert.True(t, first.TotalVATOnSupplies.Equal(second.TotalVATOnSupplies))
	assert.True(t, first.NetVATDue.Equal(second.NetVATDue))
}
