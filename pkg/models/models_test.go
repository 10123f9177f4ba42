package models_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uaetax/pkg/models"
)

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestValidTRN(t *testing.T) {
	assert.True(t, models.ValidTRN("100123456789012"))
	assert.False(t, models.ValidTRN("10012345678901"))   // 14 digits
	assert.False(t, models.ValidTRN("1001234567890123")) // 16 digits
	assert.False(t, models.ValidTRN("10012345678901a"))
	assert.False(t, models.ValidTRN(""))
}

func TestProfileValidate(t *testing.T) {
	p := models.CompanyProfile{CompanyName: "Gulf Trading LLC", TRNNumber: "100123456789012"}
	assert.NoError(t, p.Validate())

	p.TRNNumber = "nope"
	assert.Error(t, p.Validate())

	// TRN is optional during onboarding.
	p.TRNNumber = ""
	assert.NoError(t, p.Validate())
	assert.False(t, p.SetupComplete())
}

func TestRevenueEntryFreezeAndDuplicate(t *testing.T) {
	entry := models.RevenueEntry{
		ID:               "r1",
		Amount:           amount("1000"),
		InvoiceGenerated: true,
		InvoiceID:        "inv-1",
	}
	assert.False(t, entry.CanEdit())

	dup := entry.Duplicate("r2")
	assert.Equal(t, "r2", dup.ID)
	assert.True(t, dup.CanEdit())
	assert.Empty(t, dup.InvoiceID)
	assert.True(t, dup.Amount.Equal(entry.Amount))

	// The original stays frozen.
	assert.False(t, entry.CanEdit())
	assert.Equal(t, "inv-1", entry.InvoiceID)
}

func TestExpenseEntryCompleteness(t *testing.T) {
	e := models.ExpenseEntry{ID: "e1", Amount: amount("200")}

	assert.True(t, e.Complete(false), "receipt not required outside FTA-compliant mode")
	assert.False(t, e.Complete(true), "FTA-compliant mode requires a receipt reference")

	e.ReceiptFileID = "file-7"
	assert.True(t, e.Complete(true))
}

func TestNewInvoiceItemDerivedAmounts(t *testing.T) {
	item := models.NewInvoiceItem("1", "Consulting", amount("3"), amount("199.99"), amount("5"), models.TaxCategoryStandard)

	assert.True(t, item.TaxableAmount.Equal(amount("599.97")), "taxable %s", item.TaxableAmount)
	assert.True(t, item.TaxAmount.Equal(amount("30.00")), "tax %s", item.TaxAmount)
	assert.True(t, item.TotalAmount.Equal(amount("629.97")), "total %s", item.TotalAmount)
}

func TestNewInvoiceItemZeroRated(t *testing.T) {
	item := models.NewInvoiceItem("1", "Export goods", amount("10"), amount("50"), amount("0"), models.TaxCategoryZeroRated)

	assert.True(t, item.TaxAmount.IsZero())
	assert.True(t, item.TotalAmount.Equal(amount("500")))
}

func TestComputeTotalsInvariant(t *testing.T) {
	inv := models.Invoice{
		Items: []models.InvoiceItem{
			models.NewInvoiceItem("1", "A", amount("1"), amount("1000"), amount("5"), models.TaxCategoryStandard),
			models.NewInvoiceItem("2", "B", amount("2"), amount("33.33"), amount("5"), models.TaxCategoryStandard),
			models.NewInvoiceItem("3", "C", amount("1"), amount("400"), amount("0"), models.TaxCategoryZeroRated),
		},
	}
	inv.ComputeTotals()

	assert.True(t, inv.Amount.Equal(inv.Subtotal.Add(inv.VATAmount)), "amount must equal subtotal + vat exactly")
	assert.True(t, inv.Subtotal.Equal(amount("1466.66")), "subtotal %s", inv.Subtotal)
	assert.True(t, inv.VATAmount.Equal(amount("53.33")), "vat %s", inv.VATAmount)
}

func TestSortNotifications(t *testing.T) {
	three, ten := 3, 10
	ns := []models.Notification{
		{ID: "medium", Priority: models.PriorityMedium},
		{ID: "urgent-far", Priority: models.PriorityUrgent, DaysRemaining: &ten},
		{ID: "high", Priority: models.PriorityHigh, DaysRemaining: &three},
		{ID: "urgent-near", Priority: models.PriorityUrgent, DaysRemaining: &three},
	}

	models.SortNotifications(ns)

	require.Len(t, ns, 4)
	assert.Equal(t, "urgent-near", ns[0].ID)
	assert.Equal(t, "urgent-far", ns[1].ID)
	assert.Equal(t, "high", ns[2].ID)
	assert.Equal(t, "medium", ns[3].ID)
}

func TestNotificationPriorityRank(t *testing.T) {
	ranks := []models.NotificationPriority{models.PriorityUrgent, models.PriorityHigh, models.PriorityMedium, models.PriorityLow}
	for i := 1; i < len(ranks); i++ {
		a := models.Notification{Priority: ranks[i-1]}
		b := models.Notification{Priority: ranks[i]}
		assert.Less(t, a.PriorityRank(), b.PriorityRank())
	}
}

func TestProfileFinancialYear(t *testing.T) {
	due := time.Date(2027, time.September, 30, 0, 0, 0, 0, time.UTC)
	p := models.CompanyProfile{
		CompanyName:       "Gulf Trading LLC",
		TRNNumber:         "100123456789012",
		FinancialYearEnd:  time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		CITSubmissionDate: &due,
	}
	require.NoError(t, p.Validate())
	assert.True(t, p.SetupComplete())
}
