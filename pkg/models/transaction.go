package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCategory identifies the tax treatment bucket of a revenue or
// expense line. The closed set of known categories lives in internal/vat;
// unknown values resolve to the default treatment there.
type TransactionCategory string

// Revenue categories.
const (
	CategorySalesRevenue     TransactionCategory = "Sales Revenue"
	CategoryServiceIncome    TransactionCategory = "Service Income"
	CategoryRentalIncome     TransactionCategory = "Rental Income"
	CategoryInterestIncome   TransactionCategory = "Interest Income"
	CategoryCommissionIncome TransactionCategory = "Commission Income"
	CategoryExportSales      TransactionCategory = "Export Sales"
	CategoryCapitalGains     TransactionCategory = "Capital Gains"
	CategoryDividendIncome   TransactionCategory = "Dividend Income"
	CategoryOtherIncome      TransactionCategory = "Other Income"
)

// Expense categories.
const (
	CategoryRent                 TransactionCategory = "Rent"
	CategorySalariesWages        TransactionCategory = "Salaries and Wages"
	CategoryUtilities            TransactionCategory = "Utilities"
	CategoryOfficeSupplies       TransactionCategory = "Office Supplies"
	CategoryProfessionalServices TransactionCategory = "Professional Services"
	CategoryImportedSoftware     TransactionCategory = "Imported Software"
	CategoryImportedServices     TransactionCategory = "Imported Professional Services"
	CategoryBankCharges          TransactionCategory = "Bank Charges"
	CategoryInsurance            TransactionCategory = "Insurance"
	CategoryMarketing            TransactionCategory = "Marketing"
	CategoryTravel               TransactionCategory = "Travel"
	CategoryDepreciation         TransactionCategory = "Depreciation"
	CategoryOtherExpenses        TransactionCategory = "Other Expenses"
)

// ActivityType describes the free-zone activity behind a revenue entry.
// The three qualifying values mirror the FTA qualifying-activity list.
type ActivityType string

const (
	ActivityExportServices       ActivityType = "export-services"
	ActivityIntraZoneTrade       ActivityType = "intra-zone-trade"
	ActivityQualifyingActivities ActivityType = "qualifying-activities"
	ActivityMainlandSales        ActivityType = "mainland-sales"
	ActivityOther                ActivityType = "other"
)

// RevenueEntry is a single revenue transaction as submitted by the user.
// Amounts are tax-exclusive AED.
//
// Income classification is intentionally NOT a stored field: it is derived
// from IsExport and ActivityType on read (see internal/freezone), so it can
// never go stale when one of the driving fields changes.
type RevenueEntry struct {
	ID                        string              `json:"id"`
	Date                      time.Time           `json:"date"`
	Description               string              `json:"description"`
	Customer                  string              `json:"customer,omitempty"`
	Category                  TransactionCategory `json:"category"`
	Amount                    decimal.Decimal     `json:"amount"`
	FreeZoneIncomeType        string              `json:"free_zone_income_type,omitempty"`
	FreeZoneSubcategory       string              `json:"free_zone_subcategory,omitempty"`
	ActivityType              ActivityType        `json:"activity_type,omitempty"`
	IsExport                  bool                `json:"is_export"`
	IsRelatedPartyTransaction bool                `json:"is_related_party_transaction"`
	InvoiceGenerated          bool                `json:"invoice_generated"`
	InvoiceID                 string              `json:"invoice_id,omitempty"`
}

// CanEdit reports whether the entry may still be mutated in place. Once an
// invoice has been generated against it the entry is frozen; callers must
// Duplicate instead of editing a filed invoice's source record.
func (e *RevenueEntry) CanEdit() bool {
	return !e.InvoiceGenerated
}

// Duplicate returns a copy of the entry with a new identifier and cleared
// invoice linkage, suitable as the editable replacement of a frozen entry.
func (e *RevenueEntry) Duplicate(newID string) RevenueEntry {
	d := *e
	d.ID = newID
	d.InvoiceGenerated = false
	d.InvoiceID = ""
	return d
}

// ExpenseEntry is a single expense transaction. Amounts are tax-exclusive AED.
type ExpenseEntry struct {
	ID            string              `json:"id"`
	Date          time.Time           `json:"date"`
	Description   string              `json:"description"`
	Vendor        string              `json:"vendor"`
	Category      TransactionCategory `json:"category"`
	Amount        decimal.Decimal     `json:"amount"`
	ReceiptFileID string              `json:"receipt_file_id,omitempty"`
}

// Complete reports whether the expense is acceptable for filing. In
// FTA-compliant mode an expense without an attached receipt reference is
// incomplete and must not be accepted.
func (e *ExpenseEntry) Complete(ftaCompliantMode bool) bool {
	if !ftaCompliantMode {
		return true
	}
	return e.ReceiptFileID != ""
}
