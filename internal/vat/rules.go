// Package vat resolves the VAT treatment of transaction categories and
// aggregates VAT positions over transaction sets.
//
// The rule table is a closed map over the known category set. Lookups for
// categories outside the table never fail: they resolve to the default
// treatment (VAT applicable at the standard rate, no reverse charge) and are
// logged at warn level for audit visibility.
package vat

import (
	"github.com/shopspring/decimal"

	"uaetax/pkg/models"
)

// UAE VAT rates in percent.
var (
	StandardRate = decimal.NewFromInt(5)
	ZeroRate     = decimal.Zero
)

// Exemption reasons carried on exempt and zero-rated rows. These strings
// appear verbatim in summaries and invoice footnotes.
const (
	ReasonFinancialServices = "Financial services exemption"
	ReasonZeroRatedExport   = "Zero-rated export"
	ReasonOutOfScopeSalary  = "Out of scope - employment income"
	ReasonOutOfScopeCapital = "Out of scope - capital transaction"
	ReasonNonCashCharge     = "Out of scope - non-cash accounting charge"
)

// Rule is one row of the category rule table.
type Rule struct {
	VATApplicable   bool
	Rate            decimal.Decimal
	ReverseCharge   bool
	ExemptionReason string
}

// ruleTable maps every known transaction category to its VAT row. Expense
// rows for imported software and imported professional services carry the
// reverse-charge flag: the recipient self-assesses output VAT and recovers
// it as input VAT on the same return.
var ruleTable = map[models.TransactionCategory]Rule{
	// Revenue
	models.CategorySalesRevenue:     {VATApplicable: true, Rate: StandardRate},
	models.CategoryServiceIncome:    {VATApplicable: true, Rate: StandardRate},
	models.CategoryRentalIncome:     {VATApplicable: true, Rate: StandardRate},
	models.CategoryInterestIncome:   {VATApplicable: false, Rate: ZeroRate, ExemptionReason: ReasonFinancialServices},
	models.CategoryCommissionIncome: {VATApplicable: true, Rate: StandardRate},
	models.CategoryExportSales:      {VATApplicable: false, Rate: ZeroRate, ExemptionReason: ReasonZeroRatedExport},
	models.CategoryCapitalGains:     {VATApplicable: false, Rate: ZeroRate, ExemptionReason: ReasonOutOfScopeCapital},
	models.CategoryDividendIncome:   {VATApplicable: false, Rate: ZeroRate, ExemptionReason: ReasonOutOfScopeCapital},
	models.CategoryOtherIncome:      {VATApplicable: true, Rate: StandardRate},

	// Expenses
	models.CategoryRent:                 {VATApplicable: true, Rate: StandardRate},
	models.CategorySalariesWages:        {VATApplicable: false, Rate: ZeroRate, ExemptionReason: ReasonOutOfScopeSalary},
	models.CategoryUtilities:            {VATApplicable: true, Rate: StandardRate},
	models.CategoryOfficeSupplies:       {VATApplicable: true, Rate: StandardRate},
	models.CategoryProfessionalServices: {VATApplicable: true, Rate: StandardRate},
	models.CategoryImportedSoftware:     {VATApplicable: true, Rate: StandardRate, ReverseCharge: true},
	models.CategoryImportedServices:     {VATApplicable: true, Rate: StandardRate, ReverseCharge: true},
	models.CategoryBankCharges:          {VATApplicable: false, Rate: ZeroRate, ExemptionReason: ReasonFinancialServices},
	models.CategoryInsurance:            {VATApplicable: true, Rate: StandardRate},
	models.CategoryMarketing:            {VATApplicable: true, Rate: StandardRate},
	models.CategoryTravel:               {VATApplicable: true, Rate: StandardRate},
	models.CategoryDepreciation:         {VATApplicable: false, Rate: ZeroRate, ExemptionReason: ReasonNonCashCharge},
	models.CategoryOtherExpenses:        {VATApplicable: true, Rate: StandardRate},
}

// defaultRule is the fallback for categories outside the table: standard
// rated, no reverse charge.
var defaultRule = Rule{VATApplicable: true, Rate: StandardRate}

// Categories returns every category present in the rule table.
func Categories() []models.TransactionCategory {
	cats := make([]models.TransactionCategory, 0, len(ruleTable))
	for c := range ruleTable {
		cats = append(cats, c)
	}
	return cats
}
