package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tax category codes used on invoice lines (PINT-AE subset).
const (
	TaxCategoryStandard  = "S" // standard rated, 5%
	TaxCategoryZeroRated = "Z" // zero rated, 0%
)

// Default e-invoice envelope identifiers for the UAE PINT profile.
const (
	DefaultCustomizationID       = "urn:peppol:pint:billing-1@ae-1"
	DefaultProfileID             = "urn:peppol:bis:billing"
	DefaultBusinessProcessTypeID = "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0"
)

// Address is a postal address block as required on FTA e-invoices.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Emirate    string `json:"emirate"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// Contact carries the reachability details of an invoice party.
type Contact struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Party identifies the seller or buyer on an invoice. The TRN is mandatory
// for the seller and optional for the buyer (consumers have none).
type Party struct {
	Name    string  `json:"name"`
	TRN     string  `json:"trn,omitempty"`
	Address Address `json:"address"`
	Contact Contact `json:"contact,omitempty"`
}

// InvoiceItem is a single invoice line. All monetary fields are AED.
//
// Invariants: TaxAmount == round(TaxableAmount * TaxRate / 100, 2) and
// TotalAmount == TaxableAmount + TaxAmount. Use NewInvoiceItem so the
// derived fields are computed in one place.
type InvoiceItem struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TaxCategory   string          `json:"tax_category"` // "S" or "Z"
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// Invoice is the canonical invoice record. Every output format (PDF, FTA
// JSON, UBL XML) is derived from this one value, so the totals here are the
// single source of numeric truth.
//
// Invariant: Amount == Subtotal + VATAmount exactly.
type Invoice struct {
	// Core identifiers
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"` // INV-YYYYMMDD-NNNN
	UUID          string `json:"uuid"`

	// E-invoice envelope
	CustomizationID       string `json:"customization_id"`
	ProfileID             string `json:"profile_id"`
	BusinessProcessTypeID string `json:"business_process_type_id"`

	// Dates
	IssueDate time.Time `json:"issue_date"`
	DueDate   time.Time `json:"due_date"`

	// Parties
	Seller Party `json:"seller"`
	Buyer  Party `json:"buyer"`

	// Lines and totals (AED)
	Currency  string          `json:"currency"`
	Items     []InvoiceItem   `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	VATAmount decimal.Decimal `json:"vat_amount"`
	Amount    decimal.Decimal `json:"amount"` // Subtotal + VATAmount
}

// NewInvoiceItem builds a line with its derived amounts: the taxable amount
// is quantity times unit price, the tax amount is the 2-decimal rounded
// product of taxable amount and rate.
func NewInvoiceItem(id, description string, quantity, unitPrice, taxRate decimal.Decimal, taxCategory string) InvoiceItem {
	taxable := quantity.Mul(unitPrice).Round(2)
	tax := taxable.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)
	return InvoiceItem{
		ID:            id,
		Description:   description,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TaxableAmount: taxable,
		TaxRate:       taxRate,
		TaxAmount:     tax,
		TaxCategory:   taxCategory,
		TotalAmount:   taxable.Add(tax),
	}
}

// ComputeTotals recomputes Subtotal, VATAmount and Amount from the items.
// Renderers never sum lines themselves; they read these fields, so the
// three output formats cannot drift apart numerically.
func (inv *Invoice) ComputeTotals() {
	subtotal := decimal.Zero
	vat := decimal.Zero
	for _, item := range inv.Items {
		subtotal = subtotal.Add(item.TaxableAmount)
		vat = vat.Add(item.TaxAmount)
	}
	inv.Subtotal = subtotal
	inv.VATAmount = vat
	inv.Amount = subtotal.Add(vat)
}
