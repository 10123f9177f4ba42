package document

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/shopspring/decimal"

	"uaetax/pkg/models"
)

// invoiceNumberPattern matches the tenant invoice number format
// INV-YYYYMMDD-NNNN.
var invoiceNumberPattern = regexp.MustCompile(`^INV-\d{8}-\d{4}$`)

var oneHundred = decimal.NewFromInt(100)

// Validate checks every invariant the renderers rely on. It returns nil or
// a ValidationErrors value listing each violation; generation must not
// proceed on any failure.
func Validate(inv *models.Invoice) error {
	var errs ValidationErrors

	add := func(field string, value interface{}, message string) {
		errs = append(errs, NewValidationError(field, value, message))
	}

	if inv.InvoiceNumber == "" || !invoiceNumberPattern.MatchString(inv.InvoiceNumber) {
		add("invoice_number", inv.InvoiceNumber, "must match INV-YYYYMMDD-NNNN")
	}
	if inv.UUID == "" {
		add("uuid", inv.UUID, "is required")
	}
	if inv.IssueDate.IsZero() {
		add("issue_date", inv.IssueDate, "is required")
	}
	if inv.Seller.Name == "" {
		add("seller.name", inv.Seller.Name, "is required")
	}
	if !models.ValidTRN(inv.Seller.TRN) {
		add("seller.trn", inv.Seller.TRN, "must be exactly 15 digits")
	}
	if inv.Buyer.Name == "" {
		add("buyer.name", inv.Buyer.Name, "is required")
	}
	// Buyer TRN is optional; when present it must still be well-formed.
	if inv.Buyer.TRN != "" && !models.ValidTRN(inv.Buyer.TRN) {
		add("buyer.trn", inv.Buyer.TRN, "must be exactly 15 digits when present")
	}
	if len(inv.Items) == 0 {
		add("items", len(inv.Items), "at least one line item is required")
	}

	for i, item := range inv.Items {
		field := func(name string) string {
			return fmt.Sprintf("items[%d].%s", i, name)
		}
		if item.Description == "" {
			add(field("description"), item.Description, "is required")
		}
		if containsControlChars(item.Description) {
			add(field("description"), item.Description, "contains control characters unsafe for XML output")
		}
		if item.Quantity.IsNegative() {
			add(field("quantity"), item.Quantity.String(), "must not be negative")
		}
		if item.UnitPrice.IsNegative() {
			add(field("unit_price"), item.UnitPrice.String(), "must not be negative")
		}
		if item.TaxCategory != models.TaxCategoryStandard && item.TaxCategory != models.TaxCategoryZeroRated {
			add(field("tax_category"), item.TaxCategory, `must be "S" or "Z"`)
		}
		expectedTax := item.TaxableAmount.Mul(item.TaxRate).DivRound(oneHundred, 2)
		if !item.TaxAmount.Equal(expectedTax) {
			add(field("tax_amount"), item.TaxAmount.String(), "must equal round(taxable_amount * tax_rate / 100, 2)")
		}
		if !item.TotalAmount.Equal(item.TaxableAmount.Add(item.TaxAmount)) {
			add(field("total_amount"), item.TotalAmount.String(), "must equal taxable_amount + tax_amount")
		}
	}

	if inv.Subtotal.IsNegative() {
		add("subtotal", inv.Subtotal.String(), "must not be negative")
	}
	if !inv.Amount.Equal(inv.Subtotal.Add(inv.VATAmount)) {
		add("amount", inv.Amount.String(), "must equal subtotal + vat_amount exactly")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// containsControlChars reports whether s holds characters that cannot be
// represented in well-formed XML 1.0 text.
func containsControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
