package document

import (
	"encoding/xml"
	"fmt"
	"strings"

	"uaetax/pkg/models"
)

// xmlInvoice is the minimal UBL-style document. encoding/xml escapes
// reserved characters in free-text fields during marshaling.
type xmlInvoice struct {
	XMLName       xml.Name `xml:"Invoice"`
	InvoiceNumber string   `xml:"InvoiceNumber"`
	IssueDate     string   `xml:"IssueDate"`
	SupplierTRN   string   `xml:"SupplierTRN"`
	SupplierName  string   `xml:"SupplierName"`
	CustomerName  string   `xml:"CustomerName"`
	CustomerTRN   string   `xml:"CustomerTRN,omitempty"`
	Description   string   `xml:"Description"`
	Subtotal      string   `xml:"Subtotal"`
	VAT           string   `xml:"VAT"`
	Total         string   `xml:"Total"`
}

// renderXML produces the UBL-style invoice document, UTF-8 encoded with the
// standard XML header. Monetary values are formatted to two decimals via
// the same helper the JSON renderer uses.
func renderXML(inv *models.Invoice) (string, error) {
	const op = "renderXML"

	descriptions := make([]string, 0, len(inv.Items))
	for _, item := range inv.Items {
		descriptions = append(descriptions, item.Description)
	}

	doc := xmlInvoice{
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate.Format("2006-01-02"),
		SupplierTRN:   inv.Seller.TRN,
		SupplierName:  inv.Seller.Name,
		CustomerName:  inv.Buyer.Name,
		CustomerTRN:   inv.Buyer.TRN,
		Description:   strings.Join(descriptions, "; "),
		Subtotal:      amountString(inv.Subtotal),
		VAT:           amountString(inv.VATAmount),
		Total:         amountString(inv.Amount),
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%s: failed to marshal invoice XML: %w", op, err)
	}
	return xml.Header + string(body) + "\n", nil
}
