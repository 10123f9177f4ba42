package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"uaetax/pkg/models"
)

const arabicFontFamily = "arabic"

// renderPDF produces the printable A4 invoice: FTA branding header,
// seller/buyer table, line items, totals, declaration and signature blocks,
// and a conditional QFZP disclosure footnote.
//
// Arabic rendering requires an embedded UTF-8 font; without a configured
// font file the renderer falls back to English labels rather than emitting
// broken glyphs. Numbers are identical in every locale.
func renderPDF(inv *models.Invoice, locale Locale, arabicFontPath string, qfzpDisclosure bool) ([]byte, error) {
	const op = "renderPDF"

	rtl := false
	if locale == LocaleArabic {
		if arabicFontPath == "" {
			locale = LocaleEnglish
		} else {
			rtl = true
		}
	}
	labels := labelsFor(locale)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Tax Invoice "+inv.InvoiceNumber, true)
	pdf.SetAutoPageBreak(true, 20)

	family := "Helvetica"
	if rtl {
		pdf.AddUTF8Font(arabicFontFamily, "", arabicFontPath)
		pdf.AddUTF8Font(arabicFontFamily, "B", arabicFontPath)
		family = arabicFontFamily
		pdf.RTL()
	}

	pdf.AddPage()

	// FTA branding header block
	pdf.SetFillColor(0, 51, 102)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 12, labels.TaxInvoice, "", 1, "C", true, 0, "")
	pdf.SetFont(family, "", 9)
	pdf.CellFormat(0, 6, "United Arab Emirates - Federal Tax Authority", "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Invoice identity
	pdf.SetFont(family, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", labels.InvoiceNumber, inv.InvoiceNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", labels.IssueDate, inv.IssueDate.Format("2006-01-02")), "", 1, "L", false, 0, "")
	if !inv.DueDate.IsZero() {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", labels.DueDate, inv.DueDate.Format("2006-01-02")), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Seller / buyer table
	writeParty := func(title string, p models.Party) {
		pdf.SetFont(family, "B", 10)
		pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
		pdf.SetFont(family, "", 9)
		pdf.CellFormat(0, 5, p.Name, "", 1, "L", false, 0, "")
		if p.TRN != "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("%s: %s", labels.TRN, p.TRN), "", 1, "L", false, 0, "")
		}
		addr := fmt.Sprintf("%s, %s, %s, %s", p.Address.Street, p.Address.City, p.Address.Emirate, p.Address.Country)
		pdf.CellFormat(0, 5, addr, "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}
	writeParty(labels.Supplier, inv.Seller)
	writeParty(labels.Customer, inv.Buyer)
	pdf.Ln(2)

	// Line-item table
	colWidths := []float64{60, 14, 24, 26, 14, 24, 28}
	headers := []string{labels.Description, labels.Quantity, labels.UnitPrice, labels.Taxable, labels.VATRate, labels.VAT, labels.LineTotal}

	pdf.SetFont(family, "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 8)
	for _, item := range inv.Items {
		cells := []string{
			item.Description,
			item.Quantity.String(),
			amountString(item.UnitPrice),
			amountString(item.TaxableAmount),
			item.TaxRate.String(),
			amountString(item.TaxAmount),
			amountString(item.TotalAmount),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// Totals block
	totals := [][2]string{
		{labels.Subtotal, amountString(inv.Subtotal)},
		{labels.TotalVAT, amountString(inv.VATAmount)},
		{labels.TotalDue, amountString(inv.Amount)},
	}
	for i, row := range totals {
		style := ""
		if i == len(totals)-1 {
			style = "B"
		}
		pdf.SetFont(family, style, 10)
		pdf.CellFormat(130, 7, row[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(60, 7, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	// Declaration and signature block
	pdf.SetFont(family, "", 9)
	pdf.MultiCell(0, 5, labels.Declaration, "", "L", false)
	pdf.Ln(10)
	pdf.CellFormat(80, 6, "_______________________", "", 1, "L", false, 0, "")
	pdf.CellFormat(80, 6, labels.Signature, "", 1, "L", false, 0, "")

	if qfzpDisclosure {
		pdf.Ln(6)
		pdf.SetFont(family, "", 7)
		pdf.SetTextColor(90, 90, 90)
		pdf.MultiCell(0, 4, labels.QFZPNote, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%s: failed to write PDF: %w", op, err)
	}
	return buf.Bytes(), nil
}

// ArtifactFileName returns the download name of the PDF artifact.
func ArtifactFileName(inv *models.Invoice) string {
	return fmt.Sprintf("invoice-%s.pdf", inv.InvoiceNumber)
}
