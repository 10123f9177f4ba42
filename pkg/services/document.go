package services

import (
	"context"

	"uaetax/pkg/models"
)

// DocumentGenerator defines the interface for compliance document
// generation from a canonical invoice record.
type DocumentGenerator interface {
	// Generate validates the invoice and renders all three output formats.
	// Atomic: either every artifact is returned or none is. Locale affects
	// only display strings in the PDF ("en" or "ar"); numeric values are
	// AED with two decimals in every format.
	Generate(ctx context.Context, invoice *models.Invoice, locale string) (*Artifacts, error)
}

// Artifacts is the complete set of outputs for one invoice.
type Artifacts struct {
	// PDFBytes is the printable A4 invoice.
	PDFBytes []byte `json:"-"`

	// PDFFileName is the download name, invoice-{invoiceNumber}.pdf.
	PDFFileName string `json:"pdf_file_name"`

	// FTAJSON is the machine-readable FTA e-invoice payload.
	FTAJSON []byte `json:"-"`

	// XML is the UBL-style invoice document, UTF-8 encoded.
	XML string `json:"-"`
}
