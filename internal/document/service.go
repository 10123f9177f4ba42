// Package document turns one canonical invoice record into three
// synchronized compliance artifacts: a printable PDF, an FTA JSON e-invoice
// and a UBL-style XML invoice.
//
// All three outputs derive from the same validated invoice value and format
// every number through a single helper, so they agree bit-for-bit on every
// monetary field. Generation is atomic: validation failure or any render
// failure yields no artifacts at all.
package document

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"uaetax/internal/logger"
	"uaetax/pkg/models"
	"uaetax/pkg/services"
)

// Options configures a generation service.
type Options struct {
	// ArabicFontPath points at a UTF-8 TrueType font used for Arabic PDF
	// labels. Empty disables Arabic rendering (falls back to English).
	ArabicFontPath string

	// QFZPDisclosure adds the Qualifying Free Zone Person footnote to the
	// PDF when the issuing entity is a QFZP.
	QFZPDisclosure bool
}

// Service implements services.DocumentGenerator.
type Service struct {
	opts Options
	log  zerolog.Logger
}

// NewService creates a document generation service.
func NewService(opts Options) *Service {
	return &Service{
		opts: opts,
		log:  logger.WithComponent("document-generator"),
	}
}

var _ services.DocumentGenerator = (*Service)(nil)

// Generate validates the invoice and renders all three artifacts. The three
// renders run concurrently; they share no mutable state. If validation or
// any render fails, no artifact is returned.
func (s *Service) Generate(ctx context.Context, inv *models.Invoice, locale string) (*services.Artifacts, error) {
	const op = "Generate"

	if err := Validate(inv); err != nil {
		s.log.Error().
			Err(err).
			Str("invoice_number", inv.InvoiceNumber).
			Msg("Invoice failed validation, no artifacts produced")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	loc := Locale(locale)

	var (
		pdfBytes []byte
		jsonData []byte
		xmlData  string
	)
	errCh := make(chan error, 3)

	go func() {
		var err error
		pdfBytes, err = renderPDF(inv, loc, s.opts.ArabicFontPath, s.opts.QFZPDisclosure)
		if err != nil {
			err = NewGenerationError("pdf", err)
		}
		errCh <- err
	}()
	go func() {
		var err error
		jsonData, err = renderJSON(inv)
		if err != nil {
			err = NewGenerationError("json", err)
		}
		errCh <- err
	}()
	go func() {
		var err error
		xmlData, err = renderXML(inv)
		if err != nil {
			err = NewGenerationError("xml", err)
		}
		errCh <- err
	}()

	var firstErr error
	for i := 0; i < 3; i++ {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		s.log.Error().
			Err(firstErr).
			Str("invoice_number", inv.InvoiceNumber).
			Msg("Artifact rendering failed, discarding partial outputs")
		return nil, fmt.Errorf("%s: %w: %w", op, ErrRenderFailed, firstErr)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Str("locale", string(loc)).
		Int("pdf_bytes", len(pdfBytes)).
		Msg("Generated invoice artifacts")

	return &services.Artifacts{
		PDFBytes:    pdfBytes,
		PDFFileName: ArtifactFileName(inv),
		FTAJSON:     jsonData,
		XML:         xmlData,
	}, nil
}
