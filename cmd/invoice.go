package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"uaetax/internal/config"
	"uaetax/internal/document"
	"uaetax/internal/logger"
	"uaetax/pkg/models"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice [invoice-file]",
	Short: "Generate the compliance document set for an invoice",
	Long: `Validate a canonical invoice record and render its three synchronized
artifacts: a printable PDF, the FTA JSON e-invoice payload and a UBL-style
XML document. All three derive from the same record and agree exactly on
every monetary figure.

Generation is atomic: if validation or any renderer fails, nothing is
written.

Missing identifiers are filled in before validation: a UUID is generated
when absent, the invoice number is allocated in INV-YYYYMMDD-NNNN format
from the issue date, an absent seller block is filled from the configured
SELLER_* identity, and invoice totals are recomputed from the line items.`,
	Example: `  # Generate artifacts into the current directory
  uaetax invoice invoice.json

  # Generate into a directory with Arabic PDF labels
  uaetax invoice invoice.json -o out/ --locale ar

  # Issuing entity is a Qualifying Free Zone Person
  uaetax invoice invoice.json --qfzp`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoiceGenerate,
}

func init() {
	rootCmd.AddCommand(invoiceCmd)

	invoiceCmd.Flags().StringP("output", "o", ".", "Output directory for the artifacts")
	invoiceCmd.Flags().String("locale", "en", `PDF label locale: "en" or "ar"`)
	invoiceCmd.Flags().Bool("qfzp", false, "Add the QFZP disclosure footnote to the PDF")
	invoiceCmd.Flags().String("arabic-font", "", "UTF-8 TrueType font file for Arabic labels (default: ARABIC_FONT_PATH)")
	invoiceCmd.Flags().Int("timeout", 30, "Generation timeout in seconds")
}

func runInvoiceGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("invoice")

	outputDir, _ := cmd.Flags().GetString("output")
	locale, _ := cmd.Flags().GetString("locale")
	qfzp, _ := cmd.Flags().GetBool("qfzp")
	fontPath, _ := cmd.Flags().GetString("arabic-font")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if fontPath == "" {
		fontPath = cfg.ArabicFontPath
	}
	if !qfzp {
		qfzp = cfg.SellerIsQFZP
	}

	inv, err := loadInvoice(args[0], cfg.SellerParty(), log)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, time.Duration(timeoutSecs)*time.Second)
	defer timeoutCancel()

	svc := document.NewService(document.Options{
		ArabicFontPath: fontPath,
		QFZPDisclosure: qfzp,
	})

	startTime := time.Now()
	artifacts, err := svc.Generate(ctx, inv, locale)
	if err != nil {
		log.Error().
			Err(err).
			Str("invoice_number", inv.InvoiceNumber).
			Msg("Document generation failed")
		return err
	}

	log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Dur("duration", time.Since(startTime)).
		Msg("Document generation completed successfully")

	return writeArtifacts(artifacts.PDFBytes, artifacts.FTAJSON, []byte(artifacts.XML), inv, outputDir, log)
}

// invoiceNumbers allocates invoice numbers for records submitted without
// one. Process-scoped; persistent sequencing belongs to the data store.
var invoiceNumbers = document.NewNumberAllocator()

// loadInvoice reads a canonical invoice record and fills in the
// identifiers and derived totals a caller may omit. An invoice without a
// seller block takes the configured seller identity.
func loadInvoice(path string, defaultSeller models.Party, log zerolog.Logger) (*models.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().
			Err(err).
			Str("file", path).
			Msg("Failed to read invoice file")
		return nil, fmt.Errorf("failed to read invoice file: %w", err)
	}

	var inv models.Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("failed to parse invoice file: %w", err)
	}

	if inv.Seller.Name == "" {
		inv.Seller = defaultSeller
	}
	if inv.UUID == "" {
		inv.UUID = uuid.New().String()
	}
	if inv.InvoiceNumber == "" {
		issue := inv.IssueDate
		if issue.IsZero() {
			issue = time.Now()
			inv.IssueDate = issue
		}
		inv.InvoiceNumber = invoiceNumbers.Next(issue)
	}
	if inv.CustomizationID == "" {
		inv.CustomizationID = models.DefaultCustomizationID
	}
	if inv.ProfileID == "" {
		inv.ProfileID = models.DefaultProfileID
	}
	if inv.BusinessProcessTypeID == "" {
		inv.BusinessProcessTypeID = models.DefaultBusinessProcessTypeID
	}
	if inv.Currency == "" {
		inv.Currency = "AED"
	}
	inv.ComputeTotals()

	return &inv, nil
}

// writeArtifacts writes the three outputs next to each other in outputDir.
// Rendering already succeeded for all three, so partial artifact sets can
// only arise from filesystem errors, which are reported as such.
func writeArtifacts(pdfData, jsonData, xmlData []byte, inv *models.Invoice, outputDir string, log zerolog.Logger) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(document.ArtifactFileName(inv), ".pdf")
	files := []struct {
		name string
		data []byte
	}{
		{base + ".pdf", pdfData},
		{base + ".json", jsonData},
		{base + ".xml", xmlData},
	}

	for _, f := range files {
		path := filepath.Join(outputDir, f.name)
		if err := os.WriteFile(path, f.data, 0644); err != nil {
			log.Error().
				Err(err).
				Str("file", path).
				Msg("Failed to write artifact")
			return fmt.Errorf("failed to write artifact %s: %w", f.name, err)
		}
		log.Info().
			Str("file", path).
			Int("bytes", len(f.data)).
			Msg("Artifact written")
	}
	return nil
}
