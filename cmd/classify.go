package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"uaetax/internal/config"
	"uaetax/internal/freezone"
	"uaetax/internal/logger"
	"uaetax/internal/vat"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [transactions-file]",
	Short: "Classify revenue entries for VAT and Free Zone purposes",
	Long: `For each revenue entry, resolve its VAT treatment from the category rule
table and derive its Free Zone income classification (qualifying or
non-qualifying). The output also reports the qualifying/non-qualifying
income split and whether the QFZP de-minimis thresholds are breached.`,
	Example: `  # Classify all revenue entries
  uaetax classify transactions.json

  # Save the classification report
  uaetax classify transactions.json -o classification.json`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

// ClassifiedEntry is one revenue entry with its derived treatments.
type ClassifiedEntry struct {
	ID                   string                  `json:"id"`
	Description          string                  `json:"description"`
	Category             string                  `json:"category"`
	Amount               decimal.Decimal         `json:"amount"`
	IncomeClassification freezone.Classification `json:"income_classification"`
	VATTreatment         vat.Treatment           `json:"vat_treatment"`
	VATAmount            decimal.Decimal         `json:"vat_amount"`
}

// ClassificationReport is the JSON output of the classify command.
type ClassificationReport struct {
	Entries             []ClassifiedEntry `json:"entries"`
	TotalIncome         decimal.Decimal   `json:"total_income"`
	QualifyingIncome    decimal.Decimal   `json:"qualifying_income"`
	NonQualifyingIncome decimal.Decimal   `json:"non_qualifying_income"`
	ExceedsDeMinimis    bool              `json:"exceeds_de_minimis"`
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("classify")

	outputPath, _ := cmd.Flags().GetString("output")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tf, err := loadTransactionFile(args[0], cfg.FTACompliantMode, log)
	if err != nil {
		return err
	}

	resolver := vat.NewResolver()

	report := ClassificationReport{Entries: make([]ClassifiedEntry, 0, len(tf.Revenues))}
	total := decimal.Zero
	for _, entry := range tf.Revenues {
		report.Entries = append(report.Entries, ClassifiedEntry{
			ID:                   entry.ID,
			Description:          entry.Description,
			Category:             string(entry.Category),
			Amount:               entry.Amount,
			IncomeClassification: freezone.Classify(entry),
			VATTreatment:         resolver.Resolve(entry.Category),
			VATAmount:            resolver.ComputeVAT(entry.Category, entry.Amount, false),
		})
		total = total.Add(entry.Amount)
	}

	report.TotalIncome = total
	report.QualifyingIncome, report.NonQualifyingIncome = freezone.SplitIncome(tf.Revenues)
	report.ExceedsDeMinimis = freezone.ExceedsDeMinimis(report.NonQualifyingIncome, total)

	if report.ExceedsDeMinimis {
		log.Warn().
			Str("non_qualifying_income", report.NonQualifyingIncome.String()).
			Str("total_income", total.String()).
			Msg("De-minimis thresholds breached, QFZP 0% eligibility lost for the period")
	}

	log.Info().
		Int("entries", len(report.Entries)).
		Str("qualifying", report.QualifyingIncome.String()).
		Str("non_qualifying", report.NonQualifyingIncome.String()).
		Msg("Classification completed")

	return writeJSONOutput(report, outputPath, log)
}
