package cmd

import (
	"github.com/spf13/cobra"

	"uaetax/internal/config"
	"uaetax/internal/logger"
	"uaetax/internal/vat"
)

var vatCmd = &cobra.Command{
	Use:   "vat [transactions-file]",
	Short: "Aggregate the VAT position over a transaction set",
	Long: `Compute the VAT summary for a period: output VAT on supplies, input VAT
on purchases, the net VAT due (negative means refundable), and the list of
reverse-charge expense lines requiring disclosure on the return.

The input file holds tax-exclusive AED amounts:

  {"revenues": [...], "expenses": [...]}`,
	Example: `  # Print the VAT summary to stdout
  uaetax vat transactions.json

  # Save the summary to a file
  uaetax vat transactions.json -o vat-summary.json`,
	Args: cobra.ExactArgs(1),
	RunE: runVAT,
}

func init() {
	rootCmd.AddCommand(vatCmd)

	vatCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runVAT(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("vat")

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
	summary := resolver.Summarize(tf.Revenues, tf.Expenses)

	log.Info().
		Str("vat_on_supplies", summary.TotalVATOnSupplies.String()).
		Str("vat_on_purchases", summary.TotalVATOnPurchases.String()).
		Str("net_vat_due", summary.NetVATDue.String()).
		Int("reverse_charge_lines", len(summary.ReverseChargeTransactions)).
		Msg("VAT summary computed")

	return writeJSONOutput(summary, outputPath, log)
}
