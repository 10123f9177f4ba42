package cmd

import (
	"github.com/spf13/cobra"

	"uaetax/internal/cit"
	"uaetax/internal/config"
	"uaetax/internal/logger"
)

var citCmd = &cobra.Command{
	Use:   "cit [transactions-file]",
	Short: "Compute the Corporate Income Tax position for a period",
	Long: `Derive taxable income and CIT payable from a period's transactions and
the company profile. Applies Small Business Relief when elected and within
the revenue threshold, and the Qualifying Free Zone Person 0%/9% split with
the de-minimis safeguard.`,
	Example: `  # Compute CIT for a period
  uaetax cit transactions.json --profile profile.json

  # Save the result to a file
  uaetax cit transactions.json --profile profile.json -o cit-result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCIT,
}

func init() {
	rootCmd.AddCommand(citCmd)

	citCmd.Flags().StringP("profile", "p", "profile.json", "Company profile JSON file")
	citCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runCIT(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("cit")

	profilePath, _ := cmd.Flags().GetString("profile")
	outputPath, _ := cmd.Flags().GetString("output")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tf, err := loadTransactionFile(args[0], cfg.FTACompliantMode, log)
	if err != nil {
		return err
	}

	profile, err := loadProfile(profilePath, log)
	if err != nil {
		return err
	}

	calc := cit.NewCalculator()
	result := calc.Compute(*profile, tf.Revenues, tf.Expenses)

	log.Info().
		Str("taxable_income", result.TaxableIncome.String()).
		Str("cit_payable", result.CITPayable.String()).
		Str("effective_rate", result.EffectiveRate.String()).
		Bool("small_business_relief", result.SmallBusinessReliefApplied).
		Bool("qfzp", result.IsQFZP).
		Bool("de_minimis_breached", result.DeMinimisBreached).
		Msg("CIT computation completed")

	return writeJSONOutput(result, outputPath, log)
}
