package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uaetax/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "uaetax",
	Short: "uaetax - UAE tax classification and compliance document engine",
	Long: `uaetax computes VAT treatments, Free Zone income classification and
Corporate Income Tax figures for UAE businesses, derives the rolling filing
calendar, and generates FTA-compliant invoice documents (PDF, FTA JSON and
UBL-style XML) from a single canonical invoice record.

It is a computation engine: it produces figures and documents for human
submission and performs no e-filing itself.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("uaetax executed")

		fmt.Println("uaetax - UAE tax compliance engine")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
