package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"uaetax/pkg/models"
)

// TransactionFile is the JSON input shape shared by the vat, cit and
// classify commands.
type TransactionFile struct {
	Revenues []models.RevenueEntry `json:"revenues"`
	Expenses []models.ExpenseEntry `json:"expenses"`
}

// loadTransactionFile reads and decodes a transaction JSON file. In
// FTA-compliant mode expenses without a receipt reference are rejected.
func loadTransactionFile(path string, ftaCompliant bool, log zerolog.Logger) (*TransactionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().
			Err(err).
			Str("file", path).
			Msg("Failed to read transaction file")
		return nil, fmt.Errorf("failed to read transaction file: %w", err)
	}

	var tf TransactionFile
	if err := json.Unmarshal(data, &tf); err != nil {
		log.Error().
			Err(err).
			Str("file", path).
			Msg("Failed to parse transaction file")
		return nil, fmt.Errorf("failed to parse transaction file: %w", err)
	}

	if err := validateEntries(&tf, ftaCompliant); err != nil {
		return nil, err
	}
	return &tf, nil
}

// validateEntries rejects invalid entries at the boundary so downstream
// calculators can assume pre-validated input: amounts must be non-negative,
// and in FTA-compliant mode every expense needs a receipt reference.
func validateEntries(tf *TransactionFile, ftaCompliant bool) error {
	for _, r := range tf.Revenues {
		if r.Amount.IsNegative() {
			return fmt.Errorf("revenue entry %q has negative amount %s", r.ID, r.Amount.String())
		}
	}
	for _, e := range tf.Expenses {
		if e.Amount.IsNegative() {
			return fmt.Errorf("expense entry %q has negative amount %s", e.ID, e.Amount.String())
		}
		if !e.Complete(ftaCompliant) {
			return fmt.Errorf("expense entry %q has no receipt reference (required in FTA-compliant mode)", e.ID)
		}
	}
	return nil
}

// loadProfile reads and validates a company profile JSON file.
func loadProfile(path string, log zerolog.Logger) (*models.CompanyProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().
			Err(err).
			Str("file", path).
			Msg("Failed to read profile file")
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile models.CompanyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// writeJSONOutput marshals v and writes it to outputPath, or stdout when
// the path is empty.
func writeJSONOutput(v interface{}, outputPath string, log zerolog.Logger) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if outputPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		log.Error().
			Err(err).
			Str("file", outputPath).
			Msg("Failed to write output file")
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Info().
		Str("file", outputPath).
		Msg("Results written")
	return nil
}
