package models

import (
	"fmt"
	"regexp"
	"time"
)

// trnPattern matches a UAE Tax Registration Number: exactly 15 digits.
var trnPattern = regexp.MustCompile(`^\d{15}$`)

// CompanyProfile carries the tenant's registration and filing parameters.
type CompanyProfile struct {
	CompanyName       string     `json:"company_name"`
	TRNNumber         string     `json:"trn_number"`
	CITSubmissionDate *time.Time `json:"cit_submission_date,omitempty"`
	IsQFZP            bool       `json:"is_qfzp"`
	// ElectsSmallBusinessRelief records the taxpayer's SBR election. The
	// relief only takes effect when revenue stays under the statutory
	// threshold; the election alone grants nothing.
	ElectsSmallBusinessRelief bool      `json:"elects_small_business_relief"`
	FinancialYearEnd          time.Time `json:"financial_year_end"`
}

// ValidTRN reports whether s is a well-formed 15-digit TRN.
func ValidTRN(s string) bool {
	return trnPattern.MatchString(s)
}

// Validate checks the profile's invariants. The TRN is optional during
// onboarding, but when present it must be a 15-digit string.
func (p *CompanyProfile) Validate() error {
	if p.TRNNumber != "" && !ValidTRN(p.TRNNumber) {
		return fmt.Errorf("company profile: trn_number %q must be exactly 15 digits", p.TRNNumber)
	}
	return nil
}

// SetupComplete reports whether the mandatory onboarding fields are present.
func (p *CompanyProfile) SetupComplete() bool {
	return p.CompanyName != "" && p.TRNNumber != ""
}
