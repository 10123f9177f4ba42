package vat

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"uaetax/internal/logger"
	"uaetax/pkg/models"
)

var oneHundred = decimal.NewFromInt(100)

// Treatment is the resolved VAT treatment of a category. It is derived on
// demand from the rule table, never stored.
type Treatment struct {
	VATApplicable   bool            `json:"vat_applicable"`
	ReverseCharge   bool            `json:"reverse_charge"`
	VATRate         decimal.Decimal `json:"vat_rate"`
	ExemptionReason string          `json:"exemption_reason,omitempty"`
}

// Resolver answers VAT treatment lookups against the closed rule table.
// The zero value is not usable; construct with NewResolver.
type Resolver struct {
	log zerolog.Logger
}

// NewResolver creates a resolver with its own logging component.
func NewResolver() *Resolver {
	return &Resolver{log: logger.WithComponent("vat-resolver")}
}

// Resolve returns the VAT treatment of a category. Unknown categories fall
// back to the default treatment (standard rated, no reverse charge); the
// fallback is logged at warn level for audit visibility but never errors.
func (r *Resolver) Resolve(category models.TransactionCategory) Treatment {
	rule, ok := ruleTable[category]
	if !ok {
		r.log.Warn().
			Str("category", string(category)).
			Msg("Unknown transaction category, applying default VAT treatment")
		rule = defaultRule
	}
	return Treatment{
		VATApplicable:   rule.VATApplicable,
		ReverseCharge:   rule.ReverseCharge,
		VATRate:         rule.Rate,
		ExemptionReason: rule.ExemptionReason,
	}
}

// ComputeVAT returns the VAT portion of amount for the given category,
// rounded to 2 decimals.
//
// For tax-inclusive amounts the VAT is amount*rate/(100+rate); for
// tax-exclusive amounts it is amount*rate/100. Non-applicable and
// zero-rated categories yield zero. Reverse-charge categories compute VAT
// identically; the flag only decides which ledger the amount posts to.
func (r *Resolver) ComputeVAT(category models.TransactionCategory, amount decimal.Decimal, taxInclusive bool) decimal.Decimal {
	t := r.Resolve(category)
	if !t.VATApplicable || t.VATRate.IsZero() {
		return decimal.Zero
	}
	if taxInclusive {
		return amount.Mul(t.VATRate).DivRound(oneHundred.Add(t.VATRate), 2)
	}
	return amount.Mul(t.VATRate).DivRound(oneHundred, 2)
}
