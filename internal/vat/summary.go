package vat

import (
	"github.com/shopspring/decimal"

	"uaetax/pkg/models"
)

// ReverseChargeLine is an expense line flagged for reverse-charge
// disclosure on the VAT return.
type ReverseChargeLine struct {
	ExpenseID   string                     `json:"expense_id"`
	Description string                     `json:"description"`
	Category    models.TransactionCategory `json:"category"`
	NetAmount   decimal.Decimal            `json:"net_amount"`
	VATAmount   decimal.Decimal            `json:"vat_amount"`
}

// Summary is the aggregated VAT position over a transaction set. A negative
// NetVATDue means the period is refundable.
type Summary struct {
	TotalVATOnSupplies        decimal.Decimal     `json:"total_vat_on_supplies"`
	TotalVATOnPurchases       decimal.Decimal     `json:"total_vat_on_purchases"`
	NetVATDue                 decimal.Decimal     `json:"net_vat_due"`
	ReverseChargeTransactions []ReverseChargeLine `json:"reverse_charge_transactions"`
}

// Summarize folds VAT over revenue (supplies) and expense (purchases)
// transactions. Transaction amounts are tax-exclusive throughout the data
// model, so VAT is computed on the exclusive basis. The fold is pure: it
// reads nothing but its arguments.
//
// Reverse-charge expense lines with non-zero VAT are collected separately;
// their VAT still counts toward purchases, the collection exists for audit
// disclosure only.
func (r *Resolver) Summarize(revenues []models.RevenueEntry, expenses []models.ExpenseEntry) Summary {
	s := Summary{
		TotalVATOnSupplies:        decimal.Zero,
		TotalVATOnPurchases:       decimal.Zero,
		ReverseChargeTransactions: []ReverseChargeLine{},
	}

	for _, rev := range revenues {
		s.TotalVATOnSupplies = s.TotalVATOnSupplies.Add(r.ComputeVAT(rev.Category, rev.Amount, false))
	}

	for _, exp := range expenses {
		v := r.ComputeVAT(exp.Category, exp.Amount, false)
		s.TotalVATOnPurchases = s.TotalVATOnPurchases.Add(v)
		if r.Resolve(exp.Category).ReverseCharge && !v.IsZero() {
			s.ReverseChargeTransactions = append(s.ReverseChargeTransactions, ReverseChargeLine{
				ExpenseID:   exp.ID,
				Description: exp.Description,
				Category:    exp.Category,
				NetAmount:   exp.Amount,
				VATAmount:   v,
			})
		}
	}

	s.NetVATDue = s.TotalVATOnSupplies.Sub(s.TotalVATOnPurchases)
	return s
}
