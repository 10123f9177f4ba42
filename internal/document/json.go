package document

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"uaetax/pkg/models"
)

// amountString formats a monetary value for output documents: always two
// decimals, AED implied. Every renderer formats numbers through this one
// function, so the three formats cannot disagree on a digit.
func amountString(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ftaInvoice is the FTA e-invoice payload, PINT-AE-influenced. Field names
// are part of the external contract and must not change.
type ftaInvoice struct {
	UUID                  string    `json:"uuid"`
	InvoiceNumber         string    `json:"invoiceNumber"`
	IssueDate             string    `json:"issueDate"`
	DueDate               string    `json:"dueDate,omitempty"`
	CustomizationID       string    `json:"customizationID"`
	ProfileID             string    `json:"profileID"`
	BusinessProcessTypeID string    `json:"businessProcessTypeID"`
	Currency              string    `json:"currency"`
	Seller                ftaParty  `json:"seller"`
	Buyer                 ftaParty  `json:"buyer"`
	Items                 []ftaItem `json:"items"`
	Subtotal              string    `json:"subtotal"`
	VATAmount             string    `json:"vatAmount"`
	Amount                string    `json:"amount"`
}

type ftaParty struct {
	Name                  string      `json:"name"`
	TaxRegistrationNumber string      `json:"taxRegistrationNumber,omitempty"`
	Address               ftaAddress  `json:"address"`
	ContactDetails        *ftaContact `json:"contactDetails,omitempty"`
}

type ftaAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Emirate    string `json:"emirate"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

type ftaContact struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type ftaItem struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	Quantity      string `json:"quantity"`
	UnitPrice     string `json:"unitPrice"`
	TaxableAmount string `json:"taxableAmount"`
	TaxRate       string `json:"taxRate"`
	TaxAmount     string `json:"taxAmount"`
	TaxCategory   string `json:"taxCategory"`
	TotalAmount   string `json:"totalAmount"`
}

// renderJSON produces the machine-readable FTA e-invoice payload.
func renderJSON(inv *models.Invoice) ([]byte, error) {
	const op = "renderJSON"

	payload := ftaInvoice{
		UUID:                  inv.UUID,
		InvoiceNumber:         inv.InvoiceNumber,
		IssueDate:             inv.IssueDate.Format("2006-01-02"),
		CustomizationID:       inv.CustomizationID,
		ProfileID:             inv.ProfileID,
		BusinessProcessTypeID: inv.BusinessProcessTypeID,
		Currency:              inv.Currency,
		Seller:                toFTAParty(inv.Seller),
		Buyer:                 toFTAParty(inv.Buyer),
		Items:                 make([]ftaItem, 0, len(inv.Items)),
		Subtotal:              amountString(inv.Subtotal),
		VATAmount:             amountString(inv.VATAmount),
		Amount:                amountString(inv.Amount),
	}
	if !inv.DueDate.IsZero() {
		payload.DueDate = inv.DueDate.Format("2006-01-02")
	}

	for _, item := range inv.Items {
		payload.Items = append(payload.Items, ftaItem{
			ID:            item.ID,
			Description:   item.Description,
			Quantity:      item.Quantity.String(),
			UnitPrice:     amountString(item.UnitPrice),
			TaxableAmount: amountString(item.TaxableAmount),
			TaxRate:       item.TaxRate.String(),
			TaxAmount:     amountString(item.TaxAmount),
			TaxCategory:   item.TaxCategory,
			TotalAmount:   amountString(item.TotalAmount),
		})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal FTA payload: %w", op, err)
	}
	return data, nil
}

func toFTAParty(p models.Party) ftaParty {
	out := ftaParty{
		Name:                  p.Name,
		TaxRegistrationNumber: p.TRN,
		Address: ftaAddress{
			Street:     p.Address.Street,
			City:       p.Address.City,
			Emirate:    p.Address.Emirate,
			Country:    p.Address.Country,
			PostalCode: p.Address.PostalCode,
		},
	}
	if p.Contact.Phone != "" || p.Contact.Email != "" {
		out.ContactDetails = &ftaContact{Phone: p.Contact.Phone, Email: p.Contact.Email}
	}
	return out
}
