package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexNumber is a numeric field coming out of OCR extraction or a hand-typed
// form. It accepts a JSON number, a numeric string, or null, and coerces
// anything unparseable to zero instead of failing the whole draft.
type FlexNumber string

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = FlexNumber(s)
		return nil
	}
	if string(b) == "null" {
		*n = ""
		return nil
	}
	// Raw JSON number, keep the original text.
	*n = FlexNumber(b)
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	f := n.Float()
	return json.Marshal(f)
}

// Float returns the parsed value, or 0 when the field is empty, unparseable,
// or not finite.
func (n FlexNumber) Float() float64 {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Num wraps a float64 as a FlexNumber, mainly for building drafts in code.
func Num(f float64) FlexNumber {
	return FlexNumber(strconv.FormatFloat(f, 'f', -1, 64))
}

// DraftCustomer holds the customer block of a draft. Fields left blank by the
// extraction step are candidates for fill-if-empty enrichment.
type DraftCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// DraftLineItem is one uncertain product row of a draft.
type DraftLineItem struct {
	Name            string     `json:"name"`
	Brand           string     `json:"brand"`
	Category        string     `json:"category"`
	SKU             string     `json:"sku"`
	Unit            string     `json:"unit"`
	Quantity        FlexNumber `json:"quantity"`
	Price           FlexNumber `json:"price"`
	DiscountPercent FlexNumber `json:"discountPercent"`
}

// InvoiceDraft is the mutable working copy of a backfilled invoice. It is
// owned by a single editing session; user edits always take precedence over
// enrichment.
type InvoiceDraft struct {
	DraftID     string          `json:"draftId"`
	Customer    DraftCustomer   `json:"customer"`
	LineItems   []DraftLineItem `json:"lineItems"`
	InvoiceDate string          `json:"invoiceDate"`
	TaxPercent  FlexNumber      `json:"taxPercent"`
	PaymentMode string          `json:"paymentMode"`
	InvoiceType string          `json:"invoiceType"`
}
