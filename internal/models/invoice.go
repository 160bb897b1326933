package models

import (
	"encoding/json"
	"time"
)

const InvoiceStatusBackfilled = "backfilled"

// Invoice is a finalized backfilled invoice. It is written exactly once and
// treated as immutable afterwards. DraftID carries the client-generated
// idempotency key; a second save of the same draft returns the original id.
type Invoice struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	InvoiceID  string `gorm:"size:50;unique;not null" json:"invoiceId"`
	DraftID    string `gorm:"size:36;uniqueIndex;not null" json:"-"`
	RetailerID uint   `gorm:"index;not null" json:"-"`

	CustomerName    string `gorm:"size:100" json:"-"`
	CustomerPhone   string `gorm:"size:15" json:"-"`
	CustomerEmail   string `gorm:"size:100" json:"-"`
	CustomerAddress string `gorm:"type:text" json:"-"`

	InvoiceDate string  `gorm:"size:30" json:"invoiceDate"`
	GSTPercent  float64 `gorm:"type:decimal(5,2)" json:"gstPercent"`
	Subtotal    float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	GSTAmount   float64 `gorm:"type:decimal(10,2);default:0.00" json:"gstAmount"`
	Total       float64 `gorm:"type:decimal(10,2);not null" json:"total"`
	PaymentMode string  `gorm:"size:20" json:"paymentMode"`
	InvoiceType string  `gorm:"size:20" json:"invoiceType"`
	Status      string  `gorm:"size:20;default:'backfilled'" json:"status"`

	// CreatedAt is computed on the client side when the draft is finalized;
	// IssuedAt is stamped by the gateway at write time.
	CreatedAt time.Time `json:"createdAt"`
	IssuedAt  time.Time `json:"issuedAt"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceRef" json:"products"`
}

// InvoiceItem is one persisted product row of a finalized invoice.
type InvoiceItem struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	InvoiceRef uint    `gorm:"index" json:"-"`
	Name       string  `gorm:"size:150;not null" json:"name"`
	Brand      string  `gorm:"size:100" json:"brand"`
	Category   string  `gorm:"size:100" json:"category"`
	Quantity   float64 `gorm:"type:decimal(10,3)" json:"quantity"`
	Unit       string  `gorm:"size:30" json:"unit"`
	Price      float64 `gorm:"type:decimal(10,2)" json:"price"`
	Discount   float64 `gorm:"type:decimal(5,2)" json:"discount"`
}

// MarshalJSON emits the finalized-invoice wire shape, with the customer
// columns reassembled into a nested block.
func (i Invoice) MarshalJSON() ([]byte, error) {
	type alias Invoice
	return json.Marshal(struct {
		alias
		Customer map[string]string `json:"customer"`
	}{
		alias: alias(i),
		Customer: map[string]string{
			"name":    i.CustomerName,
			"phone":   i.CustomerPhone,
			"email":   i.CustomerEmail,
			"address": i.CustomerAddress,
		},
	})
}
