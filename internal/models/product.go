package models

import (
	"time"
)

// Product is a retailer-owned inventory record. Brand, Category, Unit and SKU
// are the fields copied into a draft line item during enrichment.
type Product struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RetailerID   uint      `gorm:"index;not null" json:"retailer_id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Brand        string    `gorm:"size:100" json:"brand"`
	Category     string    `gorm:"size:100" json:"category"`
	Unit         string    `gorm:"size:30" json:"unit"`
	SKU          string    `gorm:"size:50;index" json:"sku"`
	UnitPrice    float64   `gorm:"type:decimal(10,2)" json:"unit_price"`
	CurrentStock int       `gorm:"default:0" json:"current_stock"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
