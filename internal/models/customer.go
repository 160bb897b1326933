package models

import (
	"time"
)

// Customer is a retailer-owned customer record. During backfill it is read
// only as an enrichment candidate and never mutated.
type Customer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RetailerID uint      `gorm:"index;not null" json:"retailer_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Phone      string    `gorm:"size:15" json:"phone"`
	Email      string    `gorm:"size:100" json:"email"`
	Address    string    `gorm:"type:text" json:"address"`
	CreatedAt  time.Time `json:"created_at"`
}
