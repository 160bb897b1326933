// Package store is the GORM-backed record store: retailer-scoped candidate
// reads and the exactly-once finalized-invoice write.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Shrijana18/StockPilot-v1-sub002/internal/models"
)

// Gateway implements backfill.RecordStore.
type Gateway struct {
	db     *gorm.DB
	prefix string
}

// New builds a gateway. prefix is the fixed invoice-id prefix, e.g. "INV-BF".
func New(db *gorm.DB, prefix string) *Gateway {
	if prefix == "" {
		prefix = "INV-BF"
	}
	return &Gateway{db: db, prefix: prefix}
}

func (g *Gateway) ListCustomers(ctx context.Context, retailerID uint) ([]models.Customer, error) {
	var customers []models.Customer
	err := g.db.WithContext(ctx).
		Where("retailer_id = ?", retailerID).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (g *Gateway) ListInventory(ctx context.Context, retailerID uint) ([]models.Product, error) {
	var products []models.Product
	err := g.db.WithContext(ctx).
		Where("retailer_id = ? AND is_active = ?", retailerID, true).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CreateInvoice writes the finalized invoice and its items in one
// transaction. The draft id is the idempotency key: when a record for it
// already exists the original invoice id is returned and nothing is written,
// so a double-submitted save cannot duplicate an invoice.
func (g *Gateway) CreateInvoice(ctx context.Context, retailerID uint, inv *models.Invoice) (string, error) {
	var existing models.Invoice
	err := g.db.WithContext(ctx).
		Where("retailer_id = ? AND draft_id = ?", retailerID, inv.DraftID).
		First(&existing).Error
	if err == nil {
		return existing.InvoiceID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	inv.RetailerID = retailerID
	inv.InvoiceID = g.nextInvoiceID()
	inv.IssuedAt = time.Now()

	if err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(inv).Error
	}); err != nil {
		return "", err
	}
	return inv.InvoiceID, nil
}

// ListInvoices returns finalized invoices for the retailer, newest first.
func (g *Gateway) ListInvoices(ctx context.Context, retailerID uint, limit, offset int) ([]models.Invoice, int64, error) {
	var total int64
	if err := g.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("retailer_id = ?", retailerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []models.Invoice
	err := g.db.WithContext(ctx).
		Preload("Items").
		Where("retailer_id = ?", retailerID).
		Order("issued_at desc").
		Limit(limit).Offset(offset).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

// nextInvoiceID derives the public invoice id from the prefix and the current
// timestamp, matching the id scheme of invoices issued through the live
// billing flow.
func (g *Gateway) nextInvoiceID() string {
	return fmt.Sprintf("%s-%d", g.prefix, time.Now().UnixMilli())
}
