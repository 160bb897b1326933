// Package backfill orchestrates retroactive invoice entry: a draft produced by
// OCR extraction or manual typing is enriched against the retailer's own
// customer and inventory records, edited freely, recomputed on demand, and
// finally persisted exactly once.
package backfill

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shrijana18/StockPilot-v1-sub002/internal/compute"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/match"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/models"
)

var (
	// ErrNoIdentity is returned when a save is attempted without an
	// authenticated retailer. The draft stays editable and nothing is written.
	ErrNoIdentity = errors.New("no authenticated retailer for save")

	// ErrSessionClosed is returned when a session is used after a successful
	// save. A finalized invoice is terminal.
	ErrSessionClosed = errors.New("backfill session already saved")
)

// RecordStore is the narrow persistence gateway the coordinator depends on:
// two retailer-scoped candidate reads and one exactly-once invoice write.
type RecordStore interface {
	ListCustomers(ctx context.Context, retailerID uint) ([]models.Customer, error)
	ListInventory(ctx context.Context, retailerID uint) ([]models.Product, error)

	// CreateInvoice persists a finalized invoice and returns its assigned
	// invoice id. Implementations must treat inv.DraftID as an idempotency
	// key: a duplicate save returns the original id without writing again.
	CreateInvoice(ctx context.Context, retailerID uint, inv *models.Invoice) (string, error)
}

// Coordinator wires the match engine and record store together. The retailer
// identity is passed into every call rather than read from ambient state.
type Coordinator struct {
	store   RecordStore
	matcher match.Matcher
}

func New(store RecordStore, matcher match.Matcher) *Coordinator {
	if matcher == nil {
		matcher = match.NewEngine()
	}
	return &Coordinator{store: store, matcher: matcher}
}

// State of an editing session.
type State string

const (
	StateCreated   State = "created"
	StateEnriching State = "enriching"
	StateEditable  State = "editable"
	StateComputed  State = "computed"
	StateSaving    State = "saving"
	StateSaved     State = "saved"
)

// Session owns one mutable draft from creation to save. It is single-owner
// state: no other session can observe or edit the same draft, so no locking
// is needed beyond the enrichment join.
type Session struct {
	coord *Coordinator
	draft models.InvoiceDraft
	state State
}

// NewSession starts an editing session around a draft. A missing draft id is
// assigned here so the idempotency key exists before the first save attempt.
func (c *Coordinator) NewSession(draft models.InvoiceDraft) *Session {
	if draft.DraftID == "" {
		draft.DraftID = uuid.NewString()
	}
	return &Session{coord: c, draft: draft, state: StateCreated}
}

// Draft returns the current working copy.
func (s *Session) Draft() models.InvoiceDraft {
	return s.draft
}

func (s *Session) State() State {
	return s.state
}

// SetDraft replaces the working copy with a user-edited draft. The draft id
// is sticky; edits never reset the idempotency key.
func (s *Session) SetDraft(draft models.InvoiceDraft) error {
	if s.state == StateSaved || s.state == StateSaving {
		return ErrSessionClosed
	}
	draft.DraftID = s.draft.DraftID
	s.draft = draft
	s.state = StateEditable
	return nil
}

// Enrich fetches customer and inventory candidates concurrently and applies
// fill-if-empty enrichment to the draft. The two fetches fail independently:
// either one erroring is logged and treated as an empty candidate set, and
// neither failure blocks editing or the other stream's enrichment.
func (s *Session) Enrich(ctx context.Context, retailerID uint) error {
	if s.state == StateSaved || s.state == StateSaving {
		return ErrSessionClosed
	}
	s.state = StateEnriching

	var (
		wg        sync.WaitGroup
		customers []models.Customer
		inventory []models.Product
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		recs, err := s.coord.store.ListCustomers(ctx, retailerID)
		if err != nil {
			log.Printf("backfill: customer candidate fetch failed, continuing without: %v", err)
			return
		}
		customers = recs
	}()
	go func() {
		defer wg.Done()
		recs, err := s.coord.store.ListInventory(ctx, retailerID)
		if err != nil {
			log.Printf("backfill: inventory candidate fetch failed, continuing without: %v", err)
			return
		}
		inventory = recs
	}()
	wg.Wait()

	s.coord.matcher.EnrichCustomer(&s.draft.Customer, customers)
	s.draft.LineItems = s.coord.matcher.EnrichItems(s.draft.LineItems, inventory)

	s.state = StateEditable
	return nil
}

// Totals recomputes the aggregate for the current draft. Safe to call on
// every edit.
func (s *Session) Totals() compute.Totals {
	totals := compute.Aggregate(s.draft.LineItems, s.draft.TaxPercent)
	if s.state == StateEditable || s.state == StateCreated {
		s.state = StateComputed
	}
	return totals
}

// Save snapshots the draft plus freshly computed totals into a finalized
// invoice and hands it to the record store. It fails fast without an
// authenticated retailer, and a session saves at most once.
func (s *Session) Save(ctx context.Context, retailerID uint) (*models.Invoice, error) {
	if s.state == StateSaved || s.state == StateSaving {
		return nil, ErrSessionClosed
	}
	if retailerID == 0 {
		return nil, ErrNoIdentity
	}
	s.state = StateSaving

	totals := compute.Aggregate(s.draft.LineItems, s.draft.TaxPercent)
	inv := s.finalize(retailerID, totals)

	invoiceID, err := s.coord.store.CreateInvoice(ctx, retailerID, inv)
	if err != nil {
		// Draft stays editable; the user re-triggers the save explicitly.
		s.state = StateEditable
		return nil, err
	}
	inv.InvoiceID = invoiceID
	s.state = StateSaved
	return inv, nil
}

// finalize maps the draft and totals into the persisted record shape,
// rounding money to currency precision exactly once.
func (s *Session) finalize(retailerID uint, totals compute.Totals) *models.Invoice {
	subtotal := compute.RoundCurrency(totals.Subtotal)
	gstAmount := compute.RoundCurrency(totals.TaxAmount)
	inv := &models.Invoice{
		DraftID:         s.draft.DraftID,
		RetailerID:      retailerID,
		CustomerName:    s.draft.Customer.Name,
		CustomerPhone:   s.draft.Customer.Phone,
		CustomerEmail:   s.draft.Customer.Email,
		CustomerAddress: s.draft.Customer.Address,
		InvoiceDate:     s.draft.InvoiceDate,
		GSTPercent:      s.draft.TaxPercent.Float(),
		Subtotal:        subtotal,
		GSTAmount:       gstAmount,
		// Summing the rounded parts keeps total == subtotal + taxAmount exact
		// at persisted precision.
		Total: compute.RoundCurrency(subtotal + gstAmount),
		PaymentMode:     s.draft.PaymentMode,
		InvoiceType:     s.draft.InvoiceType,
		Status:          models.InvoiceStatusBackfilled,
		CreatedAt:       time.Now(),
	}
	for _, item := range s.draft.LineItems {
		inv.Items = append(inv.Items, models.InvoiceItem{
			Name:     item.Name,
			Brand:    item.Brand,
			Category: item.Category,
			Quantity: item.Quantity.Float(),
			Unit:     item.Unit,
			Price:    item.Price.Float(),
			Discount: item.DiscountPercent.Float(),
		})
	}
	return inv
}
