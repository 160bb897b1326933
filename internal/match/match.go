// Package match decides whether an uncertain name from a scanned or hand-typed
// invoice refers to one of the retailer's existing records, and copies record
// fields into the draft without overwriting anything the user already entered.
package match

import (
	"strings"

	"github.com/Shrijana18/StockPilot-v1-sub002/internal/models"
)

// Scorer rates how well a candidate record name answers a query. A score of 0
// means no match; the highest strictly-positive score wins. Injecting a scorer
// swaps the ranking strategy without touching callers.
type Scorer func(query, name string) float64

// SubstringScore is the default strategy: 1 when either string contains the
// other case-insensitively, 0 otherwise. All matches scoring equal means the
// first candidate in iteration order wins, which preserves the behavior the
// platform has always had. A blank query or blank name never matches; the
// empty string is a substring of everything, so without the guard every
// candidate would match vacuously.
func SubstringScore(query, name string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	n := strings.ToLower(strings.TrimSpace(name))
	if q == "" || n == "" {
		return 0
	}
	if strings.Contains(n, q) || strings.Contains(q, n) {
		return 1
	}
	return 0
}

// OverlapScore ranks by the longest common substring relative to the shorter
// input, so "Ravi Kumar Traders" prefers "Ravi Kumar" over "Ravi". It only
// scores pairs the substring rule would accept, keeping the match set
// identical and changing the winner alone.
func OverlapScore(query, name string) float64 {
	if SubstringScore(query, name) == 0 {
		return 0
	}
	q := strings.ToLower(strings.TrimSpace(query))
	n := strings.ToLower(strings.TrimSpace(name))
	shorter := len(q)
	if len(n) < shorter {
		shorter = len(n)
	}
	// Containment in one direction or the other means the shorter string is
	// itself the overlap.
	return float64(shorter) / float64(max(len(q), len(n)))
}

// Matcher is the capability the coordinator depends on. The default engine
// scans candidate slices linearly; an indexed or streaming implementation can
// replace it behind the same contract.
type Matcher interface {
	// EnrichCustomer fills empty contact fields of dst from the best-matching
	// candidate. Reports whether any candidate matched.
	EnrichCustomer(dst *models.DraftCustomer, candidates []models.Customer) bool

	// EnrichItems returns a copy of items with empty Brand, Category, Unit and
	// SKU fields filled from every matching inventory candidate.
	EnrichItems(items []models.DraftLineItem, candidates []models.Product) []models.DraftLineItem
}

// Engine is the scan-based Matcher.
type Engine struct {
	score Scorer
}

// Option configures an Engine.
type Option func(*Engine)

// WithScorer overrides the default substring strategy.
func WithScorer(s Scorer) Option {
	return func(e *Engine) { e.score = s }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{score: SubstringScore}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnrichCustomer picks the best-scoring candidate for dst.Name and copies its
// phone, email and address into dst, each only when the draft field is still
// empty. dst.Name itself is never touched.
func (e *Engine) EnrichCustomer(dst *models.DraftCustomer, candidates []models.Customer) bool {
	if strings.TrimSpace(dst.Name) == "" {
		return false
	}
	best := -1
	bestScore := 0.0
	for i, cand := range candidates {
		if s := e.score(dst.Name, cand.Name); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 {
		return false
	}
	cand := candidates[best]
	fillIfEmpty(&dst.Phone, cand.Phone)
	fillIfEmpty(&dst.Email, cand.Email)
	fillIfEmpty(&dst.Address, cand.Address)
	return true
}

// EnrichItems folds every candidate over every line item: a later candidate
// can still fill fields an earlier one left empty. The input slice is never
// mutated; callers keep their original draft if they want to diff.
func (e *Engine) EnrichItems(items []models.DraftLineItem, candidates []models.Product) []models.DraftLineItem {
	if len(items) == 0 {
		return items
	}
	enriched := make([]models.DraftLineItem, len(items))
	copy(enriched, items)

	for i := range enriched {
		if strings.TrimSpace(enriched[i].Name) == "" {
			continue
		}
		for _, cand := range candidates {
			if e.score(enriched[i].Name, cand.Name) <= 0 {
				continue
			}
			fillIfEmpty(&enriched[i].Brand, cand.Brand)
			fillIfEmpty(&enriched[i].Category, cand.Category)
			fillIfEmpty(&enriched[i].Unit, cand.Unit)
			fillIfEmpty(&enriched[i].SKU, cand.SKU)
		}
	}
	return enriched
}

func fillIfEmpty(dst *string, value string) {
	if strings.TrimSpace(*dst) == "" && value != "" {
		*dst = value
	}
}
