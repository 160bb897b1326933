package match

import (
	"testing"

	"github.com/Shrijana18/StockPilot-v1-sub002/internal/models"
)

func TestSubstringScore(t *testing.T) {
	tests := []struct {
		name  string
		query string
		cand  string
		want  float64
	}{
		{"query contained in candidate", "ravi", "Ravi Kumar", 1},
		{"candidate contained in query", "Ravi Kumar Traders", "ravi kumar", 1},
		{"case insensitive", "RAVI", "ravi", 1},
		{"no overlap", "Suresh", "Ravi Kumar", 0},
		{"empty query never matches", "", "Ravi Kumar", 0},
		{"blank query never matches", "   ", "Ravi Kumar", 0},
		{"empty candidate never matches", "Ravi", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubstringScore(tt.query, tt.cand); got != tt.want {
				t.Errorf("SubstringScore(%q, %q) = %v, want %v", tt.query, tt.cand, got, tt.want)
			}
		})
	}
}

func TestEnrichCustomerFillIfEmpty(t *testing.T) {
	candidates := []models.Customer{
		{Name: "Ravi Kumar", Phone: "9876543210", Email: "ravi@shop.in", Address: "MG Road"},
	}

	t.Run("empty fields are filled", func(t *testing.T) {
		dst := models.DraftCustomer{Name: "Ravi"}
		matched := NewEngine().EnrichCustomer(&dst, candidates)
		if !matched {
			t.Fatal("expected a match")
		}
		if dst.Phone != "9876543210" {
			t.Errorf("phone = %q, want 9876543210", dst.Phone)
		}
		if dst.Name != "Ravi" {
			t.Errorf("name was overwritten to %q", dst.Name)
		}
	})

	t.Run("populated fields are never overwritten", func(t *testing.T) {
		dst := models.DraftCustomer{Name: "Ravi", Phone: "1112223334", Email: ""}
		NewEngine().EnrichCustomer(&dst, candidates)
		if dst.Phone != "1112223334" {
			t.Errorf("user-entered phone was clobbered: %q", dst.Phone)
		}
		if dst.Email != "ravi@shop.in" {
			t.Errorf("empty email should still be filled, got %q", dst.Email)
		}
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		dst := models.DraftCustomer{Name: ""}
		if NewEngine().EnrichCustomer(&dst, candidates) {
			t.Error("blank customer name must not match any candidate")
		}
		if dst.Phone != "" {
			t.Errorf("phone filled from vacuous match: %q", dst.Phone)
		}
	})

	t.Run("no candidates is a no-op", func(t *testing.T) {
		dst := models.DraftCustomer{Name: "Ravi"}
		if NewEngine().EnrichCustomer(&dst, nil) {
			t.Error("match reported with no candidates")
		}
	})
}

func TestEnrichCustomerFirstMatchWins(t *testing.T) {
	candidates := []models.Customer{
		{Name: "Ravi", Phone: "1111111111"},
		{Name: "Ravi Kumar", Phone: "2222222222", Email: "second@shop.in"},
	}

	dst := models.DraftCustomer{Name: "Ravi"}
	NewEngine().EnrichCustomer(&dst, candidates)

	// Default substring scoring keeps legacy behavior: first in iteration
	// order wins, and later candidates contribute nothing.
	if dst.Phone != "1111111111" {
		t.Errorf("phone = %q, want first candidate's", dst.Phone)
	}
	if dst.Email != "" {
		t.Errorf("email filled from non-winning candidate: %q", dst.Email)
	}
}

func TestEnrichCustomerOverlapRanking(t *testing.T) {
	candidates := []models.Customer{
		{Name: "Ravi", Phone: "1111111111"},
		{Name: "Ravi Kumar", Phone: "2222222222"},
	}

	dst := models.DraftCustomer{Name: "Ravi Kumar Traders"}
	NewEngine(WithScorer(OverlapScore)).EnrichCustomer(&dst, candidates)

	if dst.Phone != "2222222222" {
		t.Errorf("phone = %q, want the longer-overlap candidate's", dst.Phone)
	}
}

func TestEnrichItems(t *testing.T) {
	candidates := []models.Product{
		{Name: "Amul Butter 500g", Brand: "Amul", Unit: "pack"},
		{Name: "Amul Butter", Category: "Dairy", SKU: "AMB-500"},
	}

	t.Run("folds over all candidates", func(t *testing.T) {
		items := []models.DraftLineItem{{Name: "amul butter"}}
		got := NewEngine().EnrichItems(items, candidates)

		// First candidate fills brand and unit; the second still fills the
		// fields the first left empty.
		if got[0].Brand != "Amul" || got[0].Unit != "pack" {
			t.Errorf("first candidate fields missing: %+v", got[0])
		}
		if got[0].Category != "Dairy" || got[0].SKU != "AMB-500" {
			t.Errorf("later candidate should fill remaining fields: %+v", got[0])
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		items := []models.DraftLineItem{{Name: "amul butter"}}
		NewEngine().EnrichItems(items, candidates)
		if items[0].Brand != "" {
			t.Errorf("caller's slice was mutated: %+v", items[0])
		}
	})

	t.Run("user-entered fields win", func(t *testing.T) {
		items := []models.DraftLineItem{{Name: "amul butter", Brand: "Local Dairy"}}
		got := NewEngine().EnrichItems(items, candidates)
		if got[0].Brand != "Local Dairy" {
			t.Errorf("brand overwritten: %q", got[0].Brand)
		}
	})

	t.Run("blank item name matches nothing", func(t *testing.T) {
		items := []models.DraftLineItem{{Name: ""}}
		got := NewEngine().EnrichItems(items, candidates)
		if got[0].Brand != "" || got[0].SKU != "" {
			t.Errorf("blank name enriched: %+v", got[0])
		}
	})

	t.Run("empty candidate list is a no-op", func(t *testing.T) {
		items := []models.DraftLineItem{{Name: "amul butter"}}
		got := NewEngine().EnrichItems(items, nil)
		if got[0] != items[0] {
			t.Errorf("items changed with no candidates: %+v", got[0])
		}
	})
}
