package models

import (
	"encoding/json"
	"testing"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"json number", `{"price": 99.5}`, 99.5},
		{"numeric string", `{"price": "42"}`, 42},
		{"string with spaces", `{"price": " 10.25 "}`, 10.25},
		{"garbage string", `{"price": "abc"}`, 0},
		{"null", `{"price": null}`, 0},
		{"missing", `{}`, 0},
		{"empty string", `{"price": ""}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var row struct {
				Price FlexNumber `json:"price"`
			}
			if err := json.Unmarshal([]byte(tt.in), &row); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := row.Price.Float(); got != tt.want {
				t.Errorf("Float() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlexNumberMarshal(t *testing.T) {
	b, err := json.Marshal(struct {
		Qty FlexNumber `json:"qty"`
	}{Qty: Num(2)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"qty":2}` {
		t.Errorf("marshal = %s, want {\"qty\":2}", b)
	}
}

func TestInvoiceMarshalNestsCustomer(t *testing.T) {
	inv := Invoice{
		InvoiceID:     "INV-BF-1",
		CustomerName:  "Ravi",
		CustomerPhone: "9876543210",
		Status:        InvoiceStatusBackfilled,
	}

	b, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	customer, ok := out["customer"].(map[string]any)
	if !ok {
		t.Fatalf("customer block missing: %s", b)
	}
	if customer["name"] != "Ravi" || customer["phone"] != "9876543210" {
		t.Errorf("customer block = %v", customer)
	}
	if out["status"] != "backfilled" {
		t.Errorf("status = %v", out["status"])
	}
}
