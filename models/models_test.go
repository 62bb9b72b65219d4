package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateTotal(t *testing.T) {
	products := []Product{
		{Name: "Laptop", Price: decimal.RequireFromString("10.00")},
		{Name: "Mouse", Price: decimal.RequireFromString("15.50")},
	}

	total := CalculateTotal(products)

	if !total.Equal(decimal.RequireFromString("25.50")) {
		t.Fatalf("expected total 25.50, got %s", total)
	}
}

func TestCalculateTotalEmpty(t *testing.T) {
	total := CalculateTotal(nil)
	if !total.IsZero() {
		t.Fatalf("expected zero total for no products, got %s", total)
	}
}
