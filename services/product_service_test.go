package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func intPtr(n int) *int { return &n }

func TestCreateProductPriceValidation(t *testing.T) {
	cases := []struct {
		name    string
		price   string
		wantErr error
	}{
		{"zero price", "0", ErrInvalidPrice},
		{"negative price", "-5", ErrInvalidPrice},
		{"smallest positive price", "0.01", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeProductRepo{}
			svc := NewProductService(repo)

			_, err := svc.Create(context.Background(), CreateProductRequest{
				Name:  "Widget",
				Price: decimal.RequireFromString(tc.price),
			})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("price %s: expected %v, got %v", tc.price, tc.wantErr, err)
			}
			if tc.wantErr != nil && len(repo.products) != 0 {
				t.Fatalf("expected no persisted product, got %d", len(repo.products))
			}
		})
	}
}

func TestCreateProductNegativeStock(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	_, err := svc.Create(context.Background(), CreateProductRequest{
		Name:  "Widget",
		Price: decimal.RequireFromString("9.99"),
		Stock: intPtr(-1),
	})
	if !errors.Is(err, ErrNegativeStock) {
		t.Fatalf("expected ErrNegativeStock, got %v", err)
	}
}

func TestCreateProductDefaultStock(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	product, err := svc.Create(context.Background(), CreateProductRequest{
		Name:  "Widget",
		Price: decimal.RequireFromString("9.99"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if product.Stock != 0 {
		t.Fatalf("expected default stock 0, got %d", product.Stock)
	}
}
