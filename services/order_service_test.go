package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-service/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func seedOrderFixture(t *testing.T) (*OrderService, *fakeCustomerRepo, *fakeProductRepo, *fakeOrderRepo) {
	t.Helper()
	customers := &fakeCustomerRepo{}
	products := &fakeProductRepo{}
	orders := &fakeOrderRepo{}
	return NewOrderService(orders, customers, products), customers, products, orders
}

func TestCreateOrderCustomerNotFound(t *testing.T) {
	svc, _, _, orders := seedOrderFixture(t)

	_, err := svc.Create(context.Background(), CreateOrderRequest{
		CustomerID: uuid.New(),
		ProductIDs: []uuid.UUID{uuid.New()},
	})
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if orders.createCalls != 0 {
		t.Fatalf("expected no create attempt, got %d", orders.createCalls)
	}
}

func TestCreateOrderEmptyProductList(t *testing.T) {
	svc, customers, _, _ := seedOrderFixture(t)
	ctx := context.Background()

	customer := &models.Customer{Name: "Alice", Email: "alice@example.com"}
	if err := customers.Create(ctx, customer); err != nil {
		t.Fatalf("seed customer failed: %v", err)
	}

	_, err := svc.Create(ctx, CreateOrderRequest{CustomerID: customer.ID})
	if !errors.Is(err, ErrEmptyProductList) {
		t.Fatalf("expected ErrEmptyProductList, got %v", err)
	}
}

func TestCreateOrderInvalidProductReference(t *testing.T) {
	svc, customers, products, orders := seedOrderFixture(t)
	ctx := context.Background()

	customer := &models.Customer{Name: "Alice", Email: "alice@example.com"}
	if err := customers.Create(ctx, customer); err != nil {
		t.Fatalf("seed customer failed: %v", err)
	}
	product := &models.Product{Name: "Laptop", Price: decimal.RequireFromString("10.00")}
	if err := products.Create(ctx, product); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}

	missing := uuid.New()
	_, err := svc.Create(ctx, CreateOrderRequest{
		CustomerID: customer.ID,
		ProductIDs: []uuid.UUID{product.ID, missing},
	})

	var invalid *InvalidProductsError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidProductsError, got %v", err)
	}
	if len(invalid.IDs) != 1 || invalid.IDs[0] != missing {
		t.Fatalf("expected missing id %s reported, got %v", missing, invalid.IDs)
	}
	// No order row may exist after a failed reference check.
	if orders.createCalls != 0 {
		t.Fatalf("expected no create attempt, got %d", orders.createCalls)
	}
	if len(orders.orders) != 0 {
		t.Fatalf("expected no persisted order, got %d", len(orders.orders))
	}
}

func TestCreateOrderComputesTotal(t *testing.T) {
	svc, customers, products, orders := seedOrderFixture(t)
	ctx := context.Background()

	customer := &models.Customer{Name: "Alice", Email: "alice@example.com"}
	if err := customers.Create(ctx, customer); err != nil {
		t.Fatalf("seed customer failed: %v", err)
	}
	laptop := &models.Product{Name: "Laptop", Price: decimal.RequireFromString("10.00")}
	mouse := &models.Product{Name: "Mouse", Price: decimal.RequireFromString("15.50")}
	for _, p := range []*models.Product{laptop, mouse} {
		if err := products.Create(ctx, p); err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}

	order, err := svc.Create(ctx, CreateOrderRequest{
		CustomerID: customer.ID,
		ProductIDs: []uuid.UUID{laptop.ID, mouse.ID},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if !order.TotalAmount.Equal(decimal.RequireFromString("25.50")) {
		t.Fatalf("expected total 25.50, got %s", order.TotalAmount)
	}
	if len(order.Products) != 2 {
		t.Fatalf("expected 2 associated products, got %d", len(order.Products))
	}
	if order.OrderDate.IsZero() {
		t.Fatal("expected order date to default to now")
	}
	if orders.createCalls != 1 {
		t.Fatalf("expected 1 create call, got %d", orders.createCalls)
	}
}

func TestCreateOrderHonorsExplicitDate(t *testing.T) {
	svc, customers, products, _ := seedOrderFixture(t)
	ctx := context.Background()

	customer := &models.Customer{Name: "Alice", Email: "alice@example.com"}
	if err := customers.Create(ctx, customer); err != nil {
		t.Fatalf("seed customer failed: %v", err)
	}
	product := &models.Product{Name: "Laptop", Price: decimal.RequireFromString("10.00")}
	if err := products.Create(ctx, product); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}

	when := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	order, err := svc.Create(ctx, CreateOrderRequest{
		CustomerID: customer.ID,
		ProductIDs: []uuid.UUID{product.ID},
		OrderDate:  &when,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !order.OrderDate.Equal(when) {
		t.Fatalf("expected order date %s, got %s", when, order.OrderDate)
	}
}
