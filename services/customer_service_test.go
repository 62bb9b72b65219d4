package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"crm-service/repository"
)

func strPtr(s string) *string { return &s }

func TestValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"+12345678901", true},
		{"123-456-7890", true},
		{"abc", false},
		{"12345", false},
		{"", true}, // optional field
	}

	for _, tc := range cases {
		if got := ValidPhone(tc.phone); got != tc.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestCreateCustomer(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := NewCustomerService(repo)

	customer, err := svc.Create(context.Background(), CreateCustomerRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: strPtr("+12345678901"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if customer.ID.String() == "" {
		t.Fatal("expected customer id to be set")
	}
	if len(repo.customers) != 1 {
		t.Fatalf("expected 1 persisted customer, got %d", len(repo.customers))
	}
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := NewCustomerService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateCustomerRequest{Name: "Alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	_, err := svc.Create(ctx, CreateCustomerRequest{Name: "Alice Again", Email: "alice@example.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(repo.customers) != 1 {
		t.Fatalf("expected no new row, got %d customers", len(repo.customers))
	}
}

func TestCreateCustomerDuplicateRace(t *testing.T) {
	// The uniqueness pre-check passes but a concurrent insert wins: the
	// repository reports the unique-index violation, which must surface as
	// the same duplicate-email failure.
	repo := &fakeCustomerRepo{createErr: repository.ErrDuplicate}
	svc := NewCustomerService(repo)

	_, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "Bob", Email: "bob@example.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreateCustomerInvalidPhone(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := NewCustomerService(repo)

	_, err := svc.Create(context.Background(), CreateCustomerRequest{
		Name:  "Bob",
		Email: "bob@example.com",
		Phone: strPtr("abc"),
	})
	if !errors.Is(err, ErrInvalidPhoneFormat) {
		t.Fatalf("expected ErrInvalidPhoneFormat, got %v", err)
	}
	if len(repo.customers) != 0 {
		t.Fatalf("expected no persisted customer, got %d", len(repo.customers))
	}
}

func TestBulkCreatePartialSuccess(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := NewCustomerService(repo)

	created, errs := svc.BulkCreate(context.Background(), []CreateCustomerRequest{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Alice Again", Email: "alice@example.com"}, // duplicate of item 1
		{Name: "Bob", Email: "bob@example.com"},
	})

	if len(created) != 2 {
		t.Fatalf("expected 2 created customers, got %d", len(created))
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if !strings.HasPrefix(errs[0], "Customer 2:") {
		t.Fatalf("expected error keyed to item 2, got %q", errs[0])
	}
	if !strings.Contains(errs[0], "Email already exists") {
		t.Fatalf("expected duplicate email reason, got %q", errs[0])
	}
	if len(repo.customers) != 2 {
		t.Fatalf("expected 2 persisted customers, got %d", len(repo.customers))
	}
}
