package services

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// CreateCustomerRequest is the typed input for createCustomer and each item
// of bulkCreateCustomers.
type CreateCustomerRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Email string  `json:"email" validate:"required,email,max=254"`
	Phone *string `json:"phone" validate:"omitempty,max=17"`
}

// CreateProductRequest is the typed input for createProduct. Stock defaults
// to 0 when omitted.
type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required,max=100"`
	Price decimal.Decimal `json:"price"`
	Stock *int            `json:"stock"`
}

// CreateOrderRequest is the typed input for createOrder. OrderDate defaults
// to the current time when omitted.
type CreateOrderRequest struct {
	CustomerID uuid.UUID   `json:"customer_id"`
	ProductIDs []uuid.UUID `json:"product_ids"`
	OrderDate  *time.Time  `json:"order_date"`
}
