package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Validation failures are typed values so the GraphQL boundary can turn them
// into {success: false, message} responses instead of transport errors. The
// messages are the user-facing response text.
var (
	ErrDuplicateEmail     = errors.New("Email already exists")
	ErrInvalidPhoneFormat = errors.New("Invalid phone format. Use +1234567890 or 123-456-7890")
	ErrInvalidPrice       = errors.New("Price must be positive")
	ErrNegativeStock      = errors.New("Stock cannot be negative")
	ErrCustomerNotFound   = errors.New("Customer not found")
	ErrEmptyProductList   = errors.New("At least one product must be selected")
)

// InvalidProductsError reports which product ids in an order request did not
// resolve to existing products.
type InvalidProductsError struct {
	IDs []uuid.UUID
}

func (e *InvalidProductsError) Error() string {
	if len(e.IDs) == 0 {
		return "One or more product IDs are invalid"
	}
	ids := make([]string, 0, len(e.IDs))
	for _, id := range e.IDs {
		ids = append(ids, id.String())
	}
	return "One or more product IDs are invalid: " + strings.Join(ids, ", ")
}
