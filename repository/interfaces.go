package repository

import (
	"context"

	"crm-service/models"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindAll(ctx context.Context, filter CustomerFilter) ([]models.Customer, error)
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]models.Product, error)
}

// OrderRepository defines the interface for order data access. Create must
// persist the order row and its product associations atomically.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order, products []models.Product) error
	FindAll(ctx context.Context, filter OrderFilter) ([]models.Order, error)
}
