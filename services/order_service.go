package services

import (
	"context"
	"errors"
	"time"

	"crm-service/models"
	"crm-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService implements order validation and creation.
type OrderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
}

func NewOrderService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
) *OrderService {
	return &OrderService{
		orders:    orders,
		customers: customers,
		products:  products,
	}
}

// List is a pass-through read applying the optional filter predicates.
func (s *OrderService) List(ctx context.Context, filter repository.OrderFilter) ([]models.Order, error) {
	return s.orders.FindAll(ctx, filter)
}

// Create validates the order request, resolves all product references,
// computes the total from the current product prices and persists the order
// with its associations in one transaction.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	customer, err := s.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if len(req.ProductIDs) == 0 {
		return nil, ErrEmptyProductList
	}

	products, err := s.products.FindByIDs(ctx, req.ProductIDs)
	if err != nil {
		return nil, err
	}
	if len(products) != len(req.ProductIDs) {
		return nil, &InvalidProductsError{IDs: missingIDs(req.ProductIDs, products)}
	}

	orderDate := time.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	order := &models.Order{
		CustomerID:  customer.ID,
		Customer:    *customer,
		TotalAmount: models.CalculateTotal(products),
		OrderDate:   orderDate,
	}
	if err := s.orders.Create(ctx, order, products); err != nil {
		return nil, err
	}
	order.Products = products

	zap.L().Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.String("total_amount", order.TotalAmount.String()),
	)
	return order, nil
}

// missingIDs returns the requested ids that did not resolve to a product.
func missingIDs(requested []uuid.UUID, found []models.Product) []uuid.UUID {
	resolved := make(map[uuid.UUID]bool, len(found))
	for _, p := range found {
		resolved[p.ID] = true
	}
	var missing []uuid.UUID
	for _, id := range requested {
		if !resolved[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
