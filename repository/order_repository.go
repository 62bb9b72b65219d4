package repository

import (
	"context"

	"crm-service/models"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new instance of GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists the order row and its product associations inside one
// transaction, so a failure midway leaves no partial order behind.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order, products []models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Products", "Customer").Create(order).Error; err != nil {
			return err
		}
		if err := tx.Model(order).Association("Products").Append(&products); err != nil {
			return err
		}
		return nil
	})
}

// FindAll returns orders matching the filter, newest first, with customer
// and products preloaded for the GraphQL layer.
func (r *GormOrderRepository) FindAll(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Preload("Customer").
		Preload("Products")

	if filter.TotalAmountGte != nil {
		query = query.Where("orders.total_amount >= ?", *filter.TotalAmountGte)
	}
	if filter.TotalAmountLte != nil {
		query = query.Where("orders.total_amount <= ?", *filter.TotalAmountLte)
	}
	if filter.OrderDateGte != nil {
		query = query.Where("orders.order_date >= ?", *filter.OrderDateGte)
	}
	if filter.OrderDateLte != nil {
		query = query.Where("orders.order_date <= ?", *filter.OrderDateLte)
	}
	if filter.CustomerName != nil || filter.CustomerEmail != nil {
		query = query.Joins("JOIN customers ON customers.id = orders.customer_id")
		if filter.CustomerName != nil {
			query = query.Where("customers.name ILIKE ?", "%"+*filter.CustomerName+"%")
		}
		if filter.CustomerEmail != nil {
			query = query.Where("customers.email ILIKE ?", "%"+*filter.CustomerEmail+"%")
		}
	}
	if filter.ProductName != nil || filter.ProductID != nil {
		query = query.
			Joins("JOIN order_products ON order_products.order_id = orders.id").
			Joins("JOIN products ON products.id = order_products.product_id").
			Distinct("orders.*")
		if filter.ProductName != nil {
			query = query.Where("products.name ILIKE ?", "%"+*filter.ProductName+"%")
		}
		if filter.ProductID != nil {
			query = query.Where("products.id = ?", *filter.ProductID)
		}
	}

	var orders []models.Order
	if err := query.Order("orders.order_date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
