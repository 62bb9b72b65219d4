package services

import (
	"context"

	"crm-service/models"
	"crm-service/repository"

	"go.uber.org/zap"
)

// ProductService implements product validation and creation.
type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// List is a pass-through read applying the optional filter predicates.
func (s *ProductService) List(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	return s.products.FindAll(ctx, filter)
}

// Create validates and persists a product. Price must be strictly positive,
// stock non-negative (defaulting to 0).
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	if !req.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	product := &models.Product{
		Name:  req.Name,
		Price: req.Price,
		Stock: stock,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	zap.L().Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)
	return product, nil
}
