package services

import (
	"context"
	"time"

	"crm-service/models"
	"crm-service/repository"

	"github.com/google/uuid"
)

// In-memory fakes implementing the repository interfaces.

type fakeCustomerRepo struct {
	customers []models.Customer
	createErr error
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.customers = append(f.customers, *c)
	return nil
}

func (f *fakeCustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, c := range f.customers {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCustomerRepo) FindAll(ctx context.Context, filter repository.CustomerFilter) ([]models.Customer, error) {
	return f.customers, nil
}

type fakeProductRepo struct {
	products []models.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *models.Product) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var found []models.Product
	for _, id := range ids {
		for _, p := range f.products {
			if p.ID == id {
				found = append(found, p)
			}
		}
	}
	return found, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	return f.products, nil
}

type fakeOrderRepo struct {
	orders      []models.Order
	createCalls int
	createErr   error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order, products []models.Product) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = uuid.New()
	stored := *order
	stored.Products = products
	f.orders = append(f.orders, stored)
	return nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context, filter repository.OrderFilter) ([]models.Order, error) {
	return f.orders, nil
}
