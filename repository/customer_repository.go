package repository

import (
	"context"
	"errors"

	"crm-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new instance of GormCustomerRepository.
func NewGormCustomerRepository(db *gorm.DB) CustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create inserts a new customer. A unique-index violation on email is
// reported as ErrDuplicate so races with concurrent creates surface the
// same failure as the pre-insert uniqueness check.
func (r *GormCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// ExistsByEmail reports whether a customer with exactly this email exists.
// The match is case-sensitive.
func (r *GormCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAll returns customers matching the filter, newest first.
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter CustomerFilter) ([]models.Customer, error) {
	query := r.db.WithContext(ctx).Model(&models.Customer{})

	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.NameIContains != nil {
		query = query.Where("name ILIKE ?", "%"+*filter.NameIContains+"%")
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}
	if filter.EmailIContains != nil {
		query = query.Where("email ILIKE ?", "%"+*filter.EmailIContains+"%")
	}
	if filter.Phone != nil {
		query = query.Where("phone = ?", *filter.Phone)
	}
	if filter.PhoneIContains != nil {
		query = query.Where("phone ILIKE ?", "%"+*filter.PhoneIContains+"%")
	}
	if filter.PhonePattern != nil {
		query = query.Where("phone LIKE ?", *filter.PhonePattern+"%")
	}
	if filter.CreatedAtGte != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAtGte)
	}
	if filter.CreatedAtLte != nil {
		query = query.Where("created_at <= ?", *filter.CreatedAtLte)
	}

	var customers []models.Customer
	if err := query.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
