package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"crm-service/models"
	"crm-service/repository"

	"go.uber.org/zap"
)

// Accepts international numbers like +1234567890 (9-15 digits) or the
// dashed US form 123-456-7890.
var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$|^\d{3}-\d{3}-\d{4}$`)

// ValidPhone reports whether the phone number matches the accepted formats.
// An empty phone is valid because the field is optional.
func ValidPhone(phone string) bool {
	if phone == "" {
		return true
	}
	return phonePattern.MatchString(phone)
}

// CustomerService implements customer validation and creation.
type CustomerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// Create validates and persists a single customer. Checks run in order:
// email uniqueness first, then phone format.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*models.Customer, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.customers.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	if req.Phone != nil && !ValidPhone(*req.Phone) {
		return nil, ErrInvalidPhoneFormat
	}

	customer := &models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		// A concurrent create can win the race between the uniqueness
		// check and the insert; the unique index reports it here.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	zap.L().Info("customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("email", customer.Email),
	)
	return customer, nil
}

// List is a pass-through read applying the optional filter predicates.
func (s *CustomerService) List(ctx context.Context, filter repository.CustomerFilter) ([]models.Customer, error) {
	return s.customers.FindAll(ctx, filter)
}

// BulkCreate validates and persists each item independently. One invalid
// item does not roll back its valid siblings: successes are committed and
// failures are collected as "Customer <n>: <reason>" strings, n 1-based.
func (s *CustomerService) BulkCreate(ctx context.Context, reqs []CreateCustomerRequest) ([]models.Customer, []string) {
	var created []models.Customer
	var errs []string

	for i, req := range reqs {
		customer, err := s.Create(ctx, req)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Customer %d: %s", i+1, err))
			continue
		}
		created = append(created, *customer)
	}

	return created, errs
}
