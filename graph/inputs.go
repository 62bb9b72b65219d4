package graph

import (
	"fmt"
	"time"

	"crm-service/repository"
	"crm-service/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Helpers turning the untyped argument maps graphql-go hands to resolvers
// into typed request and filter structs before any business logic runs.

func argMap(args map[string]interface{}, key string) map[string]interface{} {
	if m, ok := args[key].(map[string]interface{}); ok {
		return m
	}
	return nil
}

func stringArg(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func intArg(m map[string]interface{}, key string) *int {
	if v, ok := m[key].(int); ok {
		return &v
	}
	return nil
}

func boolArg(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func timeArg(m map[string]interface{}, key string) *time.Time {
	if v, ok := m[key].(time.Time); ok {
		return &v
	}
	return nil
}

func decimalArg(m map[string]interface{}, key string) *decimal.Decimal {
	switch v := m[key].(type) {
	case float64:
		d := decimal.NewFromFloat(v)
		return &d
	case int:
		d := decimal.NewFromInt(int64(v))
		return &d
	}
	return nil
}

func uuidArg(m map[string]interface{}, key string) (*uuid.UUID, error) {
	v, ok := m[key].(string)
	if !ok {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", v, err)
	}
	return &id, nil
}

func customerFilterFromArgs(m map[string]interface{}) repository.CustomerFilter {
	if m == nil {
		return repository.CustomerFilter{}
	}
	return repository.CustomerFilter{
		Name:           stringArg(m, "name"),
		NameIContains:  stringArg(m, "nameIcontains"),
		Email:          stringArg(m, "email"),
		EmailIContains: stringArg(m, "emailIcontains"),
		Phone:          stringArg(m, "phone"),
		PhoneIContains: stringArg(m, "phoneIcontains"),
		PhonePattern:   stringArg(m, "phonePattern"),
		CreatedAtGte:   timeArg(m, "createdAtGte"),
		CreatedAtLte:   timeArg(m, "createdAtLte"),
	}
}

func productFilterFromArgs(m map[string]interface{}) repository.ProductFilter {
	if m == nil {
		return repository.ProductFilter{}
	}
	return repository.ProductFilter{
		Name:          stringArg(m, "name"),
		NameIContains: stringArg(m, "nameIcontains"),
		PriceGte:      decimalArg(m, "priceGte"),
		PriceLte:      decimalArg(m, "priceLte"),
		StockGte:      intArg(m, "stockGte"),
		StockLte:      intArg(m, "stockLte"),
		LowStock:      boolArg(m, "lowStock"),
	}
}

func orderFilterFromArgs(m map[string]interface{}) (repository.OrderFilter, error) {
	if m == nil {
		return repository.OrderFilter{}, nil
	}
	productID, err := uuidArg(m, "productId")
	if err != nil {
		return repository.OrderFilter{}, err
	}
	return repository.OrderFilter{
		TotalAmountGte: decimalArg(m, "totalAmountGte"),
		TotalAmountLte: decimalArg(m, "totalAmountLte"),
		OrderDateGte:   timeArg(m, "orderDateGte"),
		OrderDateLte:   timeArg(m, "orderDateLte"),
		CustomerName:   stringArg(m, "customerName"),
		CustomerEmail:  stringArg(m, "customerEmail"),
		ProductName:    stringArg(m, "productName"),
		ProductID:      productID,
	}, nil
}

func customerRequestFromInput(m map[string]interface{}) services.CreateCustomerRequest {
	req := services.CreateCustomerRequest{}
	if v, ok := m["name"].(string); ok {
		req.Name = v
	}
	if v, ok := m["email"].(string); ok {
		req.Email = v
	}
	req.Phone = stringArg(m, "phone")
	return req
}

func productRequestFromInput(m map[string]interface{}) services.CreateProductRequest {
	req := services.CreateProductRequest{}
	if v, ok := m["name"].(string); ok {
		req.Name = v
	}
	if d := decimalArg(m, "price"); d != nil {
		req.Price = *d
	}
	req.Stock = intArg(m, "stock")
	return req
}

func orderRequestFromInput(m map[string]interface{}) (services.CreateOrderRequest, error) {
	req := services.CreateOrderRequest{}

	customerID, err := uuidArg(m, "customerId")
	if err != nil {
		return req, err
	}
	if customerID != nil {
		req.CustomerID = *customerID
	}

	if raw, ok := m["productIds"].([]interface{}); ok {
		req.ProductIDs = make([]uuid.UUID, 0, len(raw))
		for _, item := range raw {
			s, ok := item.(string)
			if !ok {
				return req, fmt.Errorf("invalid product id %v", item)
			}
			id, err := uuid.Parse(s)
			if err != nil {
				return req, fmt.Errorf("invalid product id %q: %w", s, err)
			}
			req.ProductIDs = append(req.ProductIDs, id)
		}
	}

	req.OrderDate = timeArg(m, "orderDate")
	return req, nil
}
