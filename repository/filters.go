package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filter structs carry the optional query predicates for the list endpoints.
// Nil fields are ignored; set fields combine with logical AND.

type CustomerFilter struct {
	Name           *string
	NameIContains  *string
	Email          *string
	EmailIContains *string
	Phone          *string
	PhoneIContains *string
	PhonePattern   *string // prefix match, e.g. "+1" for US numbers
	CreatedAtGte   *time.Time
	CreatedAtLte   *time.Time
}

type ProductFilter struct {
	Name          *string
	NameIContains *string
	PriceGte      *decimal.Decimal
	PriceLte      *decimal.Decimal
	StockGte      *int
	StockLte      *int
	LowStock      *bool // true flags products with stock below 10
}

type OrderFilter struct {
	TotalAmountGte *decimal.Decimal
	TotalAmountLte *decimal.Decimal
	OrderDateGte   *time.Time
	OrderDateLte   *time.Time
	CustomerName   *string // case-insensitive substring on the related customer
	CustomerEmail  *string
	ProductName    *string // case-insensitive substring on any associated product
	ProductID      *uuid.UUID
}

// LowStockThreshold is the stock level below which a product counts as low.
const LowStockThreshold = 10
