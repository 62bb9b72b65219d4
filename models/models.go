package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is a CRM contact. Email is unique across all customers
// (case-sensitive, enforced by the database index).
type Customer struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(254);uniqueIndex;not null"`
	Phone     *string   `json:"phone" gorm:"type:varchar(17)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Orders    []Order   `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

type Product struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string          `json:"name" gorm:"type:varchar(100);not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Stock     int             `json:"stock" gorm:"not null;default:0"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// Order links a customer to the products they bought. TotalAmount is
// computed from the product prices at creation time and never recomputed,
// so later price changes do not affect historical orders.
type Order struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID  uuid.UUID       `json:"customer_id" gorm:"type:uuid;not null;index"`
	Customer    Customer        `json:"customer"`
	Products    []Product       `json:"products" gorm:"many2many:order_products"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:numeric(10,2);not null"`
	OrderDate   time.Time       `json:"order_date" gorm:"not null;index"`
}

// CalculateTotal sums the prices of the given products, one unit each.
func CalculateTotal(products []Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}
