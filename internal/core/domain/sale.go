package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the header row of one completed purchase. Total is fixed at
// creation time and never recomputed.
type Sale struct {
	ID         int64
	Reference  string
	CustomerID int64
	CreatedAt  time.Time
	Total      decimal.Decimal
}

// SaleItem captures the unit price in effect when the sale was made.
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal returns UnitPrice × Quantity.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type SaleLine struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"gt=0"`
}

type SaleRequest struct {
	CustomerID int64      `json:"customer_id" validate:"required"`
	Items      []SaleLine `json:"items" validate:"required,min=1,dive"`
}

type SaleReceipt struct {
	SaleID    int64           `json:"sale_id"`
	Reference string          `json:"reference"`
	Total     decimal.Decimal `json:"total"`
}

type SaleSummary struct {
	ID           int64           `json:"id" db:"id"`
	Timestamp    time.Time       `json:"timestamp" db:"created_at"`
	Total        decimal.Decimal `json:"total" db:"total"`
	CustomerName string          `json:"customer_name" db:"customer_name"`
	Phone        *string         `json:"phone" db:"phone"`
	Mail         *string         `json:"mail" db:"mail"`
}

type SaleItemDetail struct {
	ID          int64           `json:"id" db:"id"`
	ProductName string          `json:"product_name" db:"product_name"`
	Size        *string         `json:"size" db:"size"`
	Color       *string         `json:"color" db:"color"`
	Quantity    int             `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" db:"unit_price"`
}
