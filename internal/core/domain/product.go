package domain

import "github.com/shopspring/decimal"

func init() {
	// prices and totals are rendered as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID    int64           `json:"id" db:"id"`
	Name  string          `json:"name" db:"name"`
	Size  *string         `json:"size" db:"size"`
	Color *string         `json:"color" db:"color"`
	Price decimal.Decimal `json:"price" db:"price"`
	Stock int             `json:"stock" db:"stock"`
}

// NewProduct uses pointers so an absent price or stock can be told apart
// from zero.
type NewProduct struct {
	Name  string           `json:"name" validate:"required"`
	Size  *string          `json:"size"`
	Color *string          `json:"color"`
	Price *decimal.Decimal `json:"price"`
	Stock *int             `json:"stock" validate:"required,gte=0"`
}
