package port

import (
	"context"

	"github.com/rl1809/storefront/internal/core/domain"
)

type CatalogRepository interface {
	// CreateCustomer inserts a customer and returns it with its generated ID
	CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)

	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// CreateProduct inserts a product and returns it with its generated ID
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)

	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type SaleRepository interface {
	// WithinTx runs fn in one transaction. It commits when fn returns nil and
	// rolls back on every other exit path.
	WithinTx(ctx context.Context, fn func(tx SaleTx) error) error

	// ListSales returns sales joined with their customer, newest first
	ListSales(ctx context.Context) ([]domain.SaleSummary, error)

	// ListSaleItems returns the line items of a sale, empty if none exist
	ListSaleItems(ctx context.Context, saleID int64) ([]domain.SaleItemDetail, error)
}

// SaleTx is the set of operations available inside a sale transaction.
type SaleTx interface {
	CustomerExists(ctx context.Context, customerID int64) (bool, error)

	// GetProductForUpdate reads a product and holds its row lock until the
	// transaction ends. Returns nil when the product does not exist.
	GetProductForUpdate(ctx context.Context, productID int64) (*domain.Product, error)

	// DecrementStock subtracts quantity only if enough stock remains
	DecrementStock(ctx context.Context, productID int64, quantity int) error

	InsertSale(ctx context.Context, sale domain.Sale) (int64, error)

	InsertSaleItem(ctx context.Context, item domain.SaleItem) (int64, error)
}
