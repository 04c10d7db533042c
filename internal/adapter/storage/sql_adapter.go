package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

// ErrStockConflict is returned when a conditional stock decrement matched no
// row, i.e. the product no longer has enough stock.
var ErrStockConflict = fmt.Errorf("stock conflict: %w", domain.ErrInsufficientStock)

type SQLAdapter struct {
	db         *sqlx.DB
	lockClause string
}

func NewSQLAdapter(db *sqlx.DB) *SQLAdapter {
	a := &SQLAdapter{db: db}
	// SQLite serializes writers and has no row locks
	if db.DriverName() == DriverMySQL {
		a.lockClause = " FOR UPDATE"
	}
	return a
}

func (a *SQLAdapter) CreateCustomer(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	result, err := a.db.ExecContext(ctx,
		`INSERT INTO customers (name, phone, mail) VALUES (?, ?, ?)`,
		c.Name, c.Phone, c.Mail,
	)
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("customer id: %w", err)
	}
	c.ID = id
	return &c, nil
}

func (a *SQLAdapter) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	if err := a.db.SelectContext(ctx, &customers,
		`SELECT id, name, phone, mail FROM customers ORDER BY id`); err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	return customers, nil
}

func (a *SQLAdapter) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	result, err := a.db.ExecContext(ctx,
		`INSERT INTO products (name, size, color, price, stock) VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.Size, p.Color, p.Price, p.Stock,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("product id: %w", err)
	}
	p.ID = id
	return &p, nil
}

func (a *SQLAdapter) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := a.db.SelectContext(ctx, &products,
		`SELECT id, name, size, color, price, stock FROM products ORDER BY id`); err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return products, nil
}

func (a *SQLAdapter) WithinTx(ctx context.Context, fn func(tx port.SaleTx) error) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&saleTx{tx: tx, lockClause: a.lockClause}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (a *SQLAdapter) ListSales(ctx context.Context) ([]domain.SaleSummary, error) {
	sales := []domain.SaleSummary{}
	err := a.db.SelectContext(ctx, &sales, `
		SELECT s.id, s.created_at, s.total,
		       c.name AS customer_name, c.phone, c.mail
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		ORDER BY s.created_at DESC, s.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	return sales, nil
}

func (a *SQLAdapter) ListSaleItems(ctx context.Context, saleID int64) ([]domain.SaleItemDetail, error) {
	items := []domain.SaleItemDetail{}
	err := a.db.SelectContext(ctx, &items, `
		SELECT si.id, p.name AS product_name, p.size, p.color,
		       si.quantity, si.unit_price
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = ?
		ORDER BY si.id`, saleID)
	if err != nil {
		return nil, fmt.Errorf("query sale items: %w", err)
	}
	return items, nil
}

type saleTx struct {
	tx         *sqlx.Tx
	lockClause string
}

func (s *saleTx) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	var id int64
	err := s.tx.GetContext(ctx, &id, `SELECT id FROM customers WHERE id = ?`, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query customer: %w", err)
	}
	return true, nil
}

func (s *saleTx) GetProductForUpdate(ctx context.Context, productID int64) (*domain.Product, error) {
	var p domain.Product
	err := s.tx.GetContext(ctx, &p,
		`SELECT id, name, size, color, price, stock FROM products WHERE id = ?`+s.lockClause,
		productID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &p, nil
}

func (s *saleTx) DecrementStock(ctx context.Context, productID int64, quantity int) error {
	result, err := s.tx.ExecContext(ctx, `
		UPDATE products
		SET stock = stock - ?
		WHERE id = ? AND stock >= ?`,
		quantity, productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return checkDecrement(result)
}

// checkDecrement turns the result of the conditional stock update into
// ErrStockConflict when no row had enough stock.
func checkDecrement(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update stock rows: %w", err)
	}
	if rows == 0 {
		return ErrStockConflict
	}
	return nil
}

func (s *saleTx) InsertSale(ctx context.Context, sale domain.Sale) (int64, error) {
	result, err := s.tx.ExecContext(ctx, `
		INSERT INTO sales (reference, customer_id, created_at, total)
		VALUES (?, ?, ?, ?)`,
		sale.Reference, sale.CustomerID, sale.CreatedAt, sale.Total,
	)
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	return result.LastInsertId()
}

func (s *saleTx) InsertSaleItem(ctx context.Context, item domain.SaleItem) (int64, error) {
	result, err := s.tx.ExecContext(ctx, `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
		VALUES (?, ?, ?, ?)`,
		item.SaleID, item.ProductID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return 0, fmt.Errorf("insert sale item: %w", err)
	}
	return result.LastInsertId()
}
