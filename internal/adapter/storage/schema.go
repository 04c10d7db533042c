package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id    BIGINT AUTO_INCREMENT PRIMARY KEY,
		name  VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NULL,
		mail  VARCHAR(255) NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS products (
		id    BIGINT AUTO_INCREMENT PRIMARY KEY,
		name  VARCHAR(255) NOT NULL,
		size  VARCHAR(32) NULL,
		color VARCHAR(64) NULL,
		price DECIMAL(12,2) NOT NULL CHECK (price >= 0),
		stock INT NOT NULL CHECK (stock >= 0)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS sales (
		id          BIGINT AUTO_INCREMENT PRIMARY KEY,
		reference   CHAR(36) NOT NULL UNIQUE,
		customer_id BIGINT NOT NULL,
		created_at  DATETIME(6) NOT NULL,
		total       DECIMAL(12,2) NOT NULL CHECK (total >= 0),
		INDEX idx_sales_created_at (created_at),
		CONSTRAINT fk_sales_customer FOREIGN KEY (customer_id) REFERENCES customers(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS sale_items (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		sale_id    BIGINT NOT NULL,
		product_id BIGINT NOT NULL,
		quantity   INT NOT NULL CHECK (quantity > 0),
		unit_price DECIMAL(12,2) NOT NULL,
		CONSTRAINT fk_sale_items_sale FOREIGN KEY (sale_id) REFERENCES sales(id),
		CONSTRAINT fk_sale_items_product FOREIGN KEY (product_id) REFERENCES products(id)
	) ENGINE=InnoDB`,
}

// Foreign keys are switched on per connection by Open.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		name  TEXT NOT NULL,
		phone TEXT,
		mail  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		name  TEXT NOT NULL,
		size  TEXT,
		color TEXT,
		price NUMERIC NOT NULL CHECK (price >= 0),
		stock INTEGER NOT NULL CHECK (stock >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		reference   TEXT NOT NULL UNIQUE,
		customer_id INTEGER NOT NULL REFERENCES customers(id),
		created_at  DATETIME NOT NULL,
		total       NUMERIC NOT NULL CHECK (total >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales(created_at)`,
	`CREATE TABLE IF NOT EXISTS sale_items (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		sale_id    INTEGER NOT NULL REFERENCES sales(id),
		product_id INTEGER NOT NULL REFERENCES products(id),
		quantity   INTEGER NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC NOT NULL
	)`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var stmts []string
	switch db.DriverName() {
	case DriverMySQL:
		stmts = mysqlSchema
	case DriverSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
