package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to the store and verifies the connection. The returned pool
// is shared by all requests for the lifetime of the process.
func Open(ctx context.Context, driver, dsn string, pool PoolConfig) (*sqlx.DB, error) {
	switch driver {
	case DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	if driver == DriverSQLite {
		dsn = sqliteDSN(dsn)
		if isSQLiteMemory(dsn) {
			// every connection to :memory: opens its own empty database
			pool.MaxOpenConns = 1
			pool.ConnMaxLifetime = 0
		}
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

// sqliteParams are applied to every pooled connection. Transactions take the
// write lock on BEGIN and a blocked writer waits up to busy_timeout.
var sqliteParams = []struct{ key, value string }{
	{"foreign_keys", "_pragma=foreign_keys(1)"},
	{"busy_timeout", "_pragma=busy_timeout(5000)"},
	{"_txlock", "_txlock=immediate"},
	{"_time_format", "_time_format=sqlite"},
}

// sqliteDSN adds the connection parameters the caller did not set.
func sqliteDSN(dsn string) string {
	for _, p := range sqliteParams {
		if strings.Contains(dsn, p.key) {
			continue
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + p.value
		} else {
			dsn += "?" + p.value
		}
	}
	return dsn
}

func isSQLiteMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
