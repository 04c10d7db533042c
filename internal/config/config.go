package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	GRPCAddr string `envconfig:"GRPC_ADDR" default:":50051"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DBDriver          string        `envconfig:"DB_DRIVER" default:"mysql"`
	DBDSN             string        `envconfig:"DB_DSN" default:"root:root@tcp(localhost:3306)/storefront?parseTime=true"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"50"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	DBAutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	// Empty disables idempotency keys.
	RedisAddr      string        `envconfig:"REDIS_ADDR"`
	RedisPoolSize  int           `envconfig:"REDIS_POOL_SIZE" default:"100"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`

	RateLimitPerMin int           `envconfig:"RATE_LIMIT_PER_MIN" default:"600"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DBDSN == "" {
		return nil, errors.New("DB_DSN must not be empty")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
