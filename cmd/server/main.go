package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/rl1809/storefront/internal/adapter/handler"
	"github.com/rl1809/storefront/internal/adapter/handler/pb"
	"github.com/rl1809/storefront/internal/adapter/storage"
	"github.com/rl1809/storefront/internal/config"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/logger"
	"github.com/rl1809/storefront/internal/metrics"
	"github.com/rl1809/storefront/internal/port"
)

const serviceName = "storefront"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.AppEnv,
		ServiceName: serviceName,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, cfg.DBDriver, cfg.DBDSN, storage.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	zlog.Info("connected to database", zap.String("driver", cfg.DBDriver))

	if cfg.DBAutoMigrate {
		if err := storage.Migrate(ctx, db); err != nil {
			return err
		}
		zlog.Info("schema ready")
	}

	var idempotency port.IdempotencyStore = storage.NoopIdempotencyStore{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			PoolSize: cfg.RedisPoolSize,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		idempotency = storage.NewRedisAdapter(rdb, cfg.IdempotencyTTL)
		zlog.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	} else {
		zlog.Info("redis not configured, idempotency keys disabled")
	}

	sqlAdapter := storage.NewSQLAdapter(db)
	catalogService := service.NewCatalogService(sqlAdapter, zlog)
	saleService := service.NewSaleService(sqlAdapter, zlog)
	m := metrics.New()

	httpHandler := handler.NewHTTPHandler(catalogService, saleService, idempotency, m, zlog)
	httpServer := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: handler.NewRouter(httpHandler, handler.RouterConfig{
			Logger:          zlog,
			Metrics:         m,
			RequestTimeout:  cfg.RequestTimeout,
			RateLimitPerMin: cfg.RateLimitPerMin,
			Production:      cfg.IsProduction(),
		}),
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLogger(zlog)))
	pb.RegisterSalesServiceServer(grpcServer, handler.NewGRPCHandler(saleService, m, zlog))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zlog.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		zlog.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		zlog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			zlog.Warn("HTTP shutdown", zap.Error(err))
		}
		zlog.Info("HTTP server stopped")

		grpcServer.GracefulStop()
		zlog.Info("gRPC server stopped")
		return nil
	})

	return g.Wait()
}
