package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

type CatalogService struct {
	repo     port.CatalogRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewCatalogService(repo port.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		validate: newValidator(),
		logger:   logger,
	}
}

func (s *CatalogService) CreateCustomer(ctx context.Context, in domain.NewCustomer) (*domain.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate.Struct(in); err != nil {
		return nil, invalidInput(err)
	}

	customer, err := s.repo.CreateCustomer(ctx, domain.Customer{
		Name:  in.Name,
		Phone: in.Phone,
		Mail:  in.Mail,
	})
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.logger.Info("customer created", zap.Int64("customer_id", customer.ID))
	return customer, nil
}

func (s *CatalogService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate.Struct(in); err != nil {
		return nil, invalidInput(err)
	}
	if in.Price == nil {
		return nil, fmt.Errorf("%w: price is required", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	product, err := s.repo.CreateProduct(ctx, domain.Product{
		Name:  in.Name,
		Size:  in.Size,
		Color: in.Color,
		Price: in.Price.Round(2),
		Stock: *in.Stock,
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info("product created",
		zap.Int64("product_id", product.ID),
		zap.Int("stock", product.Stock),
	)
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
