package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

type SaleService struct {
	repo     port.SaleRepository
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

func NewSaleService(repo port.SaleRepository, logger *zap.Logger) *SaleService {
	return &SaleService{
		repo:     repo,
		validate: newValidator(),
		logger:   logger,
		now:      time.Now,
	}
}

// CreateSale records one sale atomically. Every requested product is locked
// and checked before anything is written, so a single unavailable item
// rejects the whole request without side effects.
func (s *SaleService) CreateSale(ctx context.Context, req domain.SaleRequest) (*domain.SaleReceipt, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	lines, err := mergeLines(req.Items)
	if err != nil {
		return nil, err
	}
	sale := domain.Sale{
		Reference:  uuid.NewString(),
		CustomerID: req.CustomerID,
		CreatedAt:  s.now().UTC().Truncate(time.Microsecond),
	}

	err = s.repo.WithinTx(ctx, func(tx port.SaleTx) error {
		ok, err := tx.CustomerExists(ctx, req.CustomerID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: customer %d", domain.ErrCustomerNotFound, req.CustomerID)
		}

		// validation pass
		items := make([]domain.SaleItem, 0, len(lines))
		total := decimal.Zero
		for _, line := range lines {
			product, err := tx.GetProductForUpdate(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.ItemError{ProductID: line.ProductID, Err: domain.ErrProductNotFound}
			}
			if product.Stock < line.Quantity {
				return &domain.ItemError{ProductID: line.ProductID, Err: domain.ErrInsufficientStock}
			}

			item := domain.SaleItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
			}
			total = total.Add(item.Subtotal())
			items = append(items, item)
		}
		sale.Total = total

		// commit pass; prices come from the rows locked above
		saleID, err := tx.InsertSale(ctx, sale)
		if err != nil {
			return err
		}
		sale.ID = saleID

		for _, item := range items {
			item.SaleID = saleID
			if _, err := tx.InsertSaleItem(ctx, item); err != nil {
				return err
			}
			if err := tx.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return &domain.ItemError{ProductID: item.ProductID, Err: domain.ErrInsufficientStock}
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		if domain.IsRejection(err) {
			s.logger.Info("sale rejected",
				zap.String("reference", sale.Reference),
				zap.Int64("customer_id", req.CustomerID),
				zap.String("reason", err.Error()),
			)
			return nil, err
		}
		return nil, fmt.Errorf("create sale: %w", err)
	}

	s.logger.Info("sale created",
		zap.Int64("sale_id", sale.ID),
		zap.String("reference", sale.Reference),
		zap.Int64("customer_id", sale.CustomerID),
		zap.String("total", sale.Total.StringFixed(2)),
		zap.Int("items", len(lines)),
	)

	return &domain.SaleReceipt{
		SaleID:    sale.ID,
		Reference: sale.Reference,
		Total:     sale.Total,
	}, nil
}

func (s *SaleService) ListSales(ctx context.Context) ([]domain.SaleSummary, error) {
	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

// ListSaleItems returns an empty slice for a sale that does not exist.
func (s *SaleService) ListSaleItems(ctx context.Context, saleID int64) ([]domain.SaleItemDetail, error) {
	if saleID <= 0 {
		return []domain.SaleItemDetail{}, nil
	}

	items, err := s.repo.ListSaleItems(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	return items, nil
}

// mergeLines folds repeated product references into one line, keeping the
// position of the first occurrence so validation order stays deterministic.
// Quantities are already known to be positive.
func mergeLines(lines []domain.SaleLine) ([]domain.SaleLine, error) {
	merged := make([]domain.SaleLine, 0, len(lines))
	index := make(map[int64]int, len(lines))
	for _, line := range lines {
		i, ok := index[line.ProductID]
		if !ok {
			index[line.ProductID] = len(merged)
			merged = append(merged, line)
			continue
		}
		if merged[i].Quantity > math.MaxInt-line.Quantity {
			return nil, fmt.Errorf("%w: quantity for product %d is too large", domain.ErrInvalidInput, line.ProductID)
		}
		merged[i].Quantity += line.Quantity
	}
	return merged, nil
}
