package handler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/rl1809/storefront/internal/adapter/handler/pb"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/metrics"
)

type GRPCHandler struct {
	pb.UnimplementedSalesServiceServer
	sales   *service.SaleService
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewGRPCHandler(sales *service.SaleService, m *metrics.Metrics, logger *zap.Logger) *GRPCHandler {
	return &GRPCHandler{sales: sales, metrics: m, logger: logger}
}

func (h *GRPCHandler) CreateSale(ctx context.Context, req *pb.CreateSaleRequest) (*pb.CreateSaleResponse, error) {
	saleReq := domain.SaleRequest{CustomerID: req.GetCustomerId()}
	if items := req.GetItems(); items != nil {
		saleReq.Items = make([]domain.SaleLine, 0, len(items))
		for _, it := range items {
			saleReq.Items = append(saleReq.Items, domain.SaleLine{
				ProductID: it.GetProductId(),
				Quantity:  int(it.GetQuantity()),
			})
		}
	}

	receipt, err := h.sales.CreateSale(ctx, saleReq)
	if err != nil {
		if domain.IsRejection(err) {
			h.metrics.ObserveSale("grpc", metrics.OutcomeRejected)
		} else {
			h.metrics.ObserveSale("grpc", metrics.OutcomeFailed)
		}
		return nil, h.toStatus(ctx, err)
	}

	h.metrics.ObserveSale("grpc", metrics.OutcomeCreated)
	return &pb.CreateSaleResponse{
		SaleId:    receipt.SaleID,
		Reference: receipt.Reference,
		Total:     receipt.Total.StringFixed(2),
	}, nil
}

func (h *GRPCHandler) ListSales(ctx context.Context, _ *pb.ListSalesRequest) (*pb.ListSalesResponse, error) {
	sales, err := h.sales.ListSales(ctx)
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}

	resp := &pb.ListSalesResponse{Sales: make([]*pb.Sale, 0, len(sales))}
	for _, s := range sales {
		resp.Sales = append(resp.Sales, &pb.Sale{
			Id:           s.ID,
			Timestamp:    timestamppb.New(s.Timestamp),
			Total:        s.Total.StringFixed(2),
			CustomerName: s.CustomerName,
			Phone:        deref(s.Phone),
			Mail:         deref(s.Mail),
		})
	}
	return resp, nil
}

func (h *GRPCHandler) ListSaleItems(ctx context.Context, req *pb.ListSaleItemsRequest) (*pb.ListSaleItemsResponse, error) {
	items, err := h.sales.ListSaleItems(ctx, req.GetSaleId())
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}

	resp := &pb.ListSaleItemsResponse{Items: make([]*pb.SaleItem, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, &pb.SaleItem{
			Id:          it.ID,
			ProductName: it.ProductName,
			Size:        deref(it.Size),
			Color:       deref(it.Color),
			Quantity:    int32(it.Quantity),
			UnitPrice:   it.UnitPrice.StringFixed(2),
		})
	}
	return resp, nil
}

func (h *GRPCHandler) toStatus(ctx context.Context, err error) error {
	if domain.IsRejection(err) {
		return status.Error(codes.InvalidArgument, rejectionMessage(err))
	}
	method, _ := grpc.Method(ctx)
	h.logger.Error("rpc failed", zap.String("method", method), zap.Error(err))
	return status.Error(codes.Internal, "internal server error")
}

// UnaryLogger logs every unary call with its status code and latency.
func UnaryLogger(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Info("gRPC Request",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("latency", time.Since(start)),
		)
		return resp, err
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
