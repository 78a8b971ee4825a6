package tools

import (
	"context"

	"log/slog"

	"github.com/funnelgen/funnelgen-manager/internal/bi"
	"github.com/funnelgen/funnelgen-manager/internal/dependency"
	"github.com/funnelgen/funnelgen-manager/internal/dto"
)

// Server implements handlers for the BI tool surface. Every entry point takes
// the account id explicitly; there is no ambient tenant state.
type Server struct {
	repo   dependency.Repository
	engine *bi.Engine
}

// New creates a new server with BI tool handlers.
func New(r dependency.Repository) *Server {
	return &Server{
		repo:   r,
		engine: bi.New(r.BI()),
	}
}

// ListOrders runs the windowed order aggregation for the account.
func (s *Server) ListOrders(ctx context.Context, accountID int, req *dto.ListOrdersRequest) (*dto.OrdersReport, error) {
	report, err := s.engine.ListOrders(ctx, accountID, req)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list orders",
			slog.Int("account_id", accountID),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return report, nil
}

// CreateOrderFact registers a new order with the recording subsystem.
func (s *Server) CreateOrderFact(ctx context.Context, accountID int, req *dto.CreateOrderFactRequest) (*dto.CreatedResponse, error) {
	id, err := s.repo.OrderFacts().CreateOrderFact(ctx, accountID, req.ToEntity())
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't create order fact",
			slog.Int("account_id", accountID),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return &dto.CreatedResponse{ID: id}, nil
}

// RecordTransaction appends a financial event to an order and updates its
// lifetime rollups.
func (s *Server) RecordTransaction(ctx context.Context, accountID int, req *dto.RecordTransactionRequest) (*dto.CreatedResponse, error) {
	id, err := s.repo.OrderFacts().RecordTransaction(ctx, accountID, req.ToEntity())
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't record transaction",
			slog.Int("account_id", accountID),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return &dto.CreatedResponse{ID: id}, nil
}
