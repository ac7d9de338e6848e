package services

import (
	"context"

	"github.com/finwise-dev/finwise-backend/internal/dto"
	"github.com/finwise-dev/finwise-backend/internal/errs"
	"github.com/finwise-dev/finwise-backend/internal/models"
)

type investmentISStore interface {
	Create(ctx context.Context, uid string, inv *models.Investment) error
	List(ctx context.Context, uid string) ([]*models.Investment, error)
}

type investmentService struct {
	store     investmentISStore
	summaries summaryRefresher
}

func NewInvestmentService(store investmentISStore, summaries summaryRefresher) *investmentService {
	return &investmentService{store: store, summaries: summaries}
}

func (s *investmentService) Create(ctx context.Context, uid string, req dto.CreateInvestmentRequest) (*models.Investment, error) {
	if req.DateInvested == "" || req.Company == "" {
		return nil, errs.NewValidationError("dateInvested and company are required")
	}
	if req.Amount < 0 {
		return nil, errs.NewValidationError("amount must not be negative")
	}

	inv := &models.Investment{
		DateInvested: req.DateInvested,
		Type:         req.Type,
		Company:      req.Company,
		Amount:       req.Amount,
	}
	if err := s.store.Create(ctx, uid, inv); err != nil {
		return nil, err
	}

	// Investment history feeds the summaries, so new entries stale the cache.
	_ = s.summaries.Refresh(ctx, uid)

	return inv, nil
}

func (s *investmentService) List(ctx context.Context, uid string) ([]*models.Investment, error) {
	return s.store.List(ctx, uid)
}
