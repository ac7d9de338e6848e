package services

import (
	"context"

	"github.com/finwise-dev/finwise-backend/internal/dto"
	"github.com/finwise-dev/finwise-backend/internal/models"
)

type userPSStore interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
	SetInvestmentGoal(ctx context.Context, uid, goal string) error
}

type profileService struct {
	users userPSStore
}

func NewProfileService(users userPSStore) *profileService {
	return &profileService{users: users}
}

func (s *profileService) Get(ctx context.Context, uid string) (dto.Profile, error) {
	user, err := s.users.GetUser(ctx, uid)
	if isNotFound(err) {
		return dto.Profile{FinancialBehavior: models.BehaviorUnknown}, nil
	}
	if err != nil {
		return dto.Profile{}, err
	}

	behavior := user.FinancialBehavior
	if behavior == "" {
		behavior = models.BehaviorUnknown
	}
	return dto.Profile{
		FinancialBehavior: behavior,
		InvestmentGoal:    user.InvestmentGoal,
	}, nil
}

func (s *profileService) SetInvestmentGoal(ctx context.Context, uid, goal string) error {
	return s.users.SetInvestmentGoal(ctx, uid, goal)
}
