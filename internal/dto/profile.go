package dto

import (
	"github.com/finwise-dev/finwise-backend/internal/models"
)

type Profile struct {
	FinancialBehavior models.Behavior `json:"financialBehavior"`
	InvestmentGoal    string          `json:"investmentGoal,omitempty"`
}

type UpdateProfileRequest struct {
	InvestmentGoal string `json:"investmentGoal"`
}
