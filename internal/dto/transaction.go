package dto

import (
	"github.com/finwise-dev/finwise-backend/internal/models"
)

type UploadResult struct {
	Accepted int             `json:"accepted"`
	Behavior models.Behavior `json:"financialBehaviorLabel"`
}

type TransactionList struct {
	Transactions []*models.Transaction `json:"transactions"`
	Behavior     models.Behavior       `json:"behavior"`
}
