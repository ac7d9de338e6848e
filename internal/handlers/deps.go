package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/finwise-dev/finwise-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	TransactionSvc  TransactionService
	SummarySvc      SummaryService
	InvestmentSvc   InvestmentService
	ProfileSvc      ProfileService
}
