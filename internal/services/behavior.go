package services

import (
	"math"

	"github.com/finwise-dev/finwise-backend/internal/models"
)

// Classification thresholds over the user's full history.
const (
	saverSavingRate     = 0.40
	spenderSpendingRate = 0.60
	investorInvestRate  = 0.15
	investorSavingRate  = 0.20
	lowInvestRate       = 0.20
)

// ClassifyBehavior aggregates a user's complete transaction history into
// income/expense/investment totals and maps the resulting ratios to a label.
// Rules are evaluated in priority order; the first match wins. Zero income
// short-circuits to Unknown.
func ClassifyBehavior(txs []*models.Transaction) models.Behavior {
	var income, expenses, investment float64
	for _, tx := range txs {
		amount := math.Abs(tx.Amount)
		switch tx.Type {
		case models.TransactionCredit:
			income += amount
		case models.TransactionDebit:
			expenses += amount
		case models.TransactionInvestment:
			investment += amount
		}
	}

	if income == 0 {
		return models.BehaviorUnknown
	}

	savingRate := (income - expenses - investment) / income
	spendingRate := expenses / income
	investmentRate := investment / income

	switch {
	case savingRate >= saverSavingRate && investmentRate < lowInvestRate:
		return models.BehaviorSaver
	case spendingRate >= spenderSpendingRate && investmentRate < lowInvestRate:
		return models.BehaviorSpender
	case investmentRate >= investorInvestRate && savingRate >= investorSavingRate:
		return models.BehaviorInvestor
	default:
		return models.BehaviorUnknown
	}
}
