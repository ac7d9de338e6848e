package models

import (
	"time"
)

type TransactionType string

const (
	TransactionDebit      TransactionType = "debit"
	TransactionCredit     TransactionType = "credit"
	TransactionInvestment TransactionType = "investment"
)

type Transaction struct {
	Date        string          `firestore:"date" json:"date"` // as submitted, YYYY-MM-DD or MM/DD/YYYY
	Amount      float64         `firestore:"amount" json:"amount"`
	Description string          `firestore:"description" json:"description"`
	Type        TransactionType `firestore:"type" json:"type"`
	CreatedAt   time.Time       `firestore:"createdAt" json:"createdAt"`
}

// Key returns the deduplication identity of a transaction within one user's
// history: the submitted date string, amount and description. Type is
// deliberately excluded from the key.
func (t Transaction) Key() TransactionKey {
	return TransactionKey{
		Date:        t.Date,
		Amount:      t.Amount,
		Description: t.Description,
	}
}

type TransactionKey struct {
	Date        string
	Amount      float64
	Description string
}
