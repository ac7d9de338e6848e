package models

import (
	"time"
)

type Investment struct {
	InvestmentID string    `firestore:"investmentId" json:"investmentId"`
	DateInvested string    `firestore:"dateInvested" json:"dateInvested"`
	Type         string    `firestore:"type" json:"type"`
	Company      string    `firestore:"company" json:"company"`
	Amount       float64   `firestore:"amount" json:"amount"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
}
