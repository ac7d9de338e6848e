package models

import (
	"time"
)

type Behavior string

const (
	BehaviorSaver    Behavior = "Saver"
	BehaviorSpender  Behavior = "Spender"
	BehaviorInvestor Behavior = "Investor"
	BehaviorUnknown  Behavior = "Unknown"
)

type User struct {
	UID               string    `firestore:"uid" json:"uid"`
	Email             string    `firestore:"email" json:"email"`
	FinancialBehavior Behavior  `firestore:"financialBehavior" json:"financialBehavior"`
	InvestmentGoal    string    `firestore:"investmentGoal" json:"investmentGoal,omitempty"` // KMS ciphertext at rest
	CreatedAt         time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `firestore:"updatedAt" json:"updatedAt"`
}
