package models

import (
	"time"
)

type SummaryStatus string

const (
	SummaryStatusPending SummaryStatus = "pending"
	SummaryStatusReady   SummaryStatus = "ready"
	SummaryStatusFailed  SummaryStatus = "failed"
)

// Summary is the cached per-user output of the generator. It is always
// upserted wholesale; readers judge freshness from the fields and status.
type Summary struct {
	FinancialBehaviorSummary string        `firestore:"financialBehaviorSummary" json:"financialBehaviorSummary"`
	InvestmentSummary        string        `firestore:"investmentSummary" json:"investmentSummary"`
	InvestmentTips           []string      `firestore:"investmentTips" json:"investmentTips"`
	Status                   SummaryStatus `firestore:"status" json:"status"`
	UpdatedAt                time.Time     `firestore:"updatedAt" json:"updatedAt"`
}
