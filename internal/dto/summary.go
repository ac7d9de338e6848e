package dto

import (
	"time"
)

// SummaryResponse is what the summary read endpoint returns. When the user's
// history is incomplete, the summary fields carry the fixed default texts and
// MissingData names the absent categories ("transactions", "investments");
// the cached record is left untouched in that branch.
type SummaryResponse struct {
	FinancialBehaviorSummary string    `json:"financialBehaviorSummary"`
	InvestmentSummary        string    `json:"investmentSummary"`
	InvestmentTips           []string  `json:"investmentTips"`
	MissingData              []string  `json:"missingData,omitempty"`
	UpdatedAt                time.Time `json:"updatedAt,omitempty"`
}
