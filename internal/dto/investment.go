package dto

type CreateInvestmentRequest struct {
	DateInvested string  `json:"dateInvested"`
	Type         string  `json:"type"`
	Company      string  `json:"company"`
	Amount       float64 `json:"amount"`
}
