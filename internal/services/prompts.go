package services

import (
	"fmt"
	"strings"

	"github.com/finwise-dev/finwise-backend/internal/models"
)

// transactionLines serializes history for prompt embedding, one transaction
// per line as "<date> <type> <amount> <description>".
func transactionLines(txs []*models.Transaction) string {
	var b strings.Builder
	for i, tx := range txs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s %v %s", tx.Date, tx.Type, tx.Amount, tx.Description)
	}
	return b.String()
}

// investmentLines serializes investments as "<date_invested> <type> <company> <amount>".
func investmentLines(invs []*models.Investment) string {
	var b strings.Builder
	for i, inv := range invs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s %s %v", inv.DateInvested, inv.Type, inv.Company, inv.Amount)
	}
	return b.String()
}

func behaviorSummaryPrompt(txLines string) string {
	var b strings.Builder
	b.WriteString("Analyze the following bank transactions and summarize the user's financial behavior in 3-5 sentences. ")
	b.WriteString("Think of it like you are giving this summary directly to the user.\n")
	b.WriteString("Transactions:\n")
	b.WriteString(txLines)
	return b.String()
}

func investmentSummaryPrompt(invLines string) string {
	var b strings.Builder
	b.WriteString("Summarize the user's investment activity based on the following investments in 3-5 sentences. ")
	b.WriteString("Think of it like you are giving this summary directly to the user.\n")
	b.WriteString("Investments:\n")
	b.WriteString(invLines)
	return b.String()
}

func investmentTipsPrompt(txLines, invLines, goal string) string {
	var b strings.Builder
	b.WriteString("Based on the user's transactions and investments")
	if goal != "" {
		b.WriteString("\nUser's investment goal: ")
		b.WriteString(goal)
	}
	b.WriteString(", provide 3 to 5 personalized tips for future investments and financial planning, ")
	b.WriteString("formatted as concise bullet points (not paragraphs). Each tip should be a single, clear point. ")
	b.WriteString("Think of it like you are giving this tips directly to the user\n")
	b.WriteString("Transactions:\n")
	b.WriteString(txLines)
	b.WriteString("\nInvestments:\n")
	b.WriteString(invLines)
	return b.String()
}
