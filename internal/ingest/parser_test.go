package ingest

import (
	"strings"
	"testing"

	"github.com/finwise-dev/finwise-backend/internal/models"
	"github.com/finwise-dev/finwise-backend/pkg/helpers"
)

func TestParseNormalizesRows(t *testing.T) {
	csv := "date,amount,description,type\n" +
		"2024-01-15,-42.50,  Grocery Store  ,DEBIT\n" +
		"01/20/2024,1000,Salary,credit\n" +
		"2024-02-01,250.00,Index fund,investment\n"

	batch, err := Parse(helpers.TestCtx(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(batch.Candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(batch.Candidates))
	}
	if batch.Skipped != 0 {
		t.Fatalf("expected no skipped rows, got %d", batch.Skipped)
	}

	first := batch.Candidates[0]
	if first.Amount != 42.50 {
		t.Errorf("amount not stored as absolute value: %v", first.Amount)
	}
	if first.Description != "Grocery Store" {
		t.Errorf("description not trimmed: %q", first.Description)
	}
	if first.Type != models.TransactionDebit {
		t.Errorf("type not lowercased: %q", first.Type)
	}
	if first.Date != "2024-01-15" {
		t.Errorf("date string not preserved as submitted: %q", first.Date)
	}

	second := batch.Candidates[1]
	if second.Date != "01/20/2024" || second.Type != models.TransactionCredit {
		t.Errorf("US-format row parsed wrong: %+v", second)
	}

	if len(batch.Dates) != 3 {
		t.Fatalf("expected 3 collected dates, got %d", len(batch.Dates))
	}
	if got := batch.Dates[1].Format("2006-01-02"); got != "2024-01-20" {
		t.Errorf("MM/DD/YYYY date parsed wrong: %s", got)
	}
}

func TestParseTypeDefaultsToDebit(t *testing.T) {
	csv := "date,amount,description\n2024-03-01,10,Coffee\n"

	batch, err := Parse(helpers.TestCtx(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(batch.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(batch.Candidates))
	}
	if batch.Candidates[0].Type != models.TransactionDebit {
		t.Errorf("missing type column should default to debit, got %q", batch.Candidates[0].Type)
	}
}

func TestParseSkipsMalformedRowsAndContinues(t *testing.T) {
	csv := "date,amount,description,type\n" +
		"2024-01-15,not-a-number,Bad amount,debit\n" +
		"15 Jan 2024,10,Bad date,debit\n" +
		"2024-01-16,20,Good row,debit\n" +
		"2024-01-17,30\n" + // missing description cell
		"2024-01-18,40,Another good row,credit\n"

	batch, err := Parse(helpers.TestCtx(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(batch.Candidates) != 2 {
		t.Fatalf("expected 2 accepted rows, got %d", len(batch.Candidates))
	}
	if batch.Skipped != 3 {
		t.Fatalf("expected 3 skipped rows, got %d", batch.Skipped)
	}
	if batch.Candidates[0].Description != "Good row" || batch.Candidates[1].Description != "Another good row" {
		t.Errorf("wrong rows survived: %+v", batch.Candidates)
	}
	// Dates from discarded rows must not leak into range validation.
	if len(batch.Dates) != 2 {
		t.Errorf("expected 2 collected dates, got %d", len(batch.Dates))
	}
}

func TestParseEmptyInput(t *testing.T) {
	batch, err := Parse(helpers.TestCtx(), strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(batch.Candidates) != 0 || len(batch.Dates) != 0 {
		t.Fatalf("expected empty batch, got %+v", batch)
	}
}
