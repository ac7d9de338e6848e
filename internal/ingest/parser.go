package ingest

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/finwise-dev/finwise-backend/internal/models"
	"github.com/finwise-dev/finwise-backend/pkg/logger"
)

// Statement date formats accepted, tried in order.
var dateFormats = []string{"2006-01-02", "01/02/2006"}

// Batch is the normalized output of parsing one uploaded statement.
type Batch struct {
	Candidates []models.Transaction
	Dates      []time.Time
	Skipped    int
}

// Parse reads a CSV bank statement with a header row containing at least
// date, amount and description (type is optional and defaults to debit).
// Rows are handled independently: a malformed row is logged and skipped,
// never aborting the rest of the batch.
func Parse(ctx context.Context, r io.Reader) (*Batch, error) {
	log := logger.FromContext(ctx)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return &Batch{}, nil
		}
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	batch := &Batch{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn("skipping unreadable statement row", "error", err)
			batch.Skipped++
			continue
		}

		tx, date, ok := parseRow(record, cols, log)
		if !ok {
			batch.Skipped++
			continue
		}

		batch.Candidates = append(batch.Candidates, tx)
		batch.Dates = append(batch.Dates, date)
	}

	return batch, nil
}

func parseRow(record []string, cols map[string]int, log *slog.Logger) (models.Transaction, time.Time, bool) {
	dateStr, ok := field(record, cols, "date")
	if !ok {
		log.Warn("skipping statement row without date column")
		return models.Transaction{}, time.Time{}, false
	}
	amountStr, ok := field(record, cols, "amount")
	if !ok {
		log.Warn("skipping statement row without amount column", "date", dateStr)
		return models.Transaction{}, time.Time{}, false
	}
	description, ok := field(record, cols, "description")
	if !ok {
		log.Warn("skipping statement row without description column", "date", dateStr)
		return models.Transaction{}, time.Time{}, false
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil {
		log.Warn("skipping statement row with unparsable amount", "amount", amountStr)
		return models.Transaction{}, time.Time{}, false
	}

	date, err := parseDate(dateStr)
	if err != nil {
		log.Warn("skipping statement row with unrecognized date format", "date", dateStr)
		return models.Transaction{}, time.Time{}, false
	}

	txType := models.TransactionDebit
	if raw, ok := field(record, cols, "type"); ok && strings.TrimSpace(raw) != "" {
		txType = models.TransactionType(strings.ToLower(strings.TrimSpace(raw)))
	}

	tx := models.Transaction{
		Date:        dateStr,
		Amount:      math.Abs(amount),
		Description: description,
		Type:        txType,
	}
	return tx, date, true
}

// field returns the trimmed cell for a named column, reporting false when the
// column is absent from the header or from this particular row.
func field(record []string, cols map[string]int, name string) (string, bool) {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[idx]), true
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, format := range dateFormats {
		var t time.Time
		if t, err = time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
