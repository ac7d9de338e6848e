package ingest

import (
	"time"

	"github.com/finwise-dev/finwise-backend/internal/errs"
)

// minMonthSpan is the required calendar-month difference between the earliest
// and latest transaction in a batch. A difference of 11 means the dates fall
// twelve calendar months apart inclusive (e.g. Jan 2024 through Dec 2024).
//
// The month-difference policy is used rather than a 365-day span; the two
// disagree near month boundaries and this one is the documented choice.
const minMonthSpan = 11

// ValidateHistorySpan rejects a batch whose parsed dates cover less than
// twelve calendar months. A batch with no parsed dates passes; row-level
// failures are handled upstream.
func ValidateHistorySpan(dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}

	min, max := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}

	months := (max.Year()-min.Year())*12 + int(max.Month()) - int(min.Month())
	if months < minMonthSpan {
		return errs.NewInsufficientHistoryError("uploaded transactions cover less than 12 months of history")
	}
	return nil
}
