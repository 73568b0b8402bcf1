package ingest

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Record is a donor row that passed validation. Row is the 1-based data row
// number in the source (header excluded).
type Record struct {
	Row           int
	FirstName     string
	LastName      string
	Email         string
	TotalGiving   decimal.Decimal
	FirstGiftDate *time.Time
	LastGiftDate  *time.Time
	LargestGift   *decimal.Decimal
	GiftCount     *int
	ImpactURL     string
}

// RowError is a parse or validation failure localized to one row.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s - %s", e.Row, e.Field, e.Message)
}

// Outcome classifies a validation result.
type Outcome string

const (
	OutcomeEmpty      Outcome = "empty"
	OutcomeAllInvalid Outcome = "all_invalid"
	OutcomePartial    Outcome = "partial"
	OutcomeSuccess    Outcome = "success"
)

// Result partitions the input rows into valid records and row errors.
type Result struct {
	ValidRows []Record
	Errors    []RowError
	// TotalRows counts data rows seen, blank lines excluded.
	TotalRows int
}

// Outcome reports whether every row failed, some failed, or none failed.
func (r *Result) Outcome() Outcome {
	switch {
	case r.TotalRows == 0:
		return OutcomeEmpty
	case len(r.ValidRows) == 0:
		return OutcomeAllInvalid
	case len(r.Errors) > 0:
		return OutcomePartial
	default:
		return OutcomeSuccess
	}
}

// InvalidRowCount is the number of distinct rows with at least one error.
func (r *Result) InvalidRowCount() int {
	rows := make(map[int]struct{}, len(r.Errors))
	for _, e := range r.Errors {
		rows[e.Row] = struct{}{}
	}
	return len(rows)
}
