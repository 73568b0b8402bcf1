package ingest

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RawRow is one input row keyed by column name. Keys may use any of the
// recognized header spellings.
type RawRow map[string]string

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// MaxAmount is the largest amount a numeric(14,2) column holds.
var MaxAmount = decimal.RequireFromString("999999999999.99")

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"01/02/06",
	"1/2/06",
	"01-02-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ValidateRows validates structured rows (for example from a JSON request).
// Rows are numbered from 1 in input order. Rows with no values at all are
// skipped.
func ValidateRows(rows []RawRow) *Result {
	res := &Result{}
	for i, raw := range rows {
		res.add(i+1, raw.fields())
	}
	return res
}

// fields maps the row onto canonical fields. When several keys resolve to the
// same field the canonical key itself wins, then the lexically first key.
func (r RawRow) fields() map[string]string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := make(map[string]string, len(r))
	exact := make(map[string]bool, len(r))
	for _, key := range keys {
		field, ok := CanonicalField(key)
		if !ok || exact[field] {
			continue
		}
		if _, seen := fields[field]; !seen || key == field {
			fields[field] = r[key]
			exact[field] = key == field
		}
	}
	return fields
}

// RowFromValues converts a decoded JSON object into a RawRow. Numbers keep
// their shortest exact representation.
func RowFromValues(values map[string]any) RawRow {
	row := make(RawRow, len(values))
	for key, v := range values {
		switch tv := v.(type) {
		case nil:
			row[key] = ""
		case string:
			row[key] = tv
		case float64:
			row[key] = strconv.FormatFloat(tv, 'f', -1, 64)
		case bool:
			row[key] = strconv.FormatBool(tv)
		default:
			row[key] = fmt.Sprint(tv)
		}
	}
	return row
}

// add validates one row of canonical fields and records the outcome.
func (r *Result) add(row int, fields map[string]string) {
	if blank(fields) {
		return
	}
	r.TotalRows++

	rec, errs := validateRecord(row, fields)
	if len(errs) > 0 {
		r.Errors = append(r.Errors, errs...)
		return
	}
	r.ValidRows = append(r.ValidRows, rec)
}

func (r *Result) addParseError(row int, err error) {
	r.TotalRows++
	r.Errors = append(r.Errors, RowError{Row: row, Field: FieldParseError, Message: err.Error()})
}

func blank(fields map[string]string) bool {
	for _, v := range fields {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func validateRecord(row int, fields map[string]string) (Record, []RowError) {
	var errs []RowError
	fail := func(field, msg string) {
		errs = append(errs, RowError{Row: row, Field: field, Message: msg})
	}

	rec := Record{
		Row:       row,
		FirstName: strings.TrimSpace(fields[FieldFirstName]),
		LastName:  strings.TrimSpace(fields[FieldLastName]),
		Email:     strings.TrimSpace(fields[FieldEmail]),
		ImpactURL: strings.TrimSpace(fields[FieldImpactURL]),
	}

	if rec.FirstName == "" {
		fail(FieldFirstName, "First name is required")
	}
	if rec.LastName == "" {
		fail(FieldLastName, "Last name is required")
	}
	switch {
	case rec.Email == "":
		fail(FieldEmail, "Email is required")
	case !emailPattern.MatchString(rec.Email):
		fail(FieldEmail, "Email is invalid")
	}

	total := strings.TrimSpace(fields[FieldTotalGiving])
	if total == "" {
		fail(FieldTotalGiving, "Total giving amount is required")
	} else if amount, err := parseAmount(total); err != nil {
		fail(FieldTotalGiving, "Total giving must be a number")
	} else if amount.IsNegative() {
		fail(FieldTotalGiving, "Total giving cannot be negative")
	} else if rounded := amount.Round(2); rounded.GreaterThan(MaxAmount) {
		fail(FieldTotalGiving, "Total giving is too large")
	} else {
		rec.TotalGiving = rounded
	}

	// Optional columns never fail a row; unparseable values are dropped.
	rec.FirstGiftDate = parseDate(fields[FieldFirstGiftDate])
	rec.LastGiftDate = parseDate(fields[FieldLastGiftDate])
	if v := strings.TrimSpace(fields[FieldLargestGift]); v != "" {
		if amount, err := parseAmount(v); err == nil && !amount.IsNegative() {
			if rounded := amount.Round(2); !rounded.GreaterThan(MaxAmount) {
				rec.LargestGift = &rounded
			}
		}
	}
	if v := strings.TrimSpace(fields[FieldGiftCount]); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			rec.GiftCount = &n
		}
	}

	sort.SliceStable(errs, func(i, j int) bool {
		return fieldOrder(errs[i].Field) < fieldOrder(errs[j].Field)
	})
	return rec, errs
}

func fieldOrder(field string) int {
	for i, f := range TemplateColumns {
		if f == field {
			return i
		}
	}
	return len(TemplateColumns)
}

// parseAmount accepts plain decimals plus a leading currency sign and
// thousands separators.
func parseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	return decimal.NewFromString(cleaned)
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}
