package ingest

import (
	"strings"
	"unicode"
)

// Canonical column names. They double as the field names reported in row
// errors and as the template header.
const (
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldEmail         = "email"
	FieldTotalGiving   = "total_giving"
	FieldFirstGiftDate = "first_gift_date"
	FieldLastGiftDate  = "last_gift_date"
	FieldLargestGift   = "largest_gift"
	FieldGiftCount     = "gift_count"
	FieldImpactURL     = "impact_url"

	// FieldParseError marks a row whose CSV structure could not be read.
	FieldParseError = "parse_error"
)

// TemplateColumns is the fixed column set of the downloadable template.
var TemplateColumns = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldTotalGiving,
	FieldFirstGiftDate,
	FieldLastGiftDate,
	FieldLargestGift,
	FieldGiftCount,
}

// headerSynonyms maps compacted header spellings (lowercase, letters and
// digits only) to canonical field names.
var headerSynonyms = map[string]string{
	"firstname": FieldFirstName,
	"first":     FieldFirstName,
	"fname":     FieldFirstName,
	"givenname": FieldFirstName,

	"lastname":   FieldLastName,
	"last":       FieldLastName,
	"lname":      FieldLastName,
	"surname":    FieldLastName,
	"familyname": FieldLastName,

	"email":        FieldEmail,
	"emailaddress": FieldEmail,
	"mail":         FieldEmail,

	"totalgiving":    FieldTotalGiving,
	"givingtotal":    FieldTotalGiving,
	"total":          FieldTotalGiving,
	"totalamount":    FieldTotalGiving,
	"totaldonated":   FieldTotalGiving,
	"totaldonations": FieldTotalGiving,
	"lifetimegiving": FieldTotalGiving,
	"amount":         FieldTotalGiving,

	"firstgiftdate":     FieldFirstGiftDate,
	"firstgift":         FieldFirstGiftDate,
	"firstdonationdate": FieldFirstGiftDate,

	"lastgiftdate":       FieldLastGiftDate,
	"lastgift":           FieldLastGiftDate,
	"lastdonationdate":   FieldLastGiftDate,
	"mostrecentgiftdate": FieldLastGiftDate,

	"largestgift":       FieldLargestGift,
	"largestgiftamount": FieldLargestGift,
	"largestdonation":   FieldLargestGift,
	"maxgift":           FieldLargestGift,

	"giftcount":     FieldGiftCount,
	"numberofgifts": FieldGiftCount,
	"numgifts":      FieldGiftCount,
	"donationcount": FieldGiftCount,

	"impacturl":   FieldImpactURL,
	"impacttoken": FieldImpactURL,
	"token":       FieldImpactURL,
}

// CanonicalField resolves a header name to its canonical field. The second
// return value is false for unrecognized columns.
func CanonicalField(header string) (string, bool) {
	field, ok := headerSynonyms[compact(header)]
	return field, ok
}

func compact(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// columnIndex maps canonical fields to their position in a header row. When
// two columns resolve to the same field the first one wins.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		field, ok := CanonicalField(h)
		if !ok {
			continue
		}
		if _, seen := idx[field]; !seen {
			idx[field] = i
		}
	}
	return idx
}
