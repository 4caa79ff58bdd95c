package sheets

import (
	"strconv"
	"strings"

	"tripventura-pricing/models"
)

// Column layout of the published sheet. The mapping is positional, not
// header-driven: columns 2 and 3 carry internal bookkeeping and are ignored.
const (
	colName   = 0
	colCode   = 1
	colNet    = 4
	colSell   = 5
	colProfit = 6
	colMedian = 7
	colFinal  = 8

	minFields = 9
)

// ParseDocument parses raw CSV text into TourRecords. The first line is the
// header and is always discarded. Rows with fewer than 9 fields are dropped
// whole, never partially mapped. Source order is preserved.
func ParseDocument(text string) []models.TourRecord {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil
	}

	records := make([]models.TourRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitFields(strings.TrimSuffix(line, "\r"))
		if len(fields) < minFields {
			continue
		}

		rec := models.TourRecord{
			TourName:           cleanText(fields[colName], "Unknown"),
			ProductCode:        cleanText(fields[colCode], "N/A"),
			NetCost:            cleanNumber(fields[colNet]),
			SellingPrice:       cleanNumber(fields[colSell]),
			ProfitPercent:      cleanNumber(fields[colProfit]),
			MedianMarketPrice:  cleanNumber(fields[colMedian]),
			FinalCustomerPrice: cleanNumber(fields[colFinal]),
		}
		// Unreachable while the default above holds; kept as a guard.
		if rec.TourName == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// splitFields splits one physical line on commas, treating a comma inside an
// open quoted region as field content. Escaped quotes ("") are not
// un-escaped, and a quoted field cannot span lines because the document is
// split on line breaks first — both accepted limitations of the source.
func splitFields(line string) []string {
	fields := make([]string, 0, minFields)
	start := 0
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				fields = append(fields, line[start:i])
				start = i + 1
			}
		}
	}
	return append(fields, line[start:])
}

// cleanNumber coerces a currency/percent formatted field to a float:
// `"$1,234.50"` → 1234.5, `12%` → 12. Empty or unparseable fields coerce
// to 0 — never an error.
func cleanNumber(field string) float64 {
	s := strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', '%', '"':
			return -1
		}
		return r
	}, field)

	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// cleanText strips quote characters and substitutes fallback for an empty
// field.
func cleanText(field, fallback string) string {
	s := strings.ReplaceAll(field, `"`, "")
	if s == "" {
		return fallback
	}
	return s
}
