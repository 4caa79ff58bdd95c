package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tripventura-pricing/models"
)

// exportHeader is the fixed header row of the analysis export. Column order
// is part of the format contract.
const exportHeader = "Tour Name,Product Code,Net Cost,Selling Price,Profit %,Median Market Price,Final Customer Price"

// ExportCSV renders records as the downloadable analysis document. The tour
// name column is always double-quoted (source names do not contain quote
// characters, so no escaping is applied); numeric columns are plain
// unformatted numbers and need no quoting. Rows are newline-joined, in
// input order.
func ExportCSV(records []models.TourRecord) string {
	rows := make([]string, 0, len(records)+1)
	rows = append(rows, exportHeader)

	for _, r := range records {
		rows = append(rows, strings.Join([]string{
			`"` + r.TourName + `"`,
			r.ProductCode,
			formatNumber(r.NetCost),
			formatNumber(r.SellingPrice),
			formatNumber(r.ProfitPercent),
			formatNumber(r.MedianMarketPrice),
			formatNumber(r.FinalCustomerPrice),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

// ExportFileName returns the dated download name for the analysis document,
// e.g. tripventura_pricing_analysis_2024-06-01.csv. The date is UTC.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("tripventura_pricing_analysis_%s.csv", t.UTC().Format("2006-01-02"))
}

// formatNumber emits a float with no currency/percent formatting and no
// trailing zeros: 1800 → "1800", 1234.5 → "1234.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportWriter saves analysis documents under a fixed output directory.
type ExportWriter struct {
	dir string
}

// NewExportWriter creates the output directory if needed and returns a
// ready-to-use ExportWriter.
func NewExportWriter(dir string) (*ExportWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("export: create output dir: %w", err)
	}
	return &ExportWriter{dir: dir}, nil
}

// Save writes the export document for records, dated at now, and returns
// the written file path.
func (w *ExportWriter) Save(records []models.TourRecord, now time.Time) (string, error) {
	path := filepath.Join(w.dir, ExportFileName(now))
	if err := os.WriteFile(path, []byte(ExportCSV(records)), 0644); err != nil {
		return "", fmt.Errorf("export: write %q: %w", path, err)
	}
	return path, nil
}
