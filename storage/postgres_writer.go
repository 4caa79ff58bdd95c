package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"tripventura-pricing/models"
	"tripventura-pricing/utils"
)

// PostgresWriter persists dataset snapshots to PostgreSQL. Each successful
// live load replaces the previous snapshot wholesale — there is no
// incremental merge, matching the session's replace-on-refresh lifecycle.
type PostgresWriter struct {
	db *sql.DB
}

var _ RecordWriter = (*PostgresWriter)(nil)

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: 5, BaseDelay: 2 * time.Second, Logger: logger}
	if err := retry.Do("postgres-ping", db.Ping); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS tour_records (
			id                   SERIAL PRIMARY KEY,
			tour_name            TEXT          NOT NULL,
			product_code         VARCHAR(50)   NOT NULL DEFAULT '',
			net_cost             NUMERIC(12,2) NOT NULL DEFAULT 0,
			selling_price        NUMERIC(12,2) NOT NULL DEFAULT 0,
			profit_percent       NUMERIC(6,2)  NOT NULL DEFAULT 0,
			median_market_price  NUMERIC(12,2) NOT NULL DEFAULT 0,
			final_customer_price NUMERIC(12,2) NOT NULL DEFAULT 0,
			loaded_at            TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_tour_records_code  ON tour_records(product_code);
		CREATE INDEX IF NOT EXISTS idx_tour_records_price ON tour_records(selling_price);
	`)
	return err
}

// Clear deletes the current snapshot.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM tour_records")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write replaces the stored snapshot with records, batch-inserting in
// source order.
func (pw *PostgresWriter) Write(records []models.TourRecord) error {
	if len(records) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := pw.insertBatch(records[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []models.TourRecord) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*7)

	for idx, r := range batch {
		base := idx * 7
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		valueArgs = append(valueArgs,
			r.TourName, r.ProductCode, r.NetCost, r.SellingPrice,
			r.ProfitPercent, r.MedianMarketPrice, r.FinalCustomerPrice)
	}

	query := fmt.Sprintf(`
		INSERT INTO tour_records (tour_name, product_code, net_cost, selling_price, profit_percent, median_market_price, final_customer_price)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves the stored snapshot in load order.
func (pw *PostgresWriter) FetchAll() ([]models.TourRecord, error) {
	rows, err := pw.db.Query(`
		SELECT tour_name, product_code, net_cost, selling_price, profit_percent, median_market_price, final_customer_price
		FROM tour_records
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var records []models.TourRecord
	for rows.Next() {
		var r models.TourRecord
		if err := rows.Scan(
			&r.TourName, &r.ProductCode, &r.NetCost, &r.SellingPrice,
			&r.ProfitPercent, &r.MedianMarketPrice, &r.FinalCustomerPrice,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
