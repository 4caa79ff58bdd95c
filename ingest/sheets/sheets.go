package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"tripventura-pricing/config"
	"tripventura-pricing/models"
	"tripventura-pricing/utils"
)

// Loader fetches the published pricing sheet and turns it into TourRecords.
type Loader struct {
	cfg    *config.Config
	logger *utils.Logger
	client *http.Client
}

// New creates a ready-to-use sheet Loader.
func New(cfg *config.Config, logger *utils.Logger) *Loader {
	return &Loader{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeoutMs) * time.Millisecond,
		},
	}
}

// Load fetches and parses the remote sheet. It never fails: any fetch error
// is logged and the embedded fallback dataset is returned with
// SourceLive=false, so the caller always has something renderable. A failed
// fetch is not retried; the next Load call starts fresh.
func (l *Loader) Load(ctx context.Context) *models.LoadResult {
	text, err := l.fetch(ctx)
	if err != nil {
		l.logger.Error("[sheets] Fetch failed: %v — serving fallback dataset", err)
		return &models.LoadResult{Records: FallbackRecords(), SourceLive: false}
	}

	records := ParseDocument(text)
	l.logger.Info("[sheets] Parsed %d records from live sheet", len(records))
	return &models.LoadResult{Records: records, SourceLive: true}
}

// fetch GETs the sheet CSV and buffers the entire body before parsing.
func (l *Loader) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.SheetCSVURL, nil)
	if err != nil {
		return "", fmt.Errorf("sheets: build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sheets: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("sheets: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("sheets: read body: %w", err)
	}
	return string(body), nil
}
