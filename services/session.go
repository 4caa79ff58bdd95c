package services

import (
	"context"
	"sync"

	"tripventura-pricing/models"
	"tripventura-pricing/utils"
)

// defaultSelectionSize is how many records are pre-selected after a load.
const defaultSelectionSize = 3

// SyncErrorMessage is the banner text shown when a load fell back to the
// embedded dataset.
const SyncErrorMessage = "Unable to sync live data. Showing cached results."

// RecordLoader is the ingestion seam the session depends on.
type RecordLoader interface {
	Load(ctx context.Context) *models.LoadResult
}

// SnapshotWriter receives a copy of every successful live dataset.
type SnapshotWriter interface {
	Write(records []models.TourRecord) error
}

// Session owns the record list and the user's selection; it is the only
// writer of either. A refresh replaces the record list atomically and resets
// the selection to the first three records' names — any selection made
// before the refresh is discarded unconditionally. That is deliberate:
// simplicity over preserving user intent across refresh.
type Session struct {
	mu        sync.RWMutex
	loader    RecordLoader
	snapshots SnapshotWriter
	logger    *utils.Logger

	records   []models.TourRecord
	selection *Selection
	live      bool
}

// NewSession creates an empty session around the given loader.
func NewSession(loader RecordLoader, logger *utils.Logger) *Session {
	return &Session{
		loader:    loader,
		logger:    logger,
		selection: NewSelection(),
	}
}

// SetSnapshotWriter wires an optional store that receives each live dataset.
// Snapshot failures are logged and never surface to the caller.
func (s *Session) SetSnapshotWriter(w SnapshotWriter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = w
}

// Refresh re-runs ingestion and replaces the session state with the result.
// On an empty dataset the previous selection is left in place; its stale
// names are harmless no-ops against the new record list.
func (s *Session) Refresh(ctx context.Context) {
	res := s.loader.Load(ctx)

	s.mu.Lock()
	s.records = res.Records
	s.live = res.SourceLive
	if len(res.Records) > 0 {
		n := defaultSelectionSize
		if len(res.Records) < n {
			n = len(res.Records)
		}
		names := make([]string, 0, n)
		for _, r := range res.Records[:n] {
			names = append(names, r.TourName)
		}
		s.selection = NewSelection(names...)
	}
	snapshots := s.snapshots
	s.mu.Unlock()

	if res.SourceLive && snapshots != nil {
		if err := snapshots.Write(res.Records); err != nil {
			s.logger.Error("[session] Snapshot write failed: %v", err)
		}
	}
}

// Records returns a copy of the full record list.
func (s *Session) Records() []models.TourRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TourRecord, len(s.records))
	copy(out, s.records)
	return out
}

// SourceLive reports whether the last load came from the remote sheet.
func (s *Session) SourceLive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live
}

// SyncError returns the banner message when the last load used fallback
// data, and "" otherwise.
func (s *Session) SyncError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.live {
		return ""
	}
	return SyncErrorMessage
}

// SelectionNames returns the selected names in insertion order.
func (s *Session) SelectionNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Names()
}

// SelectedRecords returns the selected subset of the record list, in record
// order.
func (s *Session) SelectedRecords() []models.TourRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Selected(s.records)
}

// Toggle flips one name in the selection.
func (s *Session) Toggle(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Toggle(name)
}

// SelectAll selects every record currently in the list.
func (s *Session) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.SelectAll(s.records)
}

// DeselectAll empties the selection.
func (s *Session) DeselectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.DeselectAll()
}
