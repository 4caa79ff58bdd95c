package storage

import "tripventura-pricing/models"

// RecordWriter is the interface any snapshot backend must satisfy.
type RecordWriter interface {
	Write(records []models.TourRecord) error
	Close() error
}
