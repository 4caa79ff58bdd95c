package models

// TourRecord is one row of pricing data for a single travel product.
// Records are immutable after ingestion; downstream components read them
// by value and never mutate in place.
type TourRecord struct {
	TourName           string  `json:"tourName"`
	ProductCode        string  `json:"productCode"`
	NetCost            float64 `json:"netCost"`
	SellingPrice       float64 `json:"sellingPrice"`
	ProfitPercent      float64 `json:"profitPercent"`
	MedianMarketPrice  float64 `json:"medianMarketPrice"`
	FinalCustomerPrice float64 `json:"finalCustomerPrice"`
}

// LoadResult is what one ingestion run produces. SourceLive reports whether
// Records came from the remote sheet or from the embedded fallback dataset;
// either way the records are renderable.
type LoadResult struct {
	Records    []TourRecord
	SourceLive bool
}

// SummaryReport holds the computed analytics over a set of records.
type SummaryReport struct {
	TotalTours        int         `json:"totalTours"`
	AvgProfitPercent  float64     `json:"avgProfitPercent"`
	TotalSellingValue float64     `json:"totalSellingValue"`
	AvgMarketGap      float64     `json:"avgMarketGap"`
	CompetitiveCount  int         `json:"competitiveCount"`
	ExclusiveCount    int         `json:"exclusiveCount"`
	BestMargin        *TourRecord `json:"bestMargin,omitempty"`
}
