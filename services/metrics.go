package services

import "tripventura-pricing/models"

// Market grade labels. A tour priced strictly below the market median is
// competitive; ties grade as exclusive.
const (
	GradeCompetitive = "Competitive"
	GradeExclusive   = "Exclusive"
)

// AverageProfitPercent returns the arithmetic mean of ProfitPercent.
// An empty list yields 0, not NaN: every consumer renders the value
// directly, so the metrics stay total.
func AverageProfitPercent(records []models.TourRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var total float64
	for _, r := range records {
		total += r.ProfitPercent
	}
	return total / float64(len(records))
}

// TotalSellingValue returns the sum of SellingPrice over the list.
func TotalSellingValue(records []models.TourRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.SellingPrice
	}
	return total
}

// AverageMarketGap returns the mean of (median market price − selling
// price). Positive means the portfolio is, on average, priced below market.
// An empty list yields 0.
func AverageMarketGap(records []models.TourRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var total float64
	for _, r := range records {
		total += MarketGap(r)
	}
	return total / float64(len(records))
}

// MarketGap returns median market price minus selling price for one record.
func MarketGap(r models.TourRecord) float64 {
	return r.MedianMarketPrice - r.SellingPrice
}

// UnitMargin returns selling price minus net cost. It may be negative; no
// floor is applied.
func UnitMargin(r models.TourRecord) float64 {
	return r.SellingPrice - r.NetCost
}

// MarginPercent returns the unit margin as a percentage of the selling
// price. A zero selling price yields 0.
func MarginPercent(r models.TourRecord) float64 {
	if r.SellingPrice == 0 {
		return 0
	}
	return UnitMargin(r) / r.SellingPrice * 100
}

// MarketGrade classifies a record against its market benchmark.
func MarketGrade(r models.TourRecord) string {
	if r.SellingPrice < r.MedianMarketPrice {
		return GradeCompetitive
	}
	return GradeExclusive
}
