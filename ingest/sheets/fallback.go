package sheets

import "tripventura-pricing/models"

// FallbackRecords returns the fixed sample dataset served whenever the live
// sheet cannot be fetched. The values mirror the seed rows of the published
// sheet and must not drift; downstream consumers render them as real data.
func FallbackRecords() []models.TourRecord {
	return []models.TourRecord{
		{TourName: "Everest Base Camp Trek", ProductCode: "TV-001", NetCost: 1200, SellingPrice: 1800, ProfitPercent: 33, MedianMarketPrice: 1750, FinalCustomerPrice: 1850},
		{TourName: "Annapurna Circuit", ProductCode: "TV-002", NetCost: 950, SellingPrice: 1450, ProfitPercent: 34, MedianMarketPrice: 1400, FinalCustomerPrice: 1500},
		{TourName: "Kathmandu Valley Tour", ProductCode: "TV-003", NetCost: 400, SellingPrice: 650, ProfitPercent: 38, MedianMarketPrice: 700, FinalCustomerPrice: 680},
		{TourName: "Pokhara Lakeside Adventure", ProductCode: "TV-004", NetCost: 300, SellingPrice: 500, ProfitPercent: 40, MedianMarketPrice: 480, FinalCustomerPrice: 520},
		{TourName: "Chitwan Jungle Safari", ProductCode: "TV-005", NetCost: 550, SellingPrice: 850, ProfitPercent: 35, MedianMarketPrice: 820, FinalCustomerPrice: 880},
	}
}
