package services

import (
	"fmt"
	"strings"

	"tripventura-pricing/models"
	"tripventura-pricing/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the summary analytics over the given records, normally
// the selected subset. Aggregates are rounded to cents for display; the
// pure metric functions stay exact.
func (s *InsightService) Generate(records []models.TourRecord) *models.SummaryReport {
	report := &models.SummaryReport{}

	if len(records) == 0 {
		return report
	}

	report.TotalTours = len(records)
	report.AvgProfitPercent = round2(AverageProfitPercent(records))
	report.TotalSellingValue = round2(TotalSellingValue(records))
	report.AvgMarketGap = round2(AverageMarketGap(records))

	var best *models.TourRecord
	for i := range records {
		if MarketGrade(records[i]) == GradeCompetitive {
			report.CompetitiveCount++
		} else {
			report.ExclusiveCount++
		}
		if best == nil || UnitMargin(records[i]) > UnitMargin(*best) {
			best = &records[i]
		}
	}
	report.BestMargin = best

	return report
}

func (s *InsightService) Print(r *models.SummaryReport, records []models.TourRecord) {
	sep := strings.Repeat("═", 60)
	thin := strings.Repeat("─", 60)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 TRIPVENTURA PRICING ANALYSIS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Portfolio Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Tours in focus          : \033[1m%d\033[0m\n", r.TotalTours)
	if r.TotalTours == 0 {
		fmt.Printf("  Select tours to begin price comparisons\n")
		fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
		return
	}
	fmt.Printf("  Portfolio profit margin : \033[1;32m%.1f%%\033[0m\n", r.AvgProfitPercent)
	fmt.Printf("  Total package value     : \033[1;32m$%.2f\033[0m\n", r.TotalSellingValue)
	// The dashboard card renders the comp index with an inverted sign:
	// priced below market shows as "-$", above market as "+$".
	if r.AvgMarketGap > 0 {
		fmt.Printf("  Market comp index       : \033[1;32m-$%.0f\033[0m (below market)\n", abs(r.AvgMarketGap))
	} else {
		fmt.Printf("  Market comp index       : \033[1;31m+$%.0f\033[0m (above market)\n", abs(r.AvgMarketGap))
	}
	fmt.Println()

	if r.BestMargin != nil {
		fmt.Printf("\033[1;33m  Best Unit Margin\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s (%s)\n", truncate(r.BestMargin.TourName, 44), r.BestMargin.ProductCode)
		fmt.Printf("  Margin   : \033[1;32m$%.2f\033[0m (%.1f%% of selling price)\n",
			UnitMargin(*r.BestMargin), MarginPercent(*r.BestMargin))
		fmt.Println()
	}

	fmt.Printf("\033[1;33m  Inventory Intelligence\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, rec := range records {
		grade := MarketGrade(rec)
		color := "\033[1;32m"
		if grade == GradeExclusive {
			color = "\033[1;31m"
		}
		fmt.Printf("  %-34s $%-9.2f %s%s\033[0m\n",
			truncate(rec.TourName, 32), rec.SellingPrice, color, grade)
		fmt.Printf("    %-32s net $%.2f · market $%.2f · margin $%.2f (%.0f%%)\n",
			rec.ProductCode, rec.NetCost, rec.MedianMarketPrice, UnitMargin(rec), rec.ProfitPercent)
	}
	fmt.Printf("  %d competitive, %d exclusive\n", r.CompetitiveCount, r.ExclusiveCount)

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	if f < 0 {
		return -float64(int(-f*100+0.5)) / 100
	}
	return float64(int(f*100+0.5)) / 100
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
