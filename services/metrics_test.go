package services

import (
	"testing"

	"tripventura-pricing/models"
)

func sampleRecords() []models.TourRecord {
	return []models.TourRecord{
		{TourName: "Trek A", ProductCode: "TV-1", NetCost: 1000, SellingPrice: 1500, ProfitPercent: 33, MedianMarketPrice: 1400, FinalCustomerPrice: 1550},
		{TourName: "Trek B", ProductCode: "TV-2", NetCost: 400, SellingPrice: 650, ProfitPercent: 38, MedianMarketPrice: 700, FinalCustomerPrice: 680},
		{TourName: "Trek C", ProductCode: "TV-3", NetCost: 300, SellingPrice: 500, ProfitPercent: 40, MedianMarketPrice: 480, FinalCustomerPrice: 520},
	}
}

func TestAverageProfitPercent(t *testing.T) {
	if got := AverageProfitPercent(sampleRecords()); got != 37 {
		t.Errorf("got %v, want 37", got)
	}
	if got := AverageProfitPercent(nil); got != 0 {
		t.Errorf("empty list: got %v, want 0", got)
	}
}

func TestTotalSellingValue(t *testing.T) {
	if got := TotalSellingValue(sampleRecords()); got != 2650 {
		t.Errorf("got %v, want 2650", got)
	}
	if got := TotalSellingValue(nil); got != 0 {
		t.Errorf("empty list: got %v, want 0", got)
	}
}

func TestAverageMarketGap(t *testing.T) {
	// Gaps: -100, 50, -20 → mean -70/3.
	got := AverageMarketGap(sampleRecords())
	want := -70.0 / 3
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := AverageMarketGap(nil); got != 0 {
		t.Errorf("empty list: got %v, want 0", got)
	}
}

func TestPerRecordMetrics(t *testing.T) {
	r := models.TourRecord{NetCost: 1000, SellingPrice: 1500, MedianMarketPrice: 1400}

	if got := MarketGap(r); got != -100 {
		t.Errorf("MarketGap: got %v, want -100", got)
	}
	if got := UnitMargin(r); got != 500 {
		t.Errorf("UnitMargin: got %v, want 500", got)
	}
	want := 500.0 / 1500 * 100
	if got := MarginPercent(r); got != want {
		t.Errorf("MarginPercent: got %v, want %v", got, want)
	}
}

func TestMarginPercentZeroSellingPrice(t *testing.T) {
	r := models.TourRecord{NetCost: 100, SellingPrice: 0}
	if got := MarginPercent(r); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestUnitMarginMayBeNegative(t *testing.T) {
	r := models.TourRecord{NetCost: 800, SellingPrice: 500}
	if got := UnitMargin(r); got != -300 {
		t.Errorf("got %v, want -300", got)
	}
}

func TestMarketGrade(t *testing.T) {
	tests := []struct {
		selling float64
		median  float64
		want    string
	}{
		{650, 700, GradeCompetitive},
		{700, 700, GradeExclusive}, // tie grades as exclusive
		{750, 700, GradeExclusive},
	}

	for _, tt := range tests {
		r := models.TourRecord{SellingPrice: tt.selling, MedianMarketPrice: tt.median}
		if got := MarketGrade(r); got != tt.want {
			t.Errorf("MarketGrade(sell=%v, median=%v) = %q; want %q", tt.selling, tt.median, got, tt.want)
		}
	}
}
