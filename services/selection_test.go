package services

import (
	"reflect"
	"testing"

	"tripventura-pricing/models"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	s := NewSelection()

	s.Toggle("Trek A")
	if !s.Contains("Trek A") || s.Len() != 1 {
		t.Fatalf("after first toggle: names=%v", s.Names())
	}

	s.Toggle("Trek A")
	if s.Contains("Trek A") || s.Len() != 0 {
		t.Fatalf("after second toggle: names=%v", s.Names())
	}
}

func TestToggleReaddMovesToEnd(t *testing.T) {
	s := NewSelection("A", "B", "C")

	s.Toggle("A")
	s.Toggle("A")

	want := []string{"B", "C", "A"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSelectAllFollowsRecordOrder(t *testing.T) {
	s := NewSelection("stale")
	records := []models.TourRecord{
		{TourName: "C"},
		{TourName: "A"},
		{TourName: "B"},
	}

	s.SelectAll(records)

	want := []string{"C", "A", "B"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDeselectAll(t *testing.T) {
	s := NewSelection("A", "B")
	s.DeselectAll()
	if s.Len() != 0 {
		t.Errorf("got %d names, want 0", s.Len())
	}
}

func TestSelectedPreservesRecordOrder(t *testing.T) {
	records := []models.TourRecord{
		{TourName: "A", SellingPrice: 1},
		{TourName: "B", SellingPrice: 2},
		{TourName: "C", SellingPrice: 3},
	}
	// Insertion order C-then-A must not affect the output order.
	s := NewSelection("C", "A")

	got := s.Selected(records)
	if len(got) != 2 || got[0].TourName != "A" || got[1].TourName != "C" {
		t.Errorf("got %v", got)
	}
}

func TestSelectedIgnoresStaleNames(t *testing.T) {
	s := NewSelection("Gone Tour")
	records := []models.TourRecord{{TourName: "A"}}

	if got := s.Selected(records); len(got) != 0 {
		t.Errorf("stale name matched records: %v", got)
	}
}

func TestSelectedDuplicateNamesToggleTogether(t *testing.T) {
	records := []models.TourRecord{
		{TourName: "Twin", ProductCode: "TV-1"},
		{TourName: "Twin", ProductCode: "TV-2"},
	}
	s := NewSelection("Twin")

	if got := s.Selected(records); len(got) != 2 {
		t.Errorf("expected both duplicates selected, got %d", len(got))
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	s := NewSelection("A", "B")
	names := s.Names()
	names[0] = "mutated"

	if s.Names()[0] != "A" {
		t.Error("Names exposed internal state")
	}
}
