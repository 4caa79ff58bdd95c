package services

import "tripventura-pricing/models"

// Selection is the ordered list of tour names the user is focusing on.
// It is keyed by name: two records sharing a name toggle together. Names
// left over from before a refresh simply match nothing.
type Selection struct {
	names []string
}

// NewSelection creates a selection holding the given names in order.
func NewSelection(names ...string) *Selection {
	s := &Selection{}
	if len(names) > 0 {
		s.names = append(s.names, names...)
	}
	return s
}

// Toggle removes the first occurrence of name, or appends it when absent.
// A re-added name moves to the end of the list, not its old position.
func (s *Selection) Toggle(name string) {
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			return
		}
	}
	s.names = append(s.names, name)
}

// SelectAll replaces the selection with every record's name, in record
// order.
func (s *Selection) SelectAll(records []models.TourRecord) {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.TourName)
	}
	s.names = names
}

// DeselectAll empties the selection.
func (s *Selection) DeselectAll() {
	s.names = nil
}

// Contains reports whether name is currently selected.
func (s *Selection) Contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns a copy of the selected names in insertion order.
func (s *Selection) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of selected names.
func (s *Selection) Len() int {
	return len(s.names)
}

// Selected filters records to those whose name is selected. The result
// preserves the record list's order, not the selection's insertion order.
func (s *Selection) Selected(records []models.TourRecord) []models.TourRecord {
	out := make([]models.TourRecord, 0, len(records))
	for _, r := range records {
		if s.Contains(r.TourName) {
			out = append(out, r)
		}
	}
	return out
}
