package state

// Selector tracks which land is on screen. The zero value selects nothing.
type Selector struct {
	index int
	count int
}

// NewSelector selects the first of count lands.
func NewSelector(count int) Selector {
	if count < 0 {
		count = 0
	}
	return Selector{count: count}
}

// Index returns the selected position.
func (s Selector) Index() int {
	return s.index
}

// Count returns the number of selectable lands.
func (s Selector) Count() int {
	return s.count
}

// Valid reports whether Index points at an existing land.
func (s Selector) Valid() bool {
	return s.index >= 0 && s.index < s.count
}

// SetIndex selects land i. Out-of-range indices are rejected and leave the
// selection unchanged.
func (s *Selector) SetIndex(i int) bool {
	if i < 0 || i >= s.count {
		return false
	}
	s.index = i
	return true
}

// Advance moves to the next land, wrapping to the first. No-op when empty.
func (s *Selector) Advance() {
	if s.count == 0 {
		return
	}
	s.index = (s.index + 1) % s.count
}

// Retreat moves to the previous land, wrapping to the last. No-op when empty.
func (s *Selector) Retreat() {
	if s.count == 0 {
		return
	}
	s.index = (s.index - 1 + s.count) % s.count
}
