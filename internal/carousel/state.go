// Package carousel holds the "other projects" carousel navigation logic.
//
// State is a bounded index over a strip of items. Every transition keeps
// the index inside [0, MaxIndex()], where MaxIndex depends on how many
// items fit in the viewport.
package carousel

const (
	// NarrowItems is the number of items shown under the breakpoint
	NarrowItems = 1
	// WideItems is the number of items shown at or above the breakpoint
	WideItems = 3
)

// ItemsPerView returns how many items fit for a viewport width
func ItemsPerView(viewportWidth, breakpoint int) int {
	if viewportWidth < breakpoint {
		return NarrowItems
	}
	return WideItems
}

// State is the navigation position of a carousel
type State struct {
	Index        int `json:"index"`
	ItemsPerView int `json:"itemsPerView"`
	Total        int `json:"total"`
}

// NewState returns a state positioned at the first item
func NewState(total, itemsPerView int) State {
	if total < 0 {
		total = 0
	}
	if itemsPerView < 1 {
		itemsPerView = 1
	}
	return State{ItemsPerView: itemsPerView, Total: total}
}

// MaxIndex is the furthest index that still fills the view
func (s State) MaxIndex() int {
	return max(0, s.Total-s.ItemsPerView)
}

// CanPrev reports whether a left move would change the index
func (s State) CanPrev() bool {
	return s.Index > 0
}

// CanNext reports whether a right move would change the index
func (s State) CanNext() bool {
	return s.Index < s.MaxIndex()
}

// Left moves one item back unless already at the start
func (s State) Left() State {
	if s.CanPrev() {
		s.Index--
	}
	return s
}

// Right moves one item forward unless already at the end
func (s State) Right() State {
	if s.CanNext() {
		s.Index++
	}
	return s
}

// Resize recomputes items per view and pulls the index back into range
func (s State) Resize(itemsPerView int) State {
	if itemsPerView < 1 {
		itemsPerView = 1
	}
	s.ItemsPerView = itemsPerView
	if s.Index > s.MaxIndex() {
		s.Index = s.MaxIndex()
	}
	return s
}

// Seek jumps to index, clamped into range
func (s State) Seek(index int) State {
	s.Index = clamp(index, 0, s.MaxIndex())
	return s
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
