package carousel

import (
	"fmt"
	"math"
	"strconv"
)

// Layout holds the measurements the strip offset is computed from
type Layout struct {
	ContainerWidth int
	ViewportWidth  int
	Breakpoint     int
	Gap            int
}

// ItemsPerView returns the items that fit in this layout's viewport
func (l Layout) ItemsPerView() int {
	return ItemsPerView(l.ViewportWidth, l.Breakpoint)
}

// ItemWidth is the width of one item so that itemsPerView items and
// their gaps fill the container
func (l Layout) ItemWidth(itemsPerView int) float64 {
	if itemsPerView < 1 {
		itemsPerView = 1
	}
	w := float64(l.ContainerWidth-l.Gap*(itemsPerView-1)) / float64(itemsPerView)
	return max(w, 0)
}

// Offset is the horizontal shift that brings index to the left edge
func (l Layout) Offset(index, itemsPerView int) float64 {
	return float64(index) * (l.ItemWidth(itemsPerView) + float64(l.Gap))
}

// Frame is everything needed to draw the carousel at a given state
type Frame struct {
	Index        int     `json:"index"`
	ItemsPerView int     `json:"itemsPerView"`
	MaxIndex     int     `json:"maxIndex"`
	Total        int     `json:"total"`
	ItemWidth    float64 `json:"itemWidth"`
	Offset       float64 `json:"offset"`
	PrevDisabled bool    `json:"prevDisabled"`
	NextDisabled bool    `json:"nextDisabled"`
}

// Frame computes the drawing parameters for s
func (l Layout) Frame(s State) Frame {
	return Frame{
		Index:        s.Index,
		ItemsPerView: s.ItemsPerView,
		MaxIndex:     s.MaxIndex(),
		Total:        s.Total,
		ItemWidth:    l.ItemWidth(s.ItemsPerView),
		Offset:       l.Offset(s.Index, s.ItemsPerView),
		PrevDisabled: !s.CanPrev(),
		NextDisabled: !s.CanNext(),
	}
}

// Transform is the CSS transform for the strip
func (f Frame) Transform() string {
	return fmt.Sprintf("translateX(-%spx)", formatPx(f.Offset))
}

// ItemBasis is the CSS flex shorthand for a single item
func (f Frame) ItemBasis() string {
	return fmt.Sprintf("0 0 %spx", formatPx(f.ItemWidth))
}

func formatPx(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
