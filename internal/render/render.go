// Package render writes catalog data into parsed page skeletons.
//
// Each populator mirrors a fixed DOM contract: it looks elements up by
// selector and silently skips any that the page does not contain.
package render

import (
	"akellar.dev/internal/carousel"
	"akellar.dev/internal/catalog"
	"akellar.dev/internal/dom"
	"akellar.dev/internal/filter"
	"akellar.dev/internal/models"
)

// DefaultOwner is appended to detail page titles
const DefaultOwner = "Ashley Kellar"

// Options controls how a page is populated
type Options struct {
	Owner      string
	FilterMode filter.Mode
	Layout     carousel.Layout

	// CarouselIndex is the requested carousel position, clamped on use
	CarouselIndex int
	// Filter is the selected filter token; empty means none was chosen
	Filter string
}

func (o Options) owner() string {
	if o.Owner == "" {
		return DefaultOwner
	}
	return o.Owner
}

// Populate runs every populator that applies to page.
// The detail and listing populators are independent of each other.
func Populate(doc *dom.Document, cat *models.Catalog, page catalog.Page, opts Options) {
	if page.Detail {
		PopulateDetail(doc, cat, page.Name, opts)
	}
	if page.Listing {
		PopulateCards(doc, cat, opts)
	}
}
