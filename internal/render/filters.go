package render

import (
	"net/url"

	"akellar.dev/internal/dom"
	"akellar.dev/internal/filter"
	"akellar.dev/internal/models"
)

// BuildFilterButtons fills an empty .project-filters container with an
// "all" button and one button per catalog tag
func BuildFilterButtons(doc *dom.Document, cat *models.Catalog) {
	bar := doc.QuerySelector(".project-filters")
	if bar == nil || len(bar.QuerySelectorAll(".filter-btn")) > 0 {
		return
	}

	tokens := append([]string{filter.All}, cat.Tags()...)
	for _, token := range tokens {
		btn := doc.CreateElement("a")
		btn.SetAttr("class", "filter-btn")
		btn.SetAttr("data-filter", token)
		btn.SetText(filter.Label(token))
		bar.AppendChild(btn)
	}
}

// AttachFilters wires the .filter-btn controls to the grid cards.
// Anchor buttons link to their filter and each .project-filters bar
// records mode for the client script. When selected is non-empty the
// matching button becomes the only active one and each card is shown or
// hidden by its data-categories.
func AttachFilters(doc *dom.Document, selected string, mode filter.Mode) {
	for _, bar := range doc.QuerySelectorAll(".project-filters") {
		bar.SetAttr("data-filter-mode", string(mode))
	}

	buttons := doc.QuerySelectorAll(".filter-btn")
	for _, btn := range buttons {
		if btn.Tag() == "a" {
			btn.SetAttr("href", "?filter="+url.QueryEscape(btn.GetAttribute("data-filter")))
		}
	}

	if selected == "" {
		return
	}

	for _, btn := range buttons {
		if btn.GetAttribute("data-filter") == selected {
			btn.AddClass("active")
		} else {
			btn.RemoveClass("active")
		}
	}

	for _, card := range doc.QuerySelectorAll(".project-grid-card") {
		if filter.Matches(card.GetAttribute("data-categories"), selected, mode) {
			card.SetStyle("display", "flex")
		} else {
			card.SetStyle("display", "none")
		}
	}
}
