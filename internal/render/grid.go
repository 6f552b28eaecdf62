package render

import (
	"akellar.dev/internal/dom"
	"akellar.dev/internal/models"
)

// PopulateCards fills the home page previews and rebuilds the projects
// grid, then re-attaches the filters to the fresh cards
func PopulateCards(doc *dom.Document, cat *models.Catalog, opts Options) {
	for _, item := range doc.QuerySelectorAll(".preview-item, .preview-right") {
		project, ok := cat.Get(item.GetAttribute("href"))
		if !ok {
			continue
		}
		if img := item.QuerySelector("img"); img != nil {
			img.SetAttr("src", project.ThumbnailImage)
		}
		if title := item.QuerySelector("h4"); title != nil {
			title.SetText(project.Title)
		}
		if blurb := item.QuerySelector("p"); blurb != nil {
			blurb.SetText(project.ShortBlurb)
		}
	}

	grid := doc.GetElementByID("projects-grid")
	if grid == nil {
		return
	}
	grid.Clear()

	for _, e := range cat.Entries() {
		card := doc.CreateElement("a")
		card.SetAttr("href", e.Key)
		card.SetAttr("class", "project-grid-card")
		card.SetAttr("data-categories", e.Project.CategoryAttr())

		img := doc.CreateElement("img")
		img.SetAttr("src", e.Project.ThumbnailImage)
		img.SetAttr("alt", e.Project.Title)
		card.AppendChild(img)

		title := doc.CreateElement("h3")
		title.SetText(e.Project.Title)
		card.AppendChild(title)

		blurb := doc.CreateElement("p")
		blurb.SetText(e.Project.ShortBlurb)
		card.AppendChild(blurb)

		grid.AppendChild(card)
	}

	BuildFilterButtons(doc, cat)
	AttachFilters(doc, opts.Filter, opts.FilterMode)
}
