package render

import (
	"akellar.dev/internal/dom"
	"akellar.dev/internal/models"
)

// PopulateDetail fills a project detail page for key, then appends the
// carousel of the other projects
func PopulateDetail(doc *dom.Document, cat *models.Catalog, key string, opts Options) {
	project, ok := cat.Get(key)
	if !ok {
		return
	}

	doc.SetTitle(project.Title + " - " + opts.owner())

	setText(doc, ".project-category", project.Category)
	setText(doc, ".project-title", project.Title)
	setText(doc, ".project-subtitle", project.Subtitle)

	if hero := doc.QuerySelector(".project-hero-image img"); hero != nil {
		hero.SetAttr("src", project.HeroImage)
		hero.SetAttr("alt", project.Title+" showcase")
	}

	// timeline, tools and role fill the first three meta paragraphs
	if meta := doc.QuerySelectorAll(".meta-item p"); len(meta) >= 3 {
		meta[0].SetText(project.Timeline)
		meta[1].SetText(project.Tools)
		meta[2].SetText(project.Role)
	}

	if project.Body != "" {
		if body := doc.QuerySelector(".project-body"); body != nil {
			setBody(body, project.Body)
		}
	}

	AppendCarousel(doc, cat, key, opts)
}

// renderBody converts a project body to HTML
var renderBody = Markdown

// setBody writes the rendered body, or the source as plain text when it
// cannot be rendered or parsed
func setBody(el *dom.Element, source string) {
	rendered, err := renderBody(source)
	if err == nil {
		err = el.SetInnerHTML(rendered)
	}
	if err != nil {
		el.SetText(source)
	}
}

func setText(doc *dom.Document, sel, text string) {
	if el := doc.QuerySelector(sel); el != nil {
		el.SetText(text)
	}
}
