package render

import (
	"strconv"

	"akellar.dev/internal/carousel"
	"akellar.dev/internal/dom"
	"akellar.dev/internal/models"
)

// AppendCarousel adds the "Other Projects" section to .project-detail.
// Nothing is added when the page has no .project-detail or there are no
// other projects.
func AppendCarousel(doc *dom.Document, cat *models.Catalog, current string, opts Options) *dom.Element {
	detail := doc.QuerySelector(".project-detail")
	if detail == nil {
		return nil
	}

	section := BuildCarousel(doc, cat, current, opts)
	if section == nil {
		return nil
	}
	detail.AppendChild(section)
	return section
}

// BuildCarousel returns a detached carousel section for every project
// except current, positioned at opts.CarouselIndex
func BuildCarousel(doc *dom.Document, cat *models.Catalog, current string, opts Options) *dom.Element {
	others := cat.Others(current)
	if len(others) == 0 {
		return nil
	}

	state := carousel.NewState(len(others), opts.Layout.ItemsPerView()).Seek(opts.CarouselIndex)
	frame := opts.Layout.Frame(state)

	section := doc.CreateElement("section")
	section.SetAttr("class", "project-carousel-section")
	section.SetAttr("data-carousel-for", current)

	heading := doc.CreateElement("h2")
	heading.SetAttr("class", "carousel-title")
	heading.SetText("Other Projects")
	section.AppendChild(heading)

	container := doc.CreateElement("div")
	container.SetAttr("class", "carousel-container")

	container.AppendChild(arrow(doc, "left", "‹", "Previous projects", frame.Index-1, frame.PrevDisabled))

	wrapper := doc.CreateElement("div")
	wrapper.SetAttr("class", "carousel-wrapper")

	strip := doc.CreateElement("div")
	strip.SetAttr("class", "project-carousel")
	strip.SetAttr("data-index", strconv.Itoa(frame.Index))
	strip.SetAttr("data-items-per-view", strconv.Itoa(frame.ItemsPerView))
	strip.SetAttr("data-breakpoint", strconv.Itoa(opts.Layout.Breakpoint))
	strip.SetAttr("data-gap", strconv.Itoa(opts.Layout.Gap))
	strip.SetStyle("transform", frame.Transform())

	for _, e := range others {
		item := doc.CreateElement("a")
		item.SetAttr("href", e.Key)
		item.SetAttr("class", "carousel-item")
		item.SetStyle("flex", frame.ItemBasis())

		img := doc.CreateElement("img")
		img.SetAttr("src", e.Project.HeroImage)
		img.SetAttr("alt", e.Project.Title)
		item.AppendChild(img)

		title := doc.CreateElement("h4")
		title.SetText(e.Project.Title)
		item.AppendChild(title)

		strip.AppendChild(item)
	}

	wrapper.AppendChild(strip)
	container.AppendChild(wrapper)
	container.AppendChild(arrow(doc, "right", "›", "Next projects", frame.Index+1, frame.NextDisabled))
	section.AppendChild(container)

	return section
}

// arrow builds a navigation control. Disabled arrows have no link and
// carry the class the stylesheet dims.
func arrow(doc *dom.Document, side, glyph, label string, target int, disabled bool) *dom.Element {
	a := doc.CreateElement("a")
	a.SetAttr("class", "carousel-arrow carousel-arrow-"+side)
	a.SetAttr("aria-label", label)
	a.SetAttr("data-direction", side)
	a.SetText(glyph)

	if disabled {
		a.AddClass("disabled")
		a.SetAttr("aria-disabled", "true")
		return a
	}
	a.SetAttr("href", "?carousel="+strconv.Itoa(target))
	return a
}
