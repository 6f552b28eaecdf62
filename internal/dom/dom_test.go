package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><head><title>Old</title></head>
<body>
  <div class="project-hero-image"><img src="a.jpg"></div>
  <div id="grid"><p class="x">one</p><p>two</p></div>
</body></html>`

func TestQueryAndTitle(t *testing.T) {
	doc, err := ParseString(page)
	require.NoError(t, err)

	assert.Equal(t, "Old", doc.Title())
	doc.SetTitle("New")
	assert.Equal(t, "New", doc.Title())

	img := doc.QuerySelector(".project-hero-image img")
	require.NotNil(t, img)
	assert.Equal(t, "a.jpg", img.GetAttribute("src"))

	assert.Len(t, doc.QuerySelectorAll("#grid p"), 2)
	assert.Nil(t, doc.QuerySelector(".missing"))
	assert.Nil(t, doc.QuerySelector("[[invalid"))
	assert.Empty(t, doc.QuerySelectorAll("[[invalid"))
}

func TestSetTitleCreatesElement(t *testing.T) {
	doc, err := ParseString(`<html><head></head><body></body></html>`)
	require.NoError(t, err)

	doc.SetTitle("Fresh")
	assert.Equal(t, "Fresh", doc.Title())
}

func TestElementEditing(t *testing.T) {
	doc, err := ParseString(page)
	require.NoError(t, err)

	grid := doc.GetElementByID("grid")
	require.NotNil(t, grid)
	assert.Nil(t, grid.QuerySelector("#grid"), "element queries exclude the element itself")

	grid.Clear()
	assert.Empty(t, grid.Children())

	card := doc.CreateElement("a")
	card.SetAttr("href", "x.html")
	card.AddClass("card")
	card.AddClass("card")
	card.AddClass("active")
	card.RemoveClass("active")
	card.SetText("<hello>")
	grid.AppendChild(card)

	assert.Equal(t, "card", card.GetAttribute("class"))
	assert.Equal(t, "<hello>", card.Text())
	assert.Contains(t, doc.String(), `<a href="x.html" class="card">&lt;hello&gt;</a>`)
}

func TestStyle(t *testing.T) {
	doc, err := ParseString(`<div style="color: red; display:none"></div>`)
	require.NoError(t, err)

	div := doc.QuerySelector("div")
	require.NotNil(t, div)
	assert.Equal(t, "none", div.Style("display"))

	div.SetStyle("display", "flex")
	div.SetStyle("transform", "translateX(-10px)")
	assert.Equal(t, "color: red; display: flex; transform: translateX(-10px)", div.GetAttribute("style"))
}

func TestSetInnerHTML(t *testing.T) {
	doc, err := ParseString(`<section></section>`)
	require.NoError(t, err)

	section := doc.QuerySelector("section")
	require.NoError(t, section.SetInnerHTML(`<h2 class="carousel-title">Other Projects</h2>`))
	h2 := section.QuerySelector("h2.carousel-title")
	require.NotNil(t, h2)
	assert.Equal(t, "Other Projects", h2.Text())
	assert.True(t, strings.HasPrefix(section.OuterHTML(), "<section><h2"))
}
