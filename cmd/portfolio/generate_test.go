package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"akellar.dev/internal/catalog"
	"akellar.dev/internal/config"
	"akellar.dev/internal/dom"
	"akellar.dev/internal/handlers"
	"akellar.dev/internal/models"
	"akellar.dev/web"
)

var testSite = fstest.MapFS{
	"index.html": {Data: []byte(`<html><head><title>Home</title></head><body>
		<a class="preview-item" href="a.html"><img src=""><h4></h4><p></p></a></body></html>`)},
	"project.html": {Data: []byte(`<html><head><title>Project</title></head><body>
		<main class="project-detail"><h1 class="project-title"></h1></main></body></html>`)},
	"css/style.css":      {Data: []byte(`body{}`)},
	"projects-data.json": {Data: []byte(`{}`)},
}

func TestGenerateSite(t *testing.T) {
	cat, err := models.ParseCatalog([]byte(`{
		"a.html": {"title": "A", "categories": ["ux"], "thumbnailImage": "a.jpg"},
		"b.html": {"title": "B", "categories": ["print"]}
	}`))
	require.NoError(t, err)

	out := t.TempDir()
	n, err := generateSite(context.Background(), testSite, cat, out, handlers.DefaultRenderOptions(config.Default()), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 4, n) // index, project, a, b

	css, err := os.ReadFile(filepath.Join(out, "css", "style.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(css))

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	doc, err := dom.ParseString(string(index))
	require.NoError(t, err)
	assert.Equal(t, "A", doc.QuerySelector(".preview-item h4").Text())

	detail, err := os.ReadFile(filepath.Join(out, "b.html"))
	require.NoError(t, err)
	doc, err = dom.ParseString(string(detail))
	require.NoError(t, err)
	assert.Equal(t, "B - Ashley Kellar", doc.Title())
	assert.Len(t, doc.QuerySelectorAll(".carousel-item"), 1)

	data, err := os.ReadFile(filepath.Join(out, "projects-data.json"))
	require.NoError(t, err)
	written, err := models.ParseCatalog(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.html", "b.html"}, written.Keys())
}

func TestGenerateEmbeddedSiteScripts(t *testing.T) {
	site := web.Site()
	cat, err := catalog.LoadFS(site, "projects-data.json")
	require.NoError(t, err)

	out := t.TempDir()
	_, err = generateSite(context.Background(), site, cat, out, handlers.DefaultRenderOptions(config.Default()), zap.NewNop())
	require.NoError(t, err)

	for _, script := range []string{"js/filters.js", "js/carousel.js"} {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(script)))
		assert.NoError(t, err, script)
	}

	data, err := os.ReadFile(filepath.Join(out, "projects.html"))
	require.NoError(t, err)
	doc, err := dom.ParseString(string(data))
	require.NoError(t, err)
	assert.NotNil(t, doc.QuerySelector(`script[src="js/filters.js"]`))
	assert.Equal(t, "substring", doc.QuerySelector(".project-filters").GetAttribute("data-filter-mode"))
	assert.Len(t, doc.QuerySelectorAll(".project-grid-card"), cat.Len())

	key := cat.Keys()[0]
	data, err = os.ReadFile(filepath.Join(out, key))
	require.NoError(t, err)
	doc, err = dom.ParseString(string(data))
	require.NoError(t, err)
	assert.NotNil(t, doc.QuerySelector(`script[src="js/carousel.js"]`))
	strip := doc.QuerySelector(".project-carousel")
	require.NotNil(t, strip)
	assert.Equal(t, "0", strip.GetAttribute("data-index"))
	assert.Equal(t, "3", strip.GetAttribute("data-items-per-view"))
	assert.Equal(t, "768", strip.GetAttribute("data-breakpoint"))
}
