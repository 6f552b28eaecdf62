package catalog

import (
	"strings"

	"akellar.dev/internal/models"
)

// listingPages are the final path segments that show project cards
var listingPages = map[string]bool{
	"":              true,
	"index.html":    true,
	"projects.html": true,
}

// Page describes which populators apply to a request path
type Page struct {
	Name    string // final path segment
	Detail  bool   // Name is a catalog key
	Listing bool   // home or projects listing
}

// PageName returns the final segment of a URL path
func PageName(urlPath string) string {
	if i := strings.LastIndex(urlPath, "/"); i >= 0 {
		return urlPath[i+1:]
	}
	return urlPath
}

// ResolvePage inspects the final path segment of urlPath.
// The detail and listing checks are independent of each other.
func ResolvePage(urlPath string, cat *models.Catalog) Page {
	name := PageName(urlPath)
	return Page{
		Name:    name,
		Detail:  cat.Has(name),
		Listing: listingPages[name],
	}
}
