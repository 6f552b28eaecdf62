package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Project represents a portfolio project as stored in the catalog
type Project struct {
	Title          string   `json:"title" yaml:"title"`
	Subtitle       string   `json:"subtitle" yaml:"subtitle"`
	Category       string   `json:"category" yaml:"category"`
	Categories     []string `json:"categories" yaml:"categories"`
	Timeline       string   `json:"timeline" yaml:"timeline"`
	Tools          string   `json:"tools" yaml:"tools"`
	Role           string   `json:"role" yaml:"role"`
	HeroImage      string   `json:"heroImage" yaml:"heroImage"`
	ThumbnailImage string   `json:"thumbnailImage" yaml:"thumbnailImage"`
	ShortBlurb     string   `json:"shortBlurb" yaml:"shortBlurb"`
	Body           string   `json:"body,omitempty" yaml:"body"`
}

// CategoryAttr returns the space-joined tag list used for data-categories
func (p Project) CategoryAttr() string {
	return strings.Join(p.Categories, " ")
}

// Entry pairs a catalog key with its project
type Entry struct {
	Key     string  `json:"key"`
	Project Project `json:"project"`
}

// Catalog is the read-only mapping from page filename to project.
// Iteration follows the order the entries were loaded in.
type Catalog struct {
	projects *orderedmap.OrderedMap[string, Project]
}

// NewCatalog builds a catalog from entries, keeping their order.
// Later duplicates replace earlier values but keep the first position.
func NewCatalog(entries []Entry) *Catalog {
	om := orderedmap.New[string, Project]()
	for _, e := range entries {
		om.Set(e.Key, e.Project)
	}
	return &Catalog{projects: om}
}

// ParseCatalog decodes a JSON object of the form { filename: project }
func ParseCatalog(data []byte) (*Catalog, error) {
	om := orderedmap.New[string, Project]()
	if err := om.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &Catalog{projects: om}, nil
}

// MarshalJSON encodes the catalog in its original key order
func (c *Catalog) MarshalJSON() ([]byte, error) {
	if c == nil || c.projects == nil {
		return []byte("{}"), nil
	}
	return c.projects.MarshalJSON()
}

// Len returns the number of projects
func (c *Catalog) Len() int {
	if c == nil || c.projects == nil {
		return 0
	}
	return c.projects.Len()
}

// Get returns the project stored under key
func (c *Catalog) Get(key string) (Project, bool) {
	if c == nil || c.projects == nil {
		return Project{}, false
	}
	return c.projects.Get(key)
}

// Has reports whether key is a catalog entry
func (c *Catalog) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Keys returns all keys in catalog order
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, c.Len())
	for _, e := range c.Entries() {
		keys = append(keys, e.Key)
	}
	return keys
}

// Entries returns a copy of all entries in catalog order
func (c *Catalog) Entries() []Entry {
	if c == nil || c.projects == nil {
		return nil
	}
	entries := make([]Entry, 0, c.projects.Len())
	for pair := c.projects.Oldest(); pair != nil; pair = pair.Next() {
		p := pair.Value
		p.Categories = append([]string(nil), p.Categories...)
		entries = append(entries, Entry{Key: pair.Key, Project: p})
	}
	return entries
}

// Others returns every entry except the one stored under current
func (c *Catalog) Others(current string) []Entry {
	all := c.Entries()
	others := all[:0]
	for _, e := range all {
		if e.Key != current {
			others = append(others, e)
		}
	}
	return others
}

// Tags returns the distinct category tags across the catalog, sorted
func (c *Catalog) Tags() []string {
	seen := make(map[string]struct{})
	for _, e := range c.Entries() {
		for _, tag := range e.Project.Categories {
			if tag != "" {
				seen[tag] = struct{}{}
			}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ProjectList is the JSON API listing shape
type ProjectList struct {
	Projects []Entry `json:"projects"`
}

// compile-time check that the catalog encodes through encoding/json
var _ json.Marshaler = (*Catalog)(nil)
