// Package dom is a small view-update layer over an HTML node tree.
//
// It exposes the handful of operations the page populators need (query by
// selector, set text, set attributes and styles, create and append
// elements) so that population logic can run against parsed page
// skeletons instead of a live browser document.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page
type Document struct {
	root *html.Node
}

// Parse reads a full HTML document
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document held in s
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the document as HTML
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the rendered document
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Title returns the text of the <title> element
func (d *Document) Title() string {
	if el := d.QuerySelector("title"); el != nil {
		return el.Text()
	}
	return ""
}

// SetTitle replaces the document title, creating <title> when missing
func (d *Document) SetTitle(title string) {
	if el := d.QuerySelector("title"); el != nil {
		el.SetText(title)
		return
	}
	head := d.QuerySelector("head")
	if head == nil {
		return
	}
	el := d.CreateElement("title")
	el.SetText(title)
	head.AppendChild(el)
}

// CreateElement returns a new detached element
func (d *Document) CreateElement(tag string) *Element {
	return &Element{node: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

// QuerySelector returns the first element matching sel, or nil
func (d *Document) QuerySelector(sel string) *Element {
	return querySelector(d.root, sel)
}

// QuerySelectorAll returns every element matching sel in document order
func (d *Document) QuerySelectorAll(sel string) []*Element {
	return querySelectorAll(d.root, sel)
}

// GetElementByID returns the element with the given id, or nil
func (d *Document) GetElementByID(id string) *Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return &Element{node: found}
}

var selectorCache sync.Map // string -> cascadia.Selector

// compile returns the compiled selector, or nil when sel is invalid
func compile(sel string) cascadia.Selector {
	if cached, ok := selectorCache.Load(sel); ok {
		return cached.(cascadia.Selector)
	}
	compiled, err := cascadia.Compile(sel)
	if err != nil {
		return nil
	}
	selectorCache.Store(sel, compiled)
	return compiled
}

func querySelector(n *html.Node, sel string) *Element {
	compiled := compile(sel)
	if compiled == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match := compiled.MatchFirst(c); match != nil {
			return &Element{node: match}
		}
	}
	return nil
}

func querySelectorAll(n *html.Node, sel string) []*Element {
	compiled := compile(sel)
	if compiled == nil {
		return nil
	}
	var elements []*Element
	for _, m := range compiled.MatchAll(n) {
		if m != n {
			elements = append(elements, &Element{node: m})
		}
	}
	return elements
}

// walk visits n and its descendants depth-first until fn returns false
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
