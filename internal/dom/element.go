package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Element wraps a single element node
type Element struct {
	node *html.Node
}

// Tag returns the lower-case tag name
func (e *Element) Tag() string {
	return e.node.Data
}

// Text returns the concatenated text content of the element
func (e *Element) Text() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

// SetText replaces all children with a single text node
func (e *Element) SetText(text string) {
	e.Clear()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Attr returns the named attribute and whether it is present
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// GetAttribute returns the named attribute or ""
func (e *Element) GetAttribute(name string) string {
	val, _ := e.Attr(name)
	return val
}

// SetAttr sets or replaces an attribute
func (e *Element) SetAttr(name, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes an attribute if present
func (e *Element) RemoveAttr(name string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	e.node.Attr = attrs
}

// Classes returns the element's class list
func (e *Element) Classes() []string {
	return strings.Fields(e.GetAttribute("class"))
}

// HasClass reports whether the class list contains class
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends class unless already present
func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}
	e.SetAttr("class", strings.TrimSpace(e.GetAttribute("class")+" "+class))
}

// RemoveClass drops class from the class list
func (e *Element) RemoveClass(class string) {
	if _, ok := e.Attr("class"); !ok {
		return
	}
	var kept []string
	for _, c := range e.Classes() {
		if c != class {
			kept = append(kept, c)
		}
	}
	e.SetAttr("class", strings.Join(kept, " "))
}

// Style returns the value of an inline style property
func (e *Element) Style(prop string) string {
	for _, decl := range parseStyle(e.GetAttribute("style")) {
		if decl[0] == prop {
			return decl[1]
		}
	}
	return ""
}

// SetStyle sets an inline style property, keeping other declarations
func (e *Element) SetStyle(prop, value string) {
	decls := parseStyle(e.GetAttribute("style"))
	replaced := false
	for i := range decls {
		if decls[i][0] == prop {
			decls[i][1] = value
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, [2]string{prop, value})
	}

	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d[0] + ": " + d[1]
	}
	e.SetAttr("style", strings.Join(parts, "; "))
}

func parseStyle(style string) [][2]string {
	var decls [][2]string
	for _, part := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		decls = append(decls, [2]string{name, strings.TrimSpace(value)})
	}
	return decls
}

// AppendChild moves child to the end of e's children
func (e *Element) AppendChild(child *Element) {
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
}

// Clear removes all children
func (e *Element) Clear() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

// SetInnerHTML replaces the children with the parsed fragment
func (e *Element) SetInnerHTML(fragment string) error {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), e.node)
	if err != nil {
		return err
	}
	e.Clear()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// Children returns the element children in order
func (e *Element) Children() []*Element {
	var children []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, &Element{node: c})
		}
	}
	return children
}

// QuerySelector returns the first descendant matching sel, or nil
func (e *Element) QuerySelector(sel string) *Element {
	return querySelector(e.node, sel)
}

// QuerySelectorAll returns all descendants matching sel
func (e *Element) QuerySelectorAll(sel string) []*Element {
	return querySelectorAll(e.node, sel)
}

// OuterHTML renders the element and its subtree
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return ""
	}
	return buf.String()
}
