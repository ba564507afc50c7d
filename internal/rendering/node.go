package rendering

import (
	"sort"
	"strings"
)

// Node is one element of a rendered resume. Tag names follow HTML so the
// tree serializes directly; the terminal preview reads classes and the
// data-section attribute instead.
type Node struct {
	Tag      string
	Class    string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// El builds an element. Nil children are skipped so optional parts can be
// passed inline.
func El(tag, class string, children ...*Node) *Node {
	n := &Node{Tag: tag, Class: class}
	n.Append(children...)
	return n
}

// Text builds an element holding only text.
func Text(tag, class, text string) *Node {
	return &Node{Tag: tag, Class: class, Text: text}
}

// Append adds the non-nil children.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Set sets an attribute.
func (n *Node) Set(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Style appends one CSS declaration to the style attribute.
func (n *Node) Style(property, value string) *Node {
	decl := property + ": " + value + ";"
	if prev := n.Attr("style"); prev != "" {
		decl = prev + " " + decl
	}
	return n.Set("style", decl)
}

// Attr returns an attribute value, or "".
func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}

// AttrKeys returns the attribute names in sorted order.
func (n *Node) AttrKeys() []string {
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasClass reports whether class is one of n's classes.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns every node in the tree for which match is true.
func (n *Node) Find(match func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if match(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Sections returns the section names present in the tree, in order.
func (n *Node) Sections() []string {
	var out []string
	n.Walk(func(c *Node) bool {
		if s := c.Attr("data-section"); s != "" {
			out = append(out, s)
		}
		return true
	})
	return out
}

// TextContent joins every text in the subtree with single spaces.
func (n *Node) TextContent() string {
	var parts []string
	n.Walk(func(c *Node) bool {
		if t := strings.TrimSpace(c.Text); t != "" {
			parts = append(parts, t)
		}
		return true
	})
	return strings.Join(parts, " ")
}
