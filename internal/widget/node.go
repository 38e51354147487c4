package widget

import "sort"

// Kind identifies the role of a node in the visual tree.
type Kind string

const (
	KindLabel     Kind = "label"
	KindContainer Kind = "container"
	KindRow       Kind = "image-row"
	KindRowLabel  Kind = "row-label"
	KindItem      Kind = "item"
	KindImageBox  Kind = "image-box"
	KindImage     Kind = "image"
	KindCaption   Kind = "caption"
)

// Class names carried by nodes. Host stylesheets select on these.
const (
	ClassContainer = "container"
	ClassRow       = "image-row"
	ClassRowLabel  = "row-label"
	ClassItem      = "item"
	ClassImageBox  = "image-box"
	ClassImage     = "image"
	ClassCaption   = "caption"
	ClassDark      = "dark"
	ClassSelected  = "selected"
	ClassDisabled  = "disabled"
)

// Inline style keys set on the label by the theme.
const (
	StyleFont  = "font"
	StyleColor = "color"
)

// Node is one element of the widget's retained visual tree.
type Node struct {
	Kind Kind
	// Text holds rich text for labels, row labels and captions.
	Text string
	// Src and Tooltip are set on image nodes.
	Src     string
	Tooltip string

	Style    map[string]string
	Children []*Node

	classes map[string]struct{}
}

// NewNode creates a node of the given kind carrying the listed classes.
func NewNode(kind Kind, classes ...string) *Node {
	n := &Node{Kind: kind, Style: map[string]string{}, classes: map[string]struct{}{}}
	for _, c := range classes {
		n.classes[c] = struct{}{}
	}
	return n
}

// Append adds child as the last child and returns it.
func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// Clear drops every child.
func (n *Node) Clear() {
	n.Children = nil
}

func (n *Node) AddClass(class string) {
	n.classes[class] = struct{}{}
}

func (n *Node) RemoveClass(class string) {
	delete(n.classes, class)
}

// Toggle adds class when on is true and removes it otherwise.
func (n *Node) Toggle(class string, on bool) {
	if on {
		n.AddClass(class)
		return
	}
	n.RemoveClass(class)
}

func (n *Node) HasClass(class string) bool {
	_, ok := n.classes[class]
	return ok
}

// Classes returns the node's classes in sorted order.
func (n *Node) Classes() []string {
	out := make([]string, 0, len(n.classes))
	for c := range n.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Walk visits n and its descendants depth-first in document order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Query returns every node under n (n included) carrying any of the classes.
func (n *Node) Query(classes ...string) []*Node {
	var out []*Node
	n.Walk(func(node *Node) bool {
		for _, c := range classes {
			if node.HasClass(c) {
				out = append(out, node)
				break
			}
		}
		return true
	})
	return out
}
