// Package widget holds the image picker's render and selection core. A
// Widget owns the visual tree for exactly one embedding; every host snapshot
// rebuilds that tree from scratch and every click is reconciled against it.
//
// A Widget is not safe for concurrent use. The caller drives it from a
// single event loop.
package widget

import (
	"context"

	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	"github.com/alexisbeaulieu97/imagepick/internal/snapshot"
)

// Options wires a Widget to its collaborators. Host is required; the rest
// may be nil.
type Options struct {
	Host      ports.HostChannel
	Logger    ports.Logger
	Publisher ports.EventPublisher
	// Height measures the content height reported to the host. Defaults to
	// a line estimate derived from the visual tree.
	Height func() int
}

// Element is the rendered artifact for one valid image.
type Element struct {
	Pointer snapshot.Pointer
	Src     string
	Tooltip string

	Item    *Node
	Box     *Node
	Image   *Node
	Caption *Node // nil without caption
}

// Highlighted reports whether the element carries the selection highlight.
func (e *Element) Highlighted() bool {
	return e.Box.HasClass(ClassSelected)
}

func (e *Element) setHighlight(on bool) {
	e.Box.Toggle(ClassSelected, on)
	e.Image.Toggle(ClassSelected, on)
}

// Widget is the image picker core.
type Widget struct {
	label     *Node
	container *Node
	style     *StyleBlock

	dark     bool
	disabled bool

	current  snapshot.Snapshot
	elements []*Element
	index    map[snapshot.Pointer]*Element
	cycle    int

	reporter  *Reporter
	logger    ports.Logger
	publisher ports.EventPublisher
}

// New creates a widget with an empty label and grid.
func New(opts Options) *Widget {
	logger := opts.Logger
	logger = logging.OrNoOp(logger)
	logger = logger.With("component", "widget")

	w := &Widget{
		label:     NewNode(KindLabel),
		container: NewNode(KindContainer, ClassContainer),
		index:     map[snapshot.Pointer]*Element{},
		logger:    logger,
		publisher: opts.Publisher,
	}
	height := opts.Height
	if height == nil {
		height = w.estimateHeight
	}
	w.reporter = NewReporter(opts.Host, height, logger)
	return w
}

// Start announces readiness to the host and reports the initial height.
// The host delivers no snapshot before this call.
func (w *Widget) Start(ctx context.Context) error {
	return w.reporter.Ready(ctx)
}

// SetHeightFunc replaces the height measurement used for frame-height reports.
func (w *Widget) SetHeightFunc(height func() int) {
	if height == nil {
		height = w.estimateHeight
	}
	w.reporter.height = height
}

// Label returns the label node.
func (w *Widget) Label() *Node { return w.label }

// Container returns the grid container node.
func (w *Widget) Container() *Node { return w.container }

// Snapshot returns the snapshot rendered by the current cycle.
func (w *Widget) Snapshot() snapshot.Snapshot { return w.current }

// Cycle returns how many snapshots have been rendered.
func (w *Widget) Cycle() int { return w.cycle }

// Elements returns the current cycle's rendered elements in document order.
func (w *Widget) Elements() []*Element {
	out := make([]*Element, len(w.elements))
	copy(out, w.elements)
	return out
}

// Element returns the element rendered for p in the current cycle.
func (w *Widget) Element(p snapshot.Pointer) (*Element, bool) {
	el, ok := w.index[p]
	return el, ok
}

// Highlighted returns the element carrying the highlight, if any.
func (w *Widget) Highlighted() (*Element, bool) {
	for _, el := range w.elements {
		if el.Highlighted() {
			return el, true
		}
	}
	return nil, false
}

// Disabled reports the disabled flag clicks are checked against.
func (w *Widget) Disabled() bool { return w.disabled }

// SetDisabled changes the disabled flag without a new snapshot. The next
// snapshot overrides it again.
func (w *Widget) SetDisabled(disabled bool) {
	w.disabled = disabled
	w.container.Toggle(ClassDisabled, disabled)
}

// Dark reports whether the last applied theme was dark.
func (w *Widget) Dark() bool { return w.dark }

// LabelStyle returns the font and color the theme set on the label.
func (w *Widget) LabelStyle() (font, color string) {
	return w.label.Style[StyleFont], w.label.Style[StyleColor]
}

func (w *Widget) publish(ctx context.Context, eventType string, fields map[string]interface{}) {
	if w.publisher == nil {
		return
	}
	_ = w.publisher.Publish(ctx, ports.Event{Type: eventType, Fields: fields})
}

// estimateHeight counts lines: one per label, and per row a bordered box
// (three lines) plus one caption line when any image in the row has one.
func (w *Widget) estimateHeight() int {
	height := 0
	if w.label.Text != "" {
		height++
	}
	for _, row := range w.container.Children {
		rowHeight := 0
		for _, item := range row.Children {
			if item.Kind != KindItem {
				continue
			}
			h := 3
			for _, child := range item.Children {
				if child.Kind == KindCaption {
					h++
				}
			}
			if h > rowHeight {
				rowHeight = h
			}
		}
		if rowHeight == 0 && len(row.Children) > 0 {
			rowHeight = 1
		}
		height += rowHeight
	}
	return height
}
