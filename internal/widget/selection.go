package widget

import (
	"context"

	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	"github.com/alexisbeaulieu97/imagepick/internal/snapshot"
)

// initHighlight marks the element addressed by the snapshot's selection.
// Nothing is highlighted when the pointer is absent or names no element.
func (w *Widget) initHighlight(selection *snapshot.Pointer) {
	if selection == nil {
		return
	}
	if el, ok := w.index[*selection]; ok {
		el.setHighlight(true)
	}
}

// Click handles a user click on the element at p. The disabled flag is read
// at click time. When the click is accepted the highlight moves to the
// element and the pointer is reported to the host, even if the element was
// already highlighted. It returns whether the click was accepted.
func (w *Widget) Click(ctx context.Context, p snapshot.Pointer) bool {
	if w.disabled {
		w.publish(ctx, ports.EventClickIgnored, map[string]interface{}{
			"reason": "disabled", "row": p.Row, "column": p.Image,
		})
		return false
	}

	el, ok := w.index[p]
	if !ok {
		w.logger.Debug(ctx, "click on unknown image", "row", p.Row, "column", p.Image)
		w.publish(ctx, ports.EventClickIgnored, map[string]interface{}{
			"reason": "unknown", "row": p.Row, "column": p.Image,
		})
		return false
	}

	w.clearHighlight()
	el.setHighlight(true)

	w.publish(ctx, ports.EventSelectionChanged, map[string]interface{}{
		"row": p.Row, "column": p.Image, "src": el.Src,
	})

	if err := w.reporter.Report(ctx, p); err != nil {
		w.logger.Warn(ctx, "selection not delivered", "row", p.Row, "column", p.Image, "error", err)
	}
	return true
}

// clearHighlight removes the highlight from every node in the grid.
func (w *Widget) clearHighlight() {
	for _, node := range w.container.Query(ClassSelected) {
		node.RemoveClass(ClassSelected)
	}
}

func (w *Widget) highlightedPointer() interface{} {
	if el, ok := w.Highlighted(); ok {
		return el.Pointer
	}
	return nil
}
