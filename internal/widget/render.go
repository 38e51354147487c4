package widget

import (
	"context"

	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	"github.com/alexisbeaulieu97/imagepick/internal/snapshot"
)

// Render replaces the widget's state with snap: theme and style block are
// applied, the grid is torn down and rebuilt, the initial highlight is set
// from the snapshot's selection and the host is asked to refresh the frame
// height.
func (w *Widget) Render(ctx context.Context, snap snapshot.Snapshot) {
	w.cycle++
	w.current = snap

	w.applyTheme(snap.Theme)
	w.injectStyle(snap.CustomCSS)
	w.label.Text = snap.Label

	w.rebuild(snap)
	w.SetDisabled(snap.Disabled)
	w.initHighlight(snap.Selection)

	w.publish(ctx, ports.EventSnapshotRendered, map[string]interface{}{
		"cycle":       w.cycle,
		"rows":        len(snap.Rows),
		"elements":    len(w.elements),
		"highlighted": w.highlightedPointer(),
		"disabled":    snap.Disabled,
	})

	_ = w.reporter.RefreshHeight(ctx)
}

func (w *Widget) rebuild(snap snapshot.Snapshot) {
	w.container.Clear()
	w.elements = make([]*Element, 0, snap.ImageCount())
	w.index = make(map[snapshot.Pointer]*Element, snap.ImageCount())

	for _, row := range snap.Rows {
		rowNode := w.container.Append(NewNode(KindRow, ClassRow))
		if row.VerticalLabel != "" {
			label := rowNode.Append(NewNode(KindRowLabel, ClassRowLabel))
			label.Text = row.VerticalLabel
		}
		for _, img := range row.Images {
			el := w.buildItem(rowNode, row.Index, img)
			w.elements = append(w.elements, el)
			w.index[el.Pointer] = el
		}
	}
}

func (w *Widget) buildItem(rowNode *Node, rowIndex int, img snapshot.Image) *Element {
	item := rowNode.Append(NewNode(KindItem, ClassItem))

	box := item.Append(NewNode(KindImageBox, ClassImageBox))
	box.Toggle(ClassDark, w.dark)

	image := box.Append(NewNode(KindImage, ClassImage))
	image.Src = img.Src
	image.Tooltip = img.Tooltip

	el := &Element{
		Pointer: snapshot.Pointer{Row: rowIndex, Image: img.Column},
		Src:     img.Src,
		Tooltip: img.Tooltip,
		Item:    item,
		Box:     box,
		Image:   image,
	}

	if img.Caption != "" {
		caption := item.Append(NewNode(KindCaption, ClassCaption))
		caption.Text = img.Caption
		caption.Toggle(ClassDark, w.dark)
		el.Caption = caption
	}
	return el
}
