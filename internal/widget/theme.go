package widget

import "github.com/alexisbeaulieu97/imagepick/internal/snapshot"

// applyTheme sets the label font and color and switches the dark marker on
// every image box and caption. The mode is remembered so the boxes built by
// the next rebuild get it as well. A nil theme keeps the previous styling.
func (w *Widget) applyTheme(theme *snapshot.Theme) {
	if theme == nil {
		return
	}

	w.label.Style[StyleFont] = theme.Font
	w.label.Style[StyleColor] = theme.TextColor

	w.dark = theme.Dark()
	for _, node := range w.container.Query(ClassImageBox, ClassCaption) {
		node.Toggle(ClassDark, w.dark)
	}
}
