package widget

// StyleBlockID names the single host style block.
const StyleBlockID = "imagepick-custom-css"

// StyleBlock is the host-supplied stylesheet installed on the widget.
type StyleBlock struct {
	ID      string
	Content string
}

// injectStyle installs css as the widget's only style block, overwriting a
// previous one. A nil css leaves the existing block in place.
func (w *Widget) injectStyle(css *string) {
	if css == nil {
		return
	}
	if w.style == nil {
		w.style = &StyleBlock{ID: StyleBlockID}
	}
	w.style.Content = *css
}

// Style returns the installed stylesheet text, if any.
func (w *Widget) Style() (string, bool) {
	if w.style == nil {
		return "", false
	}
	return w.style.Content, true
}
