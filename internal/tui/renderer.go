package tui

import (
	"context"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	"github.com/alexisbeaulieu97/imagepick/internal/richtext"
	"github.com/alexisbeaulieu97/imagepick/internal/snapshot"
	"github.com/alexisbeaulieu97/imagepick/internal/widget"
)

// Options controls the grid geometry.
type Options struct {
	CellWidth       int
	RowLabelWidth   int
	MaxCaptionLines int
}

// DefaultOptions returns the geometry used without a settings file.
func DefaultOptions() Options {
	return Options{CellWidth: 18, RowLabelWidth: 12, MaxCaptionLines: 2}
}

// Renderer draws a widget's visual tree as terminal text.
type Renderer struct {
	opts   Options
	logger ports.Logger

	css    string
	loaded bool
	sheet  *Stylesheet
}

func NewRenderer(opts Options, logger ports.Logger) *Renderer {
	defaults := DefaultOptions()
	if opts.CellWidth < 6 {
		opts.CellWidth = defaults.CellWidth
	}
	if opts.RowLabelWidth < 0 {
		opts.RowLabelWidth = 0
	}
	if opts.MaxCaptionLines < 1 {
		opts.MaxCaptionLines = defaults.MaxCaptionLines
	}
	logger = logging.OrNoOp(logger)
	return &Renderer{opts: opts, logger: logger.With("component", "renderer")}
}

// Measure returns the height Render would produce for w.
func (r *Renderer) Measure(w *widget.Widget) int {
	_, layout := r.Render(w, nil)
	return layout.Height
}

// Render draws w and reports where each image landed. focus marks the
// keyboard cursor and may be nil.
func (r *Renderer) Render(w *widget.Widget, focus *snapshot.Pointer) (string, Layout) {
	r.loadStylesheet(w)

	disabled := w.Container().HasClass(widget.ClassDisabled)
	pal := paletteFor(w.Dark())

	var (
		blocks []string
		layout Layout
		y      int
	)

	if label := w.Label(); label.Text != "" {
		block := labelStyle.Render(richtext.Render(label.Text, r.labelSpanStyle(w, pal, disabled)))
		blocks = append(blocks, block)
		y += lipgloss.Height(block)
		layout.Width = lipgloss.Width(block)
	}

	items := make(map[*widget.Node]*widget.Element, len(w.Elements()))
	for _, el := range w.Elements() {
		items[el.Item] = el
	}

	reserveLabel := len(w.Container().Query(widget.ClassRowLabel)) > 0 && r.opts.RowLabelWidth > 0

	for _, row := range w.Container().Children {
		var (
			parts    []string
			pointers []snapshot.Pointer
			regions  []Region
			x        int
		)

		if reserveLabel {
			cell := r.renderRowLabel(row, pal, disabled)
			parts = append(parts, cell)
			x += lipgloss.Width(cell)
		}

		for _, child := range row.Children {
			el, ok := items[child]
			if !ok {
				continue
			}
			focused := focus != nil && *focus == el.Pointer
			cell := r.renderCell(el, focused, disabled)
			if len(pointers) > 0 {
				parts = append(parts, " ")
				x++
			}
			width := lipgloss.Width(cell)
			regions = append(regions, Region{
				Rect:    Rect{X: x, Y: y, W: width, H: lipgloss.Height(cell)},
				Pointer: el.Pointer,
			})
			parts = append(parts, cell)
			pointers = append(pointers, el.Pointer)
			x += width
		}

		layout.Rows = append(layout.Rows, pointers)
		if len(pointers) == 0 && !hasRowLabel(row) {
			continue
		}

		block := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		blocks = append(blocks, block)
		layout.Regions = append(layout.Regions, regions...)
		y += lipgloss.Height(block)
		if width := lipgloss.Width(block); width > layout.Width {
			layout.Width = width
		}
	}

	layout.Height = y
	return lipgloss.JoinVertical(lipgloss.Left, blocks...), layout
}

func (r *Renderer) loadStylesheet(w *widget.Widget) {
	text, ok := w.Style()
	if !ok || r.loaded && text == r.css {
		return
	}
	r.css, r.loaded = text, true
	sheet, err := ParseStylesheet(text)
	if err != nil {
		r.logger.Warn(context.Background(), "custom stylesheet ignored", "error", err)
		r.sheet = nil
		return
	}
	r.sheet = sheet
}

func (r *Renderer) labelSpanStyle(w *widget.Widget, pal palette, disabled bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(pal.text)
	font, color := w.LabelStyle()
	if c, ok := themeColor(color); ok {
		style = style.Foreground(c)
	}
	font = strings.ToLower(font)
	if strings.Contains(font, "bold") {
		style = style.Bold(true)
	}
	if strings.Contains(font, "italic") {
		style = style.Italic(true)
	}
	style = r.sheet.Apply(style, string(widget.KindLabel), w.Label().Classes())
	return style.Faint(disabled)
}

func hasRowLabel(row *widget.Node) bool {
	return len(row.Children) > 0 && row.Children[0].Kind == widget.KindRowLabel
}

func (r *Renderer) renderRowLabel(row *widget.Node, pal palette, disabled bool) string {
	text := ""
	span := lipgloss.NewStyle().Foreground(pal.muted)
	if hasRowLabel(row) {
		node := row.Children[0]
		span = r.sheet.Apply(span, string(node.Kind), node.Classes()).Faint(disabled)
		text = richtext.Render(node.Text, span)
	}
	return rowLabelStyle.Width(r.opts.RowLabelWidth).Render(text)
}

func (r *Renderer) renderCell(el *widget.Element, focused, disabled bool) string {
	pal := paletteFor(el.Box.HasClass(widget.ClassDark))
	inner := r.opts.CellWidth - 4

	style := boxStyle.
		Width(r.opts.CellWidth - 2).
		Foreground(pal.text).
		BorderForeground(pal.border)
	if pal.background != "" {
		style = style.Background(pal.background)
	}
	if focused {
		style = style.BorderForeground(pal.focus).Underline(true)
	}
	if el.Highlighted() {
		style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(pal.accent).Bold(true)
	}
	style = r.sheet.Apply(style, string(el.Item.Kind), el.Item.Classes())
	style = r.sheet.Apply(style, string(el.Box.Kind), el.Box.Classes())
	style = r.sheet.Apply(style, string(el.Image.Kind), el.Image.Classes())
	style = style.Faint(disabled)

	box := style.Render(runewidth.Truncate(displayName(el.Src), inner, "…"))
	if el.Caption == nil {
		return box
	}

	captionPal := paletteFor(el.Caption.HasClass(widget.ClassDark))
	span := lipgloss.NewStyle().Foreground(captionPal.muted)
	span = r.sheet.Apply(span, string(el.Caption.Kind), el.Caption.Classes()).Faint(disabled)
	caption := captionStyle.Width(r.opts.CellWidth).Render(richtext.Render(el.Caption.Text, span))
	caption = clampLines(caption, r.opts.MaxCaptionLines)

	return lipgloss.JoinVertical(lipgloss.Center, box, caption)
}

// displayName shortens an image source to something that fits a cell.
func displayName(src string) string {
	if strings.HasPrefix(src, "data:") {
		return "inline image"
	}
	trimmed := src
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	base := path.Base(trimmed)
	if base == "." || base == "/" || base == "" {
		return src
	}
	return base
}

func clampLines(s string, max int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max], "\n")
}
