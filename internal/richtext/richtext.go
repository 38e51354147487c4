// Package richtext turns the small HTML subset hosts use in labels, row
// labels and captions into styled terminal text.
package richtext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Span is a run of text sharing the same emphasis.
type Span struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
}

// Newline reports whether the span is a line break.
func (s Span) Newline() bool { return s.Text == "\n" }

type emphasis struct {
	bold, italic, underline, strike int
	skip                            int
}

func (e *emphasis) adjust(a atom.Atom, delta int) {
	switch a {
	case atom.B, atom.Strong:
		e.bold += delta
	case atom.I, atom.Em:
		e.italic += delta
	case atom.U, atom.Ins:
		e.underline += delta
	case atom.S, atom.Del, atom.Strike:
		e.strike += delta
	case atom.Script, atom.Style:
		e.skip += delta
	}
	if e.bold < 0 {
		e.bold = 0
	}
	if e.italic < 0 {
		e.italic = 0
	}
	if e.underline < 0 {
		e.underline = 0
	}
	if e.strike < 0 {
		e.strike = 0
	}
	if e.skip < 0 {
		e.skip = 0
	}
}

// Parse splits markup into spans. Unknown tags are dropped and their text
// kept; whitespace collapses as in HTML. Unclosed tags run to the end.
func Parse(markup string) []Span {
	var (
		spans []Span
		state emphasis
	)
	z := html.NewTokenizer(strings.NewReader(markup))

	newline := func() {
		n := len(spans)
		if n == 0 || spans[n-1].Newline() {
			return
		}
		spans[n-1].Text = strings.TrimRight(spans[n-1].Text, " ")
		spans = append(spans, Span{Text: "\n"})
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return trimSpans(spans)
		case html.TextToken:
			if state.skip > 0 {
				continue
			}
			text := collapse(string(z.Text()))
			if text == "" {
				continue
			}
			if len(spans) == 0 || spans[len(spans)-1].Newline() || strings.HasSuffix(spans[len(spans)-1].Text, " ") {
				text = strings.TrimLeft(text, " ")
				if text == "" {
					continue
				}
			}
			spans = appendSpan(spans, Span{
				Text:      text,
				Bold:      state.bold > 0,
				Italic:    state.italic > 0,
				Underline: state.underline > 0,
				Strike:    state.strike > 0,
			})
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == atom.Br {
				spans = append(spans, Span{Text: "\n"})
				continue
			}
			if tt == html.StartTagToken {
				state.adjust(a, 1)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			switch a {
			case atom.P, atom.Div, atom.Li:
				newline()
			default:
				state.adjust(a, -1)
			}
		}
	}
}

// appendSpan merges s into the previous span when their emphasis matches.
func appendSpan(spans []Span, s Span) []Span {
	if n := len(spans); n > 0 {
		last := spans[n-1]
		if !last.Newline() && last.Bold == s.Bold && last.Italic == s.Italic &&
			last.Underline == s.Underline && last.Strike == s.Strike {
			spans[n-1].Text += s.Text
			return spans
		}
	}
	return append(spans, s)
}

func trimSpans(spans []Span) []Span {
	for len(spans) > 0 && spans[len(spans)-1].Newline() {
		spans = spans[:len(spans)-1]
	}
	if n := len(spans); n > 0 {
		spans[n-1].Text = strings.TrimRight(spans[n-1].Text, " ")
		if spans[n-1].Text == "" {
			spans = spans[:n-1]
		}
	}
	return spans
}

// collapse replaces every whitespace run with a single space.
func collapse(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !space {
				b.WriteByte(' ')
			}
			space = true
		default:
			b.WriteRune(r)
			space = false
		}
	}
	return b.String()
}

// Plain returns the markup's text without any emphasis.
func Plain(markup string) string {
	var b strings.Builder
	for _, span := range Parse(markup) {
		b.WriteString(span.Text)
	}
	return b.String()
}

// Render draws markup with base, layering each span's emphasis on top.
func Render(markup string, base lipgloss.Style) string {
	var b strings.Builder
	for _, span := range Parse(markup) {
		if span.Newline() {
			b.WriteByte('\n')
			continue
		}
		style := base
		if span.Bold {
			style = style.Bold(true)
		}
		if span.Italic {
			style = style.Italic(true)
		}
		if span.Underline {
			style = style.Underline(true)
		}
		if span.Strike {
			style = style.Strikethrough(true)
		}
		b.WriteString(style.Render(span.Text))
	}
	return b.String()
}
