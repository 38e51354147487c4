package richtext

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
		want   []Span
	}{
		{name: "plain", markup: "Pick one", want: []Span{{Text: "Pick one"}}},
		{name: "empty", markup: "", want: nil},
		{
			name:   "emphasis",
			markup: "<b>Bold</b> and <em>it</em>",
			want: []Span{
				{Text: "Bold", Bold: true},
				{Text: " and "},
				{Text: "it", Italic: true},
			},
		},
		{
			name:   "nested",
			markup: "<strong><i>both</i></strong>",
			want:   []Span{{Text: "both", Bold: true, Italic: true}},
		},
		{
			name:   "underline and strike",
			markup: "<u>u</u><del>d</del>",
			want:   []Span{{Text: "u", Underline: true}, {Text: "d", Strike: true}},
		},
		{
			name:   "line break",
			markup: "top<br/>bottom",
			want:   []Span{{Text: "top"}, {Text: "\n"}, {Text: "bottom"}},
		},
		{
			name:   "paragraphs",
			markup: "<p>one</p><p>two</p>",
			want:   []Span{{Text: "one"}, {Text: "\n"}, {Text: "two"}},
		},
		{name: "entities", markup: "a &amp; b", want: []Span{{Text: "a & b"}}},
		{name: "whitespace collapses", markup: "  a \n\t b  ", want: []Span{{Text: "a b"}}},
		{name: "unknown tags keep text", markup: `<span class="x">in</span>`, want: []Span{{Text: "in"}}},
		{name: "script dropped", markup: "<script>alert(1)</script>ok", want: []Span{{Text: "ok"}}},
		{name: "unclosed tag", markup: "<b>open", want: []Span{{Text: "open", Bold: true}}},
		{name: "stray close", markup: "</b>text", want: []Span{{Text: "text"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Parse(tt.markup))
		})
	}
}

func TestPlain(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Row 1\nfruits", Plain("<b>Row 1</b><br>fruits"))
	require.Equal(t, "x < y", Plain("x &lt; y"))
}

func TestRenderKeepsText(t *testing.T) {
	t.Parallel()

	out := Render("<b>Cats</b> &amp; dogs", lipgloss.NewStyle())
	require.Contains(t, out, "Cats")
	require.Contains(t, out, "& dogs")
	require.Equal(t, "Cats & dogs", Plain("<b>Cats</b> &amp; dogs"))
}
