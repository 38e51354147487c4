package widget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	"github.com/alexisbeaulieu97/imagepick/internal/snapshot"
)

type fakeHost struct {
	ready   int
	values  []interface{}
	heights []int
}

func (h *fakeHost) SetComponentReady(context.Context) error {
	h.ready++
	return nil
}

func (h *fakeHost) SetComponentValue(_ context.Context, value interface{}) error {
	h.values = append(h.values, value)
	return nil
}

func (h *fakeHost) SetFrameHeight(_ context.Context, height int) error {
	h.heights = append(h.heights, height)
	return nil
}

func newTestWidget(t *testing.T) (*Widget, *fakeHost) {
	t.Helper()
	host := &fakeHost{}
	return New(Options{Host: host}), host
}

func normalized(t *testing.T, payload string) snapshot.Snapshot {
	t.Helper()
	args, err := snapshot.ParseArgs([]byte(payload))
	require.NoError(t, err)
	return snapshot.NewValidator(nil, nil).Normalize(context.Background(), args)
}

func renderPayload(t *testing.T, w *Widget, payload string) {
	t.Helper()
	w.Render(context.Background(), normalized(t, payload))
}

func highlightedCount(w *Widget) int {
	count := 0
	for _, el := range w.Elements() {
		if el.Highlighted() {
			count++
		}
	}
	return count
}

const pickOne = `{
	"label": "Pick one",
	"images": [{"images": ["a.png", "b.png"], "captions": ["A", "B"]}],
	"index": {"rowIndex": 0, "index": 1},
	"disabled": false
}`

func TestScenarioInitialHighlightAndClick(t *testing.T) {
	w, host := newTestWidget(t)
	renderPayload(t, w, pickOne)

	require.Equal(t, "Pick one", w.Label().Text)
	el, ok := w.Highlighted()
	require.True(t, ok)
	require.Equal(t, "b.png", el.Src)
	require.Equal(t, snapshot.Pointer{Row: 0, Image: 1}, el.Pointer)
	require.Equal(t, 1, highlightedCount(w))

	require.True(t, w.Click(context.Background(), snapshot.Pointer{Row: 0, Image: 0}))

	require.Equal(t, []interface{}{snapshot.Pointer{Row: 0, Image: 0}}, host.values)
	el, ok = w.Highlighted()
	require.True(t, ok)
	require.Equal(t, "a.png", el.Src)
	require.Equal(t, 1, highlightedCount(w))
	require.Len(t, w.Container().Query(ClassSelected), 2, "box and image carry the marker")
}

func TestAtMostOneHighlightAfterInitialization(t *testing.T) {
	payloads := []string{
		pickOne,
		`{"images_rows": [{"images": ["a", "b"]}, {"images": ["c"]}], "index": {"rowIndex": 1, "index": 0}}`,
		`{"images": [{"images": ["a", 3, "c"]}], "index": {"rowIndex": 0, "index": 1}}`,
		`{"images": []}`,
		`{}`,
	}

	for _, payload := range payloads {
		w, _ := newTestWidget(t)
		renderPayload(t, w, payload)
		require.LessOrEqual(t, highlightedCount(w), 1, payload)
	}
}

func TestOutOfRangeSelectionHighlightsNothing(t *testing.T) {
	tests := []string{
		`{"images": [{"images": ["a", "b"]}], "index": {"rowIndex": 1, "index": 0}}`,
		`{"images": [{"images": ["a", "b"]}], "index": {"rowIndex": 0, "index": 2}}`,
	}
	for _, payload := range tests {
		w, _ := newTestWidget(t)
		renderPayload(t, w, payload)
		_, ok := w.Highlighted()
		require.False(t, ok)
		require.Empty(t, w.Container().Query(ClassSelected))
	}
}

func TestClickWhileDisabledIsNoOp(t *testing.T) {
	w, host := newTestWidget(t)
	renderPayload(t, w, `{"images": [{"images": ["a", "b"]}], "index": {"rowIndex": 0, "index": 1}, "disabled": true}`)
	heights := len(host.heights)

	require.True(t, w.Container().HasClass(ClassDisabled))
	require.False(t, w.Click(context.Background(), snapshot.Pointer{Row: 0, Image: 0}))

	require.Empty(t, host.values)
	require.Len(t, host.heights, heights)
	el, ok := w.Highlighted()
	require.True(t, ok)
	require.Equal(t, 1, el.Pointer.Image)
}

func TestClickReadsDisabledFlagAtClickTime(t *testing.T) {
	w, host := newTestWidget(t)
	renderPayload(t, w, pickOne)

	w.SetDisabled(true)
	require.False(t, w.Click(context.Background(), snapshot.Pointer{Row: 0, Image: 0}))
	require.Empty(t, host.values)

	w.SetDisabled(false)
	require.True(t, w.Click(context.Background(), snapshot.Pointer{Row: 0, Image: 0}))
	require.Len(t, host.values, 1)

	w.SetDisabled(true)
	renderPayload(t, w, pickOne)
	require.False(t, w.Disabled(), "the next snapshot replaces the flag")
}

func TestClickOnHighlightedElementReEmits(t *testing.T) {
	w, host := newTestWidget(t)
	renderPayload(t, w, pickOne)

	p := snapshot.Pointer{Row: 0, Image: 1}
	require.True(t, w.Click(context.Background(), p))
	require.True(t, w.Click(context.Background(), p))

	require.Equal(t, []interface{}{p, p}, host.values)
	require.Equal(t, 1, highlightedCount(w))
}

func TestClickOnUnknownPointerIsIgnored(t *testing.T) {
	w, host := newTestWidget(t)
	renderPayload(t, w, `{"images": [{"images": ["a", 5]}], "index": {"rowIndex": 0, "index": 0}}`)

	require.False(t, w.Click(context.Background(), snapshot.Pointer{Row: 0, Image: 1}))
	require.False(t, w.Click(context.Background(), snapshot.Pointer{Row: 3, Image: 0}))
	require.Empty(t, host.values)
	el, ok := w.Highlighted()
	require.True(t, ok)
	require.Equal(t, "a", el.Src)
}

func TestEmptyGridHasNoElements(t *testing.T) {
	w, host := newTestWidget(t)
	renderPayload(t, w, `{"label": "nothing"}`)

	require.Empty(t, w.Elements())
	require.Empty(t, w.Container().Children)
	require.False(t, w.Click(context.Background(), snapshot.Pointer{}))
	require.Empty(t, host.values)
}

func TestMalformedEntryKeepsCaptionAlignment(t *testing.T) {
	recorder := logging.NewRecorder(0)
	args, err := snapshot.ParseArgs([]byte(`{"images": [{"images": ["a.png", 42, "b.png"], "captions": ["A", "skip", "B"], "tooltip": ["tA", "-", "tB"]}]}`))
	require.NoError(t, err)
	snap := snapshot.NewValidator(recorder, nil).Normalize(context.Background(), args)

	w, _ := newTestWidget(t)
	w.Render(context.Background(), snap)

	elements := w.Elements()
	require.Len(t, elements, 2)
	require.Equal(t, "a.png", elements[0].Src)
	require.Equal(t, "A", elements[0].Caption.Text)
	require.Equal(t, "b.png", elements[1].Src)
	require.Equal(t, snapshot.Pointer{Row: 0, Image: 2}, elements[1].Pointer)
	require.Equal(t, "B", elements[1].Caption.Text)
	require.Equal(t, "tB", elements[1].Image.Tooltip)
	require.Len(t, recorder.EntriesAt(logging.LevelError), 1)
}

func TestRenderBuildsTreeInOrder(t *testing.T) {
	w, _ := newTestWidget(t)
	renderPayload(t, w, `{"images_rows": [
		{"images": ["a", "b"], "vertical_label": "<b>First</b>", "captions": ["", "B"]},
		{"images": ["c"]}
	]}`)

	rows := w.Container().Children
	require.Len(t, rows, 2)

	first := rows[0]
	require.Equal(t, KindRow, first.Kind)
	require.True(t, first.HasClass(ClassRow))
	require.Len(t, first.Children, 3)
	require.Equal(t, KindRowLabel, first.Children[0].Kind)
	require.Equal(t, "<b>First</b>", first.Children[0].Text)

	itemA := first.Children[1]
	require.Equal(t, KindItem, itemA.Kind)
	require.Len(t, itemA.Children, 1, "empty caption is not rendered")
	box := itemA.Children[0]
	require.Equal(t, KindImageBox, box.Kind)
	require.Equal(t, "a", box.Children[0].Src)

	itemB := first.Children[2]
	require.Len(t, itemB.Children, 2)
	require.Equal(t, KindCaption, itemB.Children[1].Kind)

	second := rows[1]
	require.Len(t, second.Children, 1)
	require.Equal(t, KindItem, second.Children[0].Kind)
}

func TestRenderingSameSnapshotTwiceIsIdempotent(t *testing.T) {
	payload := `{"label": "x", "images": [{"images": ["a", "b"], "captions": ["A"]}], "index": {"rowIndex": 0, "index": 0},
		"theme": {"base": "dark", "font": "serif", "textColor": "#ffffff"}, "custom_css": ".item{color:red}"}`
	w, _ := newTestWidget(t)

	type state struct {
		srcs      []string
		classes   [][]string
		highlight snapshot.Pointer
		style     string
		font      string
	}
	capture := func() state {
		var s state
		for _, el := range w.Elements() {
			s.srcs = append(s.srcs, el.Src)
			s.classes = append(s.classes, el.Box.Classes())
		}
		el, ok := w.Highlighted()
		require.True(t, ok)
		s.highlight = el.Pointer
		s.style, _ = w.Style()
		s.font, _ = w.LabelStyle()
		return s
	}

	renderPayload(t, w, payload)
	first := capture()
	firstBox := w.Elements()[0].Box
	renderPayload(t, w, payload)
	second := capture()

	require.Equal(t, first, second)
	require.NotSame(t, firstBox, w.Elements()[0].Box, "elements are recreated every cycle")
	require.Equal(t, 2, w.Cycle())
}

func TestCustomCSSIsInjectedVerbatimAndCarriedOver(t *testing.T) {
	w, _ := newTestWidget(t)

	_, ok := w.Style()
	require.False(t, ok)

	renderPayload(t, w, `{"custom_css": ".caption{color:red}"}`)
	css, ok := w.Style()
	require.True(t, ok)
	require.Equal(t, ".caption{color:red}", css)

	renderPayload(t, w, `{}`)
	css, ok = w.Style()
	require.True(t, ok)
	require.Equal(t, ".caption{color:red}", css)

	renderPayload(t, w, `{"custom_css": ""}`)
	css, ok = w.Style()
	require.True(t, ok)
	require.Empty(t, css)
}

func TestThemeDarkThenLight(t *testing.T) {
	w, _ := newTestWidget(t)
	rows := `"images": [{"images": ["a", "b"], "captions": ["A", "B"]}]`

	renderPayload(t, w, `{`+rows+`, "theme": {"base": "dark", "font": "mono", "textColor": "#eeeeee"}}`)
	marked := w.Container().Query(ClassImageBox, ClassCaption)
	require.Len(t, marked, 4)
	for _, node := range marked {
		require.True(t, node.HasClass(ClassDark))
	}
	font, color := w.LabelStyle()
	require.Equal(t, "mono", font)
	require.Equal(t, "#eeeeee", color)

	renderPayload(t, w, `{`+rows+`}`)
	for _, node := range w.Container().Query(ClassImageBox, ClassCaption) {
		require.True(t, node.HasClass(ClassDark), "absent theme keeps the previous mode")
	}

	renderPayload(t, w, `{`+rows+`, "theme": {"base": "light"}}`)
	for _, node := range w.Container().Query(ClassImageBox, ClassCaption) {
		require.False(t, node.HasClass(ClassDark))
	}
	require.Empty(t, w.Container().Query(ClassDark))
	require.False(t, w.Dark())
}

func TestUnknownThemeBaseSwitchesToLightAndKeepsLabelStyle(t *testing.T) {
	w, _ := newTestWidget(t)
	rows := `"images": [{"images": ["a"], "captions": ["A"]}]`

	renderPayload(t, w, `{`+rows+`, "theme": {"base": "dark", "font": "bold serif", "textColor": "#ffffff"}}`)
	require.True(t, w.Dark())

	renderPayload(t, w, `{`+rows+`, "theme": {"base": "custom", "font": "italic sans", "textColor": "rgb(49, 51, 63)"}}`)
	require.False(t, w.Dark())
	require.Empty(t, w.Container().Query(ClassDark))
	font, color := w.LabelStyle()
	require.Equal(t, "italic sans", font)
	require.Equal(t, "rgb(49, 51, 63)", color)
}

func TestApplyThemeTogglesExistingNodes(t *testing.T) {
	w, _ := newTestWidget(t)
	renderPayload(t, w, `{"images": [{"images": ["a"], "captions": ["A"]}]}`)

	w.applyTheme(&snapshot.Theme{Base: snapshot.BaseDark})
	w.applyTheme(&snapshot.Theme{Base: snapshot.BaseDark})
	require.Len(t, w.Container().Query(ClassDark), 2)

	w.applyTheme(nil)
	require.Len(t, w.Container().Query(ClassDark), 2)
}

func TestRenderReportsFrameHeight(t *testing.T) {
	host := &fakeHost{}
	w := New(Options{Host: host, Height: func() int { return 7 }})

	require.NoError(t, w.Start(context.Background()))
	require.Equal(t, 1, host.ready)
	require.Equal(t, []int{7}, host.heights)

	renderPayload(t, w, pickOne)
	require.Equal(t, []int{7, 7}, host.heights)

	w.Click(context.Background(), snapshot.Pointer{Row: 0, Image: 0})
	require.Equal(t, []int{7, 7, 7}, host.heights)
}

func TestEstimatedHeight(t *testing.T) {
	w, host := newTestWidget(t)
	renderPayload(t, w, `{"label": "L", "images_rows": [{"images": ["a", "b"], "captions": ["A"]}, {"images": ["c"]}, {"images": [], "vertical_label": "empty"}]}`)

	// label + (box + caption) + box + row label only
	require.Equal(t, []int{1 + 4 + 3 + 1}, host.heights)

	w.SetHeightFunc(func() int { return 2 })
	renderPayload(t, w, `{}`)
	require.Equal(t, 2, host.heights[len(host.heights)-1])
}

func TestWidgetPublishesEvents(t *testing.T) {
	publisher := events.NewPublisher(nil)
	seen := map[string]int{}
	_, err := publisher.Subscribe(ports.AnyEvent, func(_ context.Context, event ports.DomainEvent) error {
		seen[event.EventType()]++
		return nil
	})
	require.NoError(t, err)

	w := New(Options{Host: &fakeHost{}, Publisher: publisher})
	renderPayload(t, w, pickOne)
	w.Click(context.Background(), snapshot.Pointer{Row: 0, Image: 0})
	w.Click(context.Background(), snapshot.Pointer{Row: 9, Image: 9})
	w.SetDisabled(true)
	w.Click(context.Background(), snapshot.Pointer{Row: 0, Image: 1})

	require.Equal(t, 1, seen[ports.EventSnapshotRendered])
	require.Equal(t, 1, seen[ports.EventSelectionChanged])
	require.Equal(t, 2, seen[ports.EventClickIgnored])
}
