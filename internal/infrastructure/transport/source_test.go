package transport

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/logging"
	apperrors "github.com/alexisbeaulieu97/imagepick/pkg/errors"
)

func TestLineSourceEmitsInOrderAndSkipsBadLines(t *testing.T) {
	input := strings.Join([]string{
		`{"type":"streamlit:render","args":{"label":"first"}}`,
		``,
		`{"label":`,
		`{"type":"streamlit:other"}`,
		`{"label":"second"}`,
	}, "\n")

	recorder := logging.NewRecorder(0)
	var labels []interface{}
	err := NewLineSource(strings.NewReader(input), recorder).Run(context.Background(), func(e RenderEvent) {
		labels = append(labels, e.Args["label"])
	})

	require.NoError(t, err)
	require.Equal(t, []interface{}{"first", "second"}, labels)

	errs := recorder.EntriesAt(logging.LevelError)
	require.Len(t, errs, 1)
	line, ok := errs[0].Field("line")
	require.True(t, ok)
	require.Equal(t, 3, line)
}

func TestLineSourceStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count := 0
	err := NewLineSource(strings.NewReader("{}\n{}\n"), nil).Run(ctx, func(RenderEvent) { count++ })
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestReadFileReportsSyntaxLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	require.NoError(t, os.WriteFile(path, []byte("{\n  \"label\": \"x\",\n  oops\n}\n"), 0o600))

	_, err := ReadFile(path)
	require.Error(t, err)
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 3, parseErr.Line)
	require.Equal(t, path, parseErr.Path)
}

func TestReadFileAcceptsPrettyPrintedEnvelope(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	content := "{\n  \"type\": \"streamlit:render\",\n  \"args\": {\"label\": \"Pick\"}\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	event, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Pick", event.Args["label"])

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSourceRendersInitialContentAndChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"label":"one"}`), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan RenderEvent, 10)
	done := make(chan error, 1)
	go func() {
		done <- NewFileSource(path, nil).Run(ctx, func(e RenderEvent) { events <- e })
	}()

	select {
	case e := <-events:
		require.Equal(t, "one", e.Args["label"])
	case <-time.After(5 * time.Second):
		t.Fatal("initial snapshot not emitted")
	}

	require.NoError(t, os.WriteFile(path, []byte(`{"label":"two"}`), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case e := <-events:
			if e.Args["label"] == "two" {
				cancel()
				require.NoError(t, <-done)
				return
			}
		case <-deadline:
			t.Fatal("changed snapshot not emitted")
		}
	}
}
