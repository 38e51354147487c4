package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	apperrors "github.com/alexisbeaulieu97/imagepick/pkg/errors"
)

// ReadFile loads a single render message from a JSON file. Syntax errors are
// reported with the offending line.
func ReadFile(path string) (RenderEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RenderEvent{}, fmt.Errorf("read snapshot file: %w", err)
	}
	return decodeFile(path, data)
}

func decodeFile(path string, data []byte) (RenderEvent, error) {
	event, ok, err := Decode(data)
	if err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return RenderEvent{}, apperrors.NewParseError(path, lineAt(data, syntaxErr.Offset), syntaxErr)
		}
		return RenderEvent{}, apperrors.NewParseError(path, 0, err)
	}
	if !ok {
		return RenderEvent{}, apperrors.NewParseError(path, 0, fmt.Errorf("not a render message"))
	}
	return event, nil
}

func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

// FileSource treats a JSON file as the host: its content is rendered once at
// start and again after every change.
type FileSource struct {
	path   string
	logger ports.Logger
	last   []byte
}

var _ Source = (*FileSource)(nil)

func NewFileSource(path string, logger ports.Logger) *FileSource {
	logger = logging.OrNoOp(logger)
	return &FileSource{
		path:   filepath.Clean(path),
		logger: logger.With("component", "source", "source", "file", "path", path),
	}
}

// Run watches the file's directory so editors that replace the file on save
// are followed. It returns nil once ctx is cancelled.
func (s *FileSource) Run(ctx context.Context, emit func(RenderEvent)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return apperrors.NewTransportError("watch", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return apperrors.NewTransportError("watch", err)
	}

	s.reload(ctx, emit)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				s.reload(ctx, emit)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn(ctx, "file watcher error", "error", err)
		}
	}
}

// reload emits the file content when it changed since the last emission.
func (s *FileSource) reload(ctx context.Context, emit func(RenderEvent)) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug(ctx, "snapshot file not present yet")
			return
		}
		s.logger.Warn(ctx, "snapshot file unreadable", "error", err)
		return
	}
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(data, s.last) {
		return
	}
	s.last = data

	event, err := decodeFile(s.path, data)
	if err != nil {
		s.logger.Error(ctx, "malformed snapshot file", "error", err)
		return
	}
	emit(event)
}
