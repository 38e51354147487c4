package transport

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	apperrors "github.com/alexisbeaulieu97/imagepick/pkg/errors"
)

// maxLineSize bounds one inbound message.
const maxLineSize = 4 * 1024 * 1024

// Source delivers render events from the host in arrival order.
type Source interface {
	// Run blocks until the source is exhausted or fails, or ctx is cancelled.
	Run(ctx context.Context, emit func(RenderEvent)) error
}

// LineSource reads one message per line.
type LineSource struct {
	r      io.Reader
	logger ports.Logger
}

var _ Source = (*LineSource)(nil)

func NewLineSource(r io.Reader, logger ports.Logger) *LineSource {
	logger = logging.OrNoOp(logger)
	return &LineSource{r: r, logger: logger.With("component", "source", "source", "lines")}
}

// Run reads until EOF or until ctx is cancelled, returning nil in both
// cases. Blank lines are skipped; malformed lines are logged
// and skipped.
func (s *LineSource) Run(ctx context.Context, emit func(RenderEvent)) error {
	scanner := bufio.NewScanner(s.r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if ctx.Err() != nil {
			return nil
		}
		data := scanner.Bytes()
		if len(bytes.TrimSpace(data)) == 0 {
			continue
		}
		event, ok, err := Decode(data)
		if err != nil {
			s.logger.Error(ctx, "malformed host message", "line", line, "error", err)
			continue
		}
		if !ok {
			s.logger.Debug(ctx, "ignoring host message", "line", line)
			continue
		}
		emit(event)
	}
	if err := scanner.Err(); err != nil {
		return apperrors.NewTransportError("read", err)
	}
	return nil
}
