package transport

import (
	"context"
	"io"
	"sync"

	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	apperrors "github.com/alexisbeaulieu97/imagepick/pkg/errors"
)

// Host writes outbound protocol messages, one JSON object per line.
// It is safe for concurrent use.
type Host struct {
	mu     sync.Mutex
	w      io.Writer
	logger ports.Logger
}

var _ ports.HostChannel = (*Host)(nil)

// NewHost creates a host channel writing to w.
func NewHost(w io.Writer, logger ports.Logger) *Host {
	logger = logging.OrNoOp(logger)
	return &Host{w: w, logger: logger.With("component", "host")}
}

func (h *Host) SetComponentReady(ctx context.Context) error {
	line, err := encodeReady()
	return h.write(ctx, TypeComponentReady, line, err)
}

func (h *Host) SetComponentValue(ctx context.Context, value interface{}) error {
	line, err := encodeValue(value)
	return h.write(ctx, TypeSetComponentValue, line, err)
}

func (h *Host) SetFrameHeight(ctx context.Context, height int) error {
	line, err := encodeHeight(height)
	return h.write(ctx, TypeSetFrameHeight, line, err)
}

func (h *Host) write(ctx context.Context, kind string, line []byte, err error) error {
	if err != nil {
		return apperrors.NewTransportError("encode "+kind, err)
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewTransportError("write "+kind, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := h.w.Write(append(line, '\n')); err != nil {
		return apperrors.NewTransportError("write "+kind, err)
	}
	h.logger.Debug(ctx, "host message sent", "type", kind)
	return nil
}
