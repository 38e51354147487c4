package widget

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	"github.com/alexisbeaulieu97/imagepick/internal/snapshot"
)

// Reporter sends widget output to the host. It does not retry; failures are
// logged and returned.
type Reporter struct {
	host   ports.HostChannel
	height func() int
	logger ports.Logger
}

// NewReporter creates a Reporter. height measures the frame height.
func NewReporter(host ports.HostChannel, height func() int, logger ports.Logger) *Reporter {
	return &Reporter{host: host, height: height, logger: logger}
}

// Ready signals readiness, then reports the current height.
func (r *Reporter) Ready(ctx context.Context) error {
	if r.host == nil {
		return fmt.Errorf("host channel not configured")
	}
	if err := r.host.SetComponentReady(ctx); err != nil {
		r.logger.Error(ctx, "component ready not delivered", "error", err)
		return fmt.Errorf("signal ready: %w", err)
	}
	return r.RefreshHeight(ctx)
}

// Report commits p as the widget value and refreshes the frame height.
func (r *Reporter) Report(ctx context.Context, p snapshot.Pointer) error {
	if r.host == nil {
		return fmt.Errorf("host channel not configured")
	}
	if err := r.host.SetComponentValue(ctx, p); err != nil {
		r.logger.Error(ctx, "component value not delivered", "row", p.Row, "column", p.Image, "error", err)
		return fmt.Errorf("report selection: %w", err)
	}
	return r.RefreshHeight(ctx)
}

// RefreshHeight reports the current content height.
func (r *Reporter) RefreshHeight(ctx context.Context) error {
	if r.host == nil {
		return fmt.Errorf("host channel not configured")
	}
	height := 0
	if r.height != nil {
		height = r.height()
	}
	if err := r.host.SetFrameHeight(ctx, height); err != nil {
		r.logger.Error(ctx, "frame height not delivered", "height", height, "error", err)
		return fmt.Errorf("set frame height: %w", err)
	}
	return nil
}
