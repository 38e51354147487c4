package ports

import "context"

// HostChannel carries widget-originated messages to the embedding host. The
// channel is assumed synchronous; implementations report delivery failures
// but never retry.
//
//go:generate mockgen -destination=../widget/mock_host_test.go -package=widget github.com/alexisbeaulieu97/imagepick/internal/ports HostChannel
type HostChannel interface {
	// SetComponentReady tells the host the widget can receive snapshots.
	SetComponentReady(ctx context.Context) error
	// SetComponentValue commits a new widget value.
	SetComponentValue(ctx context.Context, value interface{}) error
	// SetFrameHeight reports the height the widget currently needs.
	SetFrameHeight(ctx context.Context, height int) error
}
