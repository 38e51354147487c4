package ports

import "context"

const (
	// EventSnapshotRendered is emitted after a snapshot has been rebuilt into the visual tree.
	EventSnapshotRendered = "snapshot.rendered"
	// EventImageInvalid is emitted for every image entry skipped during normalization.
	EventImageInvalid = "image.invalid"
	// EventSelectionChanged is emitted when a click commits a new pointer.
	EventSelectionChanged = "selection.changed"
	// EventClickIgnored is emitted when a click is dropped (disabled widget or unknown image).
	EventClickIgnored = "click.ignored"
)

// DomainEvent represents a significant occurrence inside the widget. Events
// carry structured payloads that subscribers use for logging or tests.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after every handler ran. Implementations must
// be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned so
// publishers can log them and continue with the remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// AnyEvent subscribes a handler to every event type.
const AnyEvent = "*"

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}

// Event is the plain DomainEvent used by the widget.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() interface{} { return e.Fields }
