package interfaces

// EventPublisher emits domain events to an external stream. Publishing is
// best effort: callers log failures but never fail the originating operation.
type EventPublisher interface {
	Publish(topic string, event any) error
}
