package interfaces

// EventPublisher delivers domain events to an external bus. Publishing is
// best-effort: the ledger's own state never depends on delivery.
type EventPublisher interface {
	Publish(topic string, event any) error
}

// NoopPublisher discards every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, any) error { return nil }

var _ EventPublisher = NoopPublisher{}
