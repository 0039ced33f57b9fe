package events

import "time"

// Event is anything the session lifecycle emits onto the bus: logins,
// logouts, inactivity expiries. Consumers switch on EventType.
type Event interface {
	// EventType returns the event code, e.g. "SESSION_EXPIRED".
	EventType() string

	// Payload returns the event's loosely-typed body.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain-struct Event used both by the typed constructors in
// this package and to rebuild events decoded off the wire.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
