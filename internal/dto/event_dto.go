// FILE: internal/dto/event_dto.go
package dto

import "time"

// EventEnvelope is the wire form of an event on the in-process bus.
type EventEnvelope struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}
