package models

import "time"

// EventKind classifies entries on the kitchen event bus.
type EventKind string

const (
	EventReservation EventKind = "reservation"
	EventSubmission  EventKind = "submission"
	EventProgress    EventKind = "progress"
	EventCompletion  EventKind = "completion"
	EventError       EventKind = "error"
	EventHeartbeat   EventKind = "heartbeat"
)

// KitchenEvent is a single bus entry.
type KitchenEvent struct {
	EventID    string    `json:"event_id"`
	Kind       EventKind `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}
