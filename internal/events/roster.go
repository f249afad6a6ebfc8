// Package events defines roster event payloads and their publishers.
package events

import "time"

// Type names a roster event.
type Type string

const (
	TypeSignedUp Type = "roster.signed_up"
	TypeRemoved  Type = "roster.removed"
)

// RosterChanged is emitted after a participant joins or leaves an activity.
type RosterChanged struct {
	EventID    string    `json:"event_id"`
	Type       Type      `json:"event_type"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}
