package domain

import "time"

// Lifecycle event kinds published on the office broadcast channel.
const (
	EventApproved  = "approved"
	EventDenied    = "denied"
	EventCancelled = "cancelled"
	EventPostponed = "postponed"
	EventCompleted = "completed"
	EventNoShow    = "no_show"
)

// LifecycleEvent is the payload fanned out to office subscribers after a
// successful status transition. Delivery is best-effort: subscribers not
// registered at publish time receive nothing.
type LifecycleEvent struct {
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointment_id"`
	OfficeID      string    `json:"office_id"`
	Status        string    `json:"status"`
	ActorID       string    `json:"actor_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
