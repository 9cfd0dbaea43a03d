package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusDenied    AppointmentStatus = "denied"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusPostponed AppointmentStatus = "postponed"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// validTransitions defines the allowed state machine transitions.
// postponed behaves like pending: the appointment awaits a fresh decision
// on its new date. denied, cancelled, completed and no_show are terminal.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusApproved, StatusDenied, StatusCancelled},
	StatusApproved:  {StatusCompleted, StatusCancelled, StatusPostponed, StatusNoShow},
	StatusPostponed: {StatusApproved, StatusDenied, StatusCancelled},
}

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrCitizenNotFound = errors.New("citizen not found")
var ErrAlreadyApproved = errors.New("appointment already approved")
var ErrDecisionNotAllowed = errors.New("appointment decision not allowed")
var ErrCancellationNotAllowed = errors.New("appointment cancellation not allowed")
var ErrPostponementNotAllowed = errors.New("appointment postponement not allowed")
var ErrCompletionNotAllowed = errors.New("appointment completion not allowed")
var ErrNoShowNotAllowed = errors.New("appointment no-show marking not allowed")
var ErrEditNotAllowed = errors.New("appointment edit not allowed")
var ErrForbidden = errors.New("access forbidden")
var ErrStatusConflict = errors.New("appointment status changed concurrently")
var ErrValidation = errors.New("invalid appointment data")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is a member of the closed status set. Writes with
// any other value are rejected before they reach the store.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied, StatusCancelled,
		StatusPostponed, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible from s.
func (s AppointmentStatus) Terminal() bool {
	return s.Valid() && len(validTransitions[s]) == 0
}

// StatusHistoryEntry records a single status transition on an appointment.
type StatusHistoryEntry struct {
	Status    AppointmentStatus `json:"status" bson:"status"`
	Timestamp time.Time         `json:"timestamp" bson:"timestamp"`
	ActorID   string            `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	Notes     string            `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Appointment is the core aggregate root.
type Appointment struct {
	ID              string            `json:"id" bson:"_id"`
	OfficeID        string            `json:"office_id" bson:"office_id"`
	HostID          string            `json:"host_id" bson:"host_id"`
	CitizenID       string            `json:"citizen_id" bson:"citizen_id"`
	Purpose         string            `json:"purpose" bson:"purpose"`
	AppointmentDate time.Time         `json:"appointment_date" bson:"appointment_date"`
	TimeSlot        string            `json:"time_slot,omitempty" bson:"time_slot,omitempty"`
	Status          AppointmentStatus `json:"status" bson:"status"`
	IsActive        bool              `json:"is_active" bson:"is_active"`

	// Decision fields: populated iff status is approved or denied.
	DecidedAt      *time.Time `json:"decided_at,omitempty" bson:"decided_at,omitempty"`
	DecidedBy      string     `json:"decided_by,omitempty" bson:"decided_by,omitempty"`
	DecisionReason string     `json:"decision_reason,omitempty" bson:"decision_reason,omitempty"`
	IssuedBy       string     `json:"issued_by,omitempty" bson:"issued_by,omitempty"`

	// Cancellation fields: populated iff status is cancelled. The row is
	// never physically deleted; is_active is cleared instead.
	CanceledAt     *time.Time `json:"canceled_at,omitempty" bson:"canceled_at,omitempty"`
	CanceledBy     string     `json:"canceled_by,omitempty" bson:"canceled_by,omitempty"`
	CanceledReason string     `json:"canceled_reason,omitempty" bson:"canceled_reason,omitempty"`

	// NewAppointmentDate is set on postponement. The original
	// appointment_date is kept untouched for the audit trail.
	NewAppointmentDate *time.Time `json:"new_appointment_date,omitempty" bson:"new_appointment_date,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`

	StatusHistory []StatusHistoryEntry `json:"status_history" bson:"status_history"`
}

// EffectiveDate returns the date the appointment is currently scheduled for:
// the postponement date when one exists, the original date otherwise.
func (a *Appointment) EffectiveDate() time.Time {
	if a.NewAppointmentDate != nil {
		return *a.NewAppointmentDate
	}
	return a.AppointmentDate
}
