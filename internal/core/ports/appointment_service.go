package ports

import (
	"context"
	"time"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
)

// Caller is the pre-authenticated identity performing an operation. The core
// never authenticates; it only authorizes using the Authorizer port.
type Caller struct {
	ID   string
	Role string
}

// CitizenInput holds the requester's contact details.
type CitizenInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// CreateAppointmentInput carries all data needed to create an appointment
// together with its citizen.
type CreateAppointmentInput struct {
	Caller          Caller
	Citizen         CitizenInput
	OfficeID        string
	HostID          string
	Purpose         string
	AppointmentDate time.Time
	TimeSlot        string
}

// CreateAppointmentResult is returned after a successful creation.
type CreateAppointmentResult struct {
	Appointment domain.Appointment
	Citizen     domain.Citizen
	// CitizenReused is true when an existing citizen matched by email was
	// linked instead of a new record being created.
	CitizenReused bool
}

// DecisionInput is shared by Approve and Deny.
type DecisionInput struct {
	AppointmentID string
	Caller        Caller
	Reason        string
}

// CancelInput carries the cancellation payload.
type CancelInput struct {
	AppointmentID string
	Caller        Caller
	Reason        string
}

// PostponeInput carries the postponement payload.
type PostponeInput struct {
	AppointmentID string
	Caller        Caller
	NewDate       time.Time
	Reason        string
}

// CompleteInput is shared by Complete and MarkNoShow.
type CompleteInput struct {
	AppointmentID string
	Caller        Caller
}

// EditInput carries the fields editable while an appointment is pending.
type EditInput struct {
	AppointmentID   string
	Caller          Caller
	Purpose         *string
	AppointmentDate *time.Time
	TimeSlot        *string
	HostID          *string
}

// GetAppointmentInput carries the parameters for a single detail read.
type GetAppointmentInput struct {
	AppointmentID string
	Caller        Caller
}

// ListAppointmentsInput carries all parameters for the list endpoint.
type ListAppointmentsInput struct {
	Caller   Caller
	OfficeID string
	HostID   string
	Status   string
	DateFrom time.Time
	DateTo   time.Time
	Page     int
	Limit    int
}

// HostInfo is the host slice of the detail projection.
type HostInfo struct {
	ID       string
	Username string
	Email    string
}

// CitizenInfo is the citizen slice of the detail projection.
type CitizenInfo struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// AppointmentDetail is the read-only joined projection of an appointment
// with its host and citizen. It is never written to directly.
type AppointmentDetail struct {
	Appointment domain.Appointment
	Host        HostInfo
	Citizen     CitizenInfo
}

// ListAppointmentsResult is returned by ListAppointments.
type ListAppointmentsResult struct {
	Items      []*AppointmentDetail
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AppointmentService defines the lifecycle use-cases. Every transition
// validates the state machine against the stored status, checks the caller's
// role at the appointment's office, and emits side effects only after the
// transition has been persisted. Transitions are deliberately not
// idempotent: repeating one fails with a typed domain error.
type AppointmentService interface {
	CreateWithCitizen(ctx context.Context, input CreateAppointmentInput) (*CreateAppointmentResult, error)
	Approve(ctx context.Context, input DecisionInput) (*domain.Appointment, error)
	Deny(ctx context.Context, input DecisionInput) (*domain.Appointment, error)
	Cancel(ctx context.Context, input CancelInput) (*domain.Appointment, error)
	Postpone(ctx context.Context, input PostponeInput) (*domain.Appointment, error)
	Complete(ctx context.Context, input CompleteInput) (*domain.Appointment, error)
	MarkNoShow(ctx context.Context, input CompleteInput) (*domain.Appointment, error)
	Edit(ctx context.Context, input EditInput) (*domain.Appointment, error)
	GetAppointment(ctx context.Context, input GetAppointmentInput) (*AppointmentDetail, error)
	ListAppointments(ctx context.Context, input ListAppointmentsInput) (*ListAppointmentsResult, error)
}
