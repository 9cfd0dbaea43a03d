package ports

import (
	"context"
	"time"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
)

// StatusUpdate carries the field mutations applied together with a status
// change. Only fields relevant to the transition are set; the repository
// persists them in the same conditional write that flips the status.
type StatusUpdate struct {
	DecidedAt      *time.Time
	DecidedBy      string
	DecisionReason string
	IssuedBy       string

	// ClearDecision removes the decision fields in the same write. Set on
	// transitions out of approved (postpone, cancel) so decided_at and
	// decided_by are populated only while the status is approved or denied.
	ClearDecision bool

	CanceledAt     *time.Time
	CanceledBy     string
	CanceledReason string

	NewAppointmentDate *time.Time
	IsActive           *bool

	History domain.StatusHistoryEntry
}

// EditFields are the attributes editable while an appointment is pending.
// Nil pointers leave the stored value untouched.
type EditFields struct {
	Purpose         *string
	AppointmentDate *time.Time
	TimeSlot        *string
	HostID          *string
}

// ListAppointmentsFilter carries all query parameters for listing
// appointment details.
type ListAppointmentsFilter struct {
	OfficeID string // empty = no office filter (requires read_all permission)
	HostID   string // optional: scope to one host
	Status   string // optional: filter by lifecycle status
	DateFrom time.Time
	DateTo   time.Time
	Page     int // 1-based
	Limit    int // max rows per page (capped by the service)
}

// AppointmentRepository defines persistence operations for appointments.
//
// UpdateStatusFrom and UpdateFields are conditional writes: they apply only
// when the stored status still equals expected, which serializes concurrent
// check-then-set sequences on the same appointment. A write that matches no
// document by id+status returns domain.ErrStatusConflict; the caller
// re-reads to distinguish a missing appointment from a lost race.
type AppointmentRepository interface {
	Insert(ctx context.Context, a *domain.Appointment) error
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	UpdateStatusFrom(ctx context.Context, id string, expected, next domain.AppointmentStatus, update StatusUpdate) error
	UpdateFields(ctx context.Context, id string, expected domain.AppointmentStatus, fields EditFields) error

	// FindDetail and ListDetails read the denormalized detail projection
	// (appointment joined with host and citizen). The projection is
	// recomputed per query and has no write path.
	FindDetail(ctx context.Context, id string) (*AppointmentDetail, error)
	ListDetails(ctx context.Context, filter ListAppointmentsFilter) ([]*AppointmentDetail, int64, error)
}

// CitizenRepository defines persistence operations for citizens.
type CitizenRepository interface {
	// FindOrCreate returns the existing citizen with the same email,
	// updating phone/name when they changed, or inserts a new one.
	// The second result reports whether an existing record was reused.
	FindOrCreate(ctx context.Context, c *domain.Citizen) (*domain.Citizen, bool, error)
	FindByID(ctx context.Context, id string) (*domain.Citizen, error)
}
