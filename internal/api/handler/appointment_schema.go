package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type citizenRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"omitempty,email"`
	Phone     string `json:"phone"      validate:"omitempty,e164"`
}

type createAppointmentRequest struct {
	Citizen         citizenRequest `json:"citizen"          validate:"required"`
	OfficeID        string         `json:"office_id"        validate:"required"`
	HostID          string         `json:"host_id"          validate:"required"`
	Purpose         string         `json:"purpose"          validate:"required"`
	AppointmentDate time.Time      `json:"appointment_date" validate:"required"`
	TimeSlot        string         `json:"time_slot"`
}

type approveRequest struct {
	Reason string `json:"reason"`
}

type denyRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type cancelRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type postponeRequest struct {
	NewDate time.Time `json:"new_appointment_date" validate:"required"`
	Reason  string    `json:"reason"`
}

// editAppointmentRequest uses pointers so an omitted field is
// distinguishable from an explicit zero value.
type editAppointmentRequest struct {
	Purpose         *string    `json:"purpose"`
	AppointmentDate *time.Time `json:"appointment_date"`
	TimeSlot        *string    `json:"time_slot"`
	HostID          *string    `json:"host_id"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type statusHistoryItemResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	ActorID   string    `json:"actor_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

type appointmentResponse struct {
	ID              string    `json:"id"`
	OfficeID        string    `json:"office_id"`
	HostID          string    `json:"host_id"`
	CitizenID       string    `json:"citizen_id"`
	Purpose         string    `json:"purpose"`
	AppointmentDate time.Time `json:"appointment_date"`
	TimeSlot        string    `json:"time_slot,omitempty"`
	Status          string    `json:"status"`
	IsActive        bool      `json:"is_active"`

	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	DecidedBy      string     `json:"decided_by,omitempty"`
	DecisionReason string     `json:"decision_reason,omitempty"`
	IssuedBy       string     `json:"issued_by,omitempty"`

	CanceledAt     *time.Time `json:"canceled_at,omitempty"`
	CanceledBy     string     `json:"canceled_by,omitempty"`
	CanceledReason string     `json:"canceled_reason,omitempty"`

	NewAppointmentDate *time.Time `json:"new_appointment_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StatusHistory []statusHistoryItemResponse `json:"status_history,omitempty"`
}

type citizenResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type hostResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type createAppointmentResponse struct {
	Appointment   appointmentResponse `json:"appointment"`
	Citizen       citizenResponse     `json:"citizen"`
	CitizenReused bool                `json:"citizen_reused"`
}

// appointmentDetailResponse renders the joined detail projection.
type appointmentDetailResponse struct {
	appointmentResponse
	Host    hostResponse    `json:"host"`
	Citizen citizenResponse `json:"citizen"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listAppointmentsResponse struct {
	Data       []appointmentDetailResponse `json:"data"`
	Pagination paginationResponse          `json:"pagination"`
}
