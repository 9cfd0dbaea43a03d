package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/api/metrics"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/ports"
)

// Roles allowed to trigger each operation.
var (
	createRoles   = []string{domain.RoleReception, domain.RoleSecretary, domain.RoleHost}
	decisionRoles = []string{domain.RoleHost, domain.RoleSecretary}
	cancelRoles   = []string{domain.RoleHost, domain.RoleSecretary, domain.RoleReception}
	editRoles     = []string{domain.RoleHost, domain.RoleSecretary, domain.RoleReception}
)

// Config tunes lifecycle policy.
type Config struct {
	// AllowEarlyComplete lets staff mark an appointment completed before its
	// scheduled date has elapsed.
	AllowEarlyComplete bool
	// MaxPageSize caps the list endpoint page size.
	MaxPageSize int
}

// AppointmentService is the lifecycle engine: it enforces legal status
// transitions, per-transition authorization, and side-effect emission.
type AppointmentService struct {
	appointments ports.AppointmentRepository
	citizens     ports.CitizenRepository
	authz        ports.Authorizer
	publisher    ports.EventPublisher
	notifier     ports.NotificationScheduler
	cfg          Config
	logger       zerolog.Logger
	now          func() time.Time
}

func NewAppointmentService(
	appointments ports.AppointmentRepository,
	citizens ports.CitizenRepository,
	authz ports.Authorizer,
	publisher ports.EventPublisher,
	notifier ports.NotificationScheduler,
	cfg Config,
	logger zerolog.Logger,
) *AppointmentService {
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	return &AppointmentService{
		appointments: appointments,
		citizens:     citizens,
		authz:        authz,
		publisher:    publisher,
		notifier:     notifier,
		cfg:          cfg,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateWithCitizen creates a citizen (or reuses an existing one matched by
// email) and a pending appointment in one operation. No notification is sent
// on creation.
func (s *AppointmentService) CreateWithCitizen(ctx context.Context, input ports.CreateAppointmentInput) (*ports.CreateAppointmentResult, error) {
	defer s.observe("create")()

	if err := validateCreateInput(input); err != nil {
		metrics.TransitionErrorsTotal.WithLabelValues("create", "validation").Inc()
		return nil, err
	}

	if err := s.authorize(ctx, "create", input.Caller, input.OfficeID, createRoles); err != nil {
		return nil, err
	}

	// An invalid host/office reference is a validation failure, not an
	// authorization one: the host must actually hold the host role there.
	isHost, err := s.authz.HasRole(ctx, input.HostID, input.OfficeID, domain.RoleHost)
	if err != nil {
		metrics.TransitionErrorsTotal.WithLabelValues("create", "internal").Inc()
		return nil, fmt.Errorf("create appointment: verify host: %w", err)
	}
	if !isHost {
		metrics.TransitionErrorsTotal.WithLabelValues("create", "validation").Inc()
		return nil, fmt.Errorf("%w: host %s is not a host at office %s", domain.ErrValidation, input.HostID, input.OfficeID)
	}

	now := s.now()
	citizen, reused, err := s.citizens.FindOrCreate(ctx, &domain.Citizen{
		ID:        uuid.NewString(),
		FirstName: input.Citizen.FirstName,
		LastName:  input.Citizen.LastName,
		Email:     input.Citizen.Email,
		Phone:     input.Citizen.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		metrics.TransitionErrorsTotal.WithLabelValues("create", "internal").Inc()
		return nil, fmt.Errorf("create appointment: citizen: %w", err)
	}

	appointment := &domain.Appointment{
		ID:              uuid.NewString(),
		OfficeID:        input.OfficeID,
		HostID:          input.HostID,
		CitizenID:       citizen.ID,
		Purpose:         input.Purpose,
		AppointmentDate: input.AppointmentDate.UTC(),
		TimeSlot:        input.TimeSlot,
		Status:          domain.StatusPending,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
		StatusHistory: []domain.StatusHistoryEntry{{
			Status:    domain.StatusPending,
			Timestamp: now,
			ActorID:   input.Caller.ID,
			Notes:     "created",
		}},
	}

	if err := s.appointments.Insert(ctx, appointment); err != nil {
		metrics.TransitionErrorsTotal.WithLabelValues("create", "internal").Inc()
		s.logger.Error().Err(err).Str("office_id", input.OfficeID).Msg("failed to create appointment")
		return nil, err
	}

	metrics.TransitionsTotal.WithLabelValues("create").Inc()
	s.logger.Info().
		Str("appointment_id", appointment.ID).
		Str("office_id", appointment.OfficeID).
		Str("citizen_id", citizen.ID).
		Bool("citizen_reused", reused).
		Msg("appointment created")

	return &ports.CreateAppointmentResult{
		Appointment:   *appointment,
		Citizen:       *citizen,
		CitizenReused: reused,
	}, nil
}

// Approve moves a pending or postponed appointment to approved. Approving
// twice fails with domain.ErrAlreadyApproved: transitions are intentionally
// not idempotent.
func (s *AppointmentService) Approve(ctx context.Context, input ports.DecisionInput) (*domain.Appointment, error) {
	defer s.observe("approve")()
	return s.decide(ctx, "approve", input, domain.StatusApproved)
}

// Deny moves a pending or postponed appointment to denied.
func (s *AppointmentService) Deny(ctx context.Context, input ports.DecisionInput) (*domain.Appointment, error) {
	defer s.observe("deny")()
	return s.decide(ctx, "deny", input, domain.StatusDenied)
}

// decide implements the shared approve/deny path.
func (s *AppointmentService) decide(ctx context.Context, action string, input ports.DecisionInput, next domain.AppointmentStatus) (*domain.Appointment, error) {
	appointment, err := s.load(ctx, action, input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, action, input.Caller, appointment.OfficeID, decisionRoles); err != nil {
		return nil, err
	}
	if err := s.checkDecision(action, appointment.Status); err != nil {
		return nil, err
	}

	now := s.now()
	update := ports.StatusUpdate{
		DecidedAt:      &now,
		DecidedBy:      input.Caller.ID,
		DecisionReason: input.Reason,
		IssuedBy:       input.Caller.ID,
		History: domain.StatusHistoryEntry{
			Status:    next,
			Timestamp: now,
			ActorID:   input.Caller.ID,
			Notes:     input.Reason,
		},
	}
	if next == domain.StatusDenied {
		inactive := false
		update.IsActive = &inactive
	}

	updated, err := s.applyTransition(ctx, action, appointment, next, update, s.checkDecision)
	if err != nil {
		return nil, err
	}

	kind := domain.EventApproved
	if next == domain.StatusDenied {
		kind = domain.EventDenied
	}
	s.emit(ctx, kind, updated, input.Caller)
	return updated, nil
}

// checkDecision validates the approve/deny precondition against a status.
func (s *AppointmentService) checkDecision(action string, status domain.AppointmentStatus) error {
	switch status {
	case domain.StatusPending, domain.StatusPostponed:
		return nil
	case domain.StatusApproved:
		metrics.TransitionErrorsTotal.WithLabelValues(action, "invalid_transition").Inc()
		return fmt.Errorf("%s appointment: %w", action, domain.ErrAlreadyApproved)
	default:
		metrics.TransitionErrorsTotal.WithLabelValues(action, "invalid_transition").Inc()
		return fmt.Errorf("%s appointment: %w (current status %s)", action, domain.ErrDecisionNotAllowed, status)
	}
}

// Cancel cancels a pending, postponed or approved appointment. The row is
// kept for audit; is_active is cleared.
func (s *AppointmentService) Cancel(ctx context.Context, input ports.CancelInput) (*domain.Appointment, error) {
	defer s.observe("cancel")()

	appointment, err := s.load(ctx, "cancel", input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, "cancel", input.Caller, appointment.OfficeID, cancelRoles); err != nil {
		return nil, err
	}
	check := func(action string, status domain.AppointmentStatus) error {
		if status.CanTransitionTo(domain.StatusCancelled) {
			return nil
		}
		metrics.TransitionErrorsTotal.WithLabelValues(action, "invalid_transition").Inc()
		return fmt.Errorf("cancel appointment: %w (current status %s)", domain.ErrCancellationNotAllowed, status)
	}
	if err := check("cancel", appointment.Status); err != nil {
		return nil, err
	}

	now := s.now()
	inactive := false
	update := ports.StatusUpdate{
		CanceledAt:     &now,
		CanceledBy:     input.Caller.ID,
		CanceledReason: input.Reason,
		IsActive:       &inactive,
		ClearDecision:  true,
		History: domain.StatusHistoryEntry{
			Status:    domain.StatusCancelled,
			Timestamp: now,
			ActorID:   input.Caller.ID,
			Notes:     input.Reason,
		},
	}

	updated, err := s.applyTransition(ctx, "cancel", appointment, domain.StatusCancelled, update, check)
	if err != nil {
		return nil, err
	}

	s.emit(ctx, domain.EventCancelled, updated, input.Caller)
	return updated, nil
}

// Postpone reschedules an approved appointment. The original date is kept
// for audit; the appointment awaits a fresh decision on the new date.
func (s *AppointmentService) Postpone(ctx context.Context, input ports.PostponeInput) (*domain.Appointment, error) {
	defer s.observe("postpone")()

	if input.NewDate.IsZero() {
		metrics.TransitionErrorsTotal.WithLabelValues("postpone", "validation").Inc()
		return nil, fmt.Errorf("%w: new appointment date is required", domain.ErrValidation)
	}

	appointment, err := s.load(ctx, "postpone", input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, "postpone", input.Caller, appointment.OfficeID, decisionRoles); err != nil {
		return nil, err
	}
	check := func(action string, status domain.AppointmentStatus) error {
		if status == domain.StatusApproved {
			return nil
		}
		metrics.TransitionErrorsTotal.WithLabelValues(action, "invalid_transition").Inc()
		return fmt.Errorf("postpone appointment: %w (current status %s)", domain.ErrPostponementNotAllowed, status)
	}
	if err := check("postpone", appointment.Status); err != nil {
		return nil, err
	}

	now := s.now()
	newDate := input.NewDate.UTC()
	update := ports.StatusUpdate{
		NewAppointmentDate: &newDate,
		ClearDecision:      true,
		History: domain.StatusHistoryEntry{
			Status:    domain.StatusPostponed,
			Timestamp: now,
			ActorID:   input.Caller.ID,
			Notes:     input.Reason,
		},
	}

	updated, err := s.applyTransition(ctx, "postpone", appointment, domain.StatusPostponed, update, check)
	if err != nil {
		return nil, err
	}

	s.emit(ctx, domain.EventPostponed, updated, input.Caller)
	return updated, nil
}

// Complete marks an approved appointment completed. Unless configured with
// AllowEarlyComplete, the scheduled date must have elapsed.
func (s *AppointmentService) Complete(ctx context.Context, input ports.CompleteInput) (*domain.Appointment, error) {
	defer s.observe("complete")()
	return s.finish(ctx, "complete", input, domain.StatusCompleted)
}

// MarkNoShow marks an approved appointment whose date has passed as a
// no-show. This is an explicit staff action, never automatic.
func (s *AppointmentService) MarkNoShow(ctx context.Context, input ports.CompleteInput) (*domain.Appointment, error) {
	defer s.observe("no_show")()
	return s.finish(ctx, "no_show", input, domain.StatusNoShow)
}

// finish implements the shared complete/no-show path.
func (s *AppointmentService) finish(ctx context.Context, action string, input ports.CompleteInput, next domain.AppointmentStatus) (*domain.Appointment, error) {
	appointment, err := s.load(ctx, action, input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, action, input.Caller, appointment.OfficeID, decisionRoles); err != nil {
		return nil, err
	}

	failure := domain.ErrCompletionNotAllowed
	if next == domain.StatusNoShow {
		failure = domain.ErrNoShowNotAllowed
	}
	check := func(action string, status domain.AppointmentStatus) error {
		if status != domain.StatusApproved {
			metrics.TransitionErrorsTotal.WithLabelValues(action, "invalid_transition").Inc()
			return fmt.Errorf("%s appointment: %w (current status %s)", action, failure, status)
		}
		return nil
	}
	if err := check(action, appointment.Status); err != nil {
		return nil, err
	}

	now := s.now()
	dateElapsed := appointment.EffectiveDate().Before(now)
	if !dateElapsed && !(next == domain.StatusCompleted && s.cfg.AllowEarlyComplete) {
		metrics.TransitionErrorsTotal.WithLabelValues(action, "invalid_transition").Inc()
		return nil, fmt.Errorf("%s appointment: %w (scheduled date has not elapsed)", action, failure)
	}

	update := ports.StatusUpdate{
		History: domain.StatusHistoryEntry{
			Status:    next,
			Timestamp: now,
			ActorID:   input.Caller.ID,
		},
	}
	if next == domain.StatusNoShow {
		inactive := false
		update.IsActive = &inactive
	}

	updated, err := s.applyTransition(ctx, action, appointment, next, update, check)
	if err != nil {
		return nil, err
	}

	kind := domain.EventCompleted
	if next == domain.StatusNoShow {
		kind = domain.EventNoShow
	}
	s.publish(kind, updated, input.Caller)
	return updated, nil
}

// Edit updates a pending appointment's schedulable fields. Editing a decided
// appointment requires cancel + recreate.
func (s *AppointmentService) Edit(ctx context.Context, input ports.EditInput) (*domain.Appointment, error) {
	defer s.observe("edit")()

	appointment, err := s.load(ctx, "edit", input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, "edit", input.Caller, appointment.OfficeID, editRoles); err != nil {
		return nil, err
	}
	if appointment.Status != domain.StatusPending {
		metrics.TransitionErrorsTotal.WithLabelValues("edit", "invalid_transition").Inc()
		return nil, fmt.Errorf("edit appointment: %w (current status %s)", domain.ErrEditNotAllowed, appointment.Status)
	}

	if input.HostID != nil {
		isHost, err := s.authz.HasRole(ctx, *input.HostID, appointment.OfficeID, domain.RoleHost)
		if err != nil {
			metrics.TransitionErrorsTotal.WithLabelValues("edit", "internal").Inc()
			return nil, fmt.Errorf("edit appointment: verify host: %w", err)
		}
		if !isHost {
			metrics.TransitionErrorsTotal.WithLabelValues("edit", "validation").Inc()
			return nil, fmt.Errorf("%w: host %s is not a host at office %s", domain.ErrValidation, *input.HostID, appointment.OfficeID)
		}
	}

	fields := ports.EditFields{
		Purpose:         input.Purpose,
		AppointmentDate: input.AppointmentDate,
		TimeSlot:        input.TimeSlot,
		HostID:          input.HostID,
	}
	if err := s.appointments.UpdateFields(ctx, appointment.ID, domain.StatusPending, fields); err != nil {
		if errors.Is(err, domain.ErrStatusConflict) {
			// Lost a race with a decision: report it as an edit rule
			// violation against the now-current status.
			current, findErr := s.appointments.FindByID(ctx, appointment.ID)
			if findErr != nil {
				return nil, findErr
			}
			metrics.TransitionErrorsTotal.WithLabelValues("edit", "invalid_transition").Inc()
			return nil, fmt.Errorf("edit appointment: %w (current status %s)", domain.ErrEditNotAllowed, current.Status)
		}
		metrics.TransitionErrorsTotal.WithLabelValues("edit", "internal").Inc()
		return nil, fmt.Errorf("edit appointment: %w", err)
	}

	metrics.TransitionsTotal.WithLabelValues("edit").Inc()
	s.logger.Info().Str("appointment_id", appointment.ID).Msg("appointment edited")
	return s.appointments.FindByID(ctx, appointment.ID)
}

// GetAppointment returns the detail projection for one appointment.
func (s *AppointmentService) GetAppointment(ctx context.Context, input ports.GetAppointmentInput) (*ports.AppointmentDetail, error) {
	detail, err := s.appointments.FindDetail(ctx, input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, "get", input.Caller, detail.Appointment.OfficeID, editRoles); err != nil {
		return nil, err
	}
	return detail, nil
}

// ListAppointments returns a page of detail projections. Listing without an
// office filter requires a global read permission; otherwise the caller must
// hold a staff role at the requested office.
func (s *AppointmentService) ListAppointments(ctx context.Context, input ports.ListAppointmentsInput) (*ports.ListAppointmentsResult, error) {
	if input.OfficeID == "" {
		allowed, err := s.authz.HasPermission(ctx, input.Caller.ID, ports.PermissionReadAllOffices)
		if err != nil {
			return nil, fmt.Errorf("list appointments: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("list appointments: %w", domain.ErrForbidden)
		}
	} else if err := s.authorize(ctx, "list", input.Caller, input.OfficeID, editRoles); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 || limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}

	items, total, err := s.appointments.ListDetails(ctx, ports.ListAppointmentsFilter{
		OfficeID: input.OfficeID,
		HostID:   input.HostID,
		Status:   input.Status,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListAppointmentsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// ── internal helpers ──────────────────────────────────────────────────────────

// load fetches the appointment or records a not_found failure.
func (s *AppointmentService) load(ctx context.Context, action, id string) (*domain.Appointment, error) {
	appointment, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			metrics.TransitionErrorsTotal.WithLabelValues(action, "not_found").Inc()
		} else {
			metrics.TransitionErrorsTotal.WithLabelValues(action, "internal").Inc()
		}
		return nil, err
	}
	return appointment, nil
}

// authorize checks the caller's role at the office and maps a refusal to
// domain.ErrForbidden.
func (s *AppointmentService) authorize(ctx context.Context, action string, caller ports.Caller, officeID string, roles []string) error {
	ok, err := s.authz.HasRole(ctx, caller.ID, officeID, roles...)
	if err != nil {
		metrics.TransitionErrorsTotal.WithLabelValues(action, "internal").Inc()
		return fmt.Errorf("%s appointment: authorize: %w", action, err)
	}
	if !ok {
		metrics.TransitionErrorsTotal.WithLabelValues(action, "forbidden").Inc()
		return fmt.Errorf("%s appointment: %w", action, domain.ErrForbidden)
	}
	return nil
}

// applyTransition performs the conditional status write. When the write loses
// a race (the stored status changed between the read and the write), the
// appointment is re-read and recheck classifies the failure so the loser sees
// the same typed error a fresh request would.
func (s *AppointmentService) applyTransition(
	ctx context.Context,
	action string,
	appointment *domain.Appointment,
	next domain.AppointmentStatus,
	update ports.StatusUpdate,
	recheck func(action string, status domain.AppointmentStatus) error,
) (*domain.Appointment, error) {
	err := s.appointments.UpdateStatusFrom(ctx, appointment.ID, appointment.Status, next, update)
	if err != nil {
		if errors.Is(err, domain.ErrStatusConflict) {
			current, findErr := s.appointments.FindByID(ctx, appointment.ID)
			if findErr != nil {
				return nil, findErr
			}
			if checkErr := recheck(action, current.Status); checkErr != nil {
				return nil, checkErr
			}
			// Status changed and changed back, or moved between two states
			// both legal for this action. Surface the conflict rather than
			// retrying on the caller's behalf.
			metrics.TransitionErrorsTotal.WithLabelValues(action, "invalid_transition").Inc()
			return nil, fmt.Errorf("%s appointment: %w", action, err)
		}
		metrics.TransitionErrorsTotal.WithLabelValues(action, "internal").Inc()
		return nil, fmt.Errorf("%s appointment: %w", action, err)
	}

	metrics.TransitionsTotal.WithLabelValues(action).Inc()
	s.logger.Info().
		Str("appointment_id", appointment.ID).
		Str("office_id", appointment.OfficeID).
		Str("from", string(appointment.Status)).
		Str("to", string(next)).
		Msg("appointment transition applied")

	return s.appointments.FindByID(ctx, appointment.ID)
}

// emit publishes the lifecycle event and schedules the citizen SMS.
func (s *AppointmentService) emit(ctx context.Context, kind string, appointment *domain.Appointment, caller ports.Caller) {
	s.publish(kind, appointment, caller)

	citizen, err := s.citizens.FindByID(ctx, appointment.CitizenID)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("appointment_id", appointment.ID).
			Str("citizen_id", appointment.CitizenID).
			Msg("citizen lookup failed, skipping notification")
		return
	}

	s.notifier.Schedule(ports.Notification{
		Kind:          kind,
		AppointmentID: appointment.ID,
		OfficeID:      appointment.OfficeID,
		Recipient:     citizen.Phone,
		Message:       notificationMessage(kind, appointment),
	})
}

// publish fans the event out without the notification side effect.
func (s *AppointmentService) publish(kind string, appointment *domain.Appointment, caller ports.Caller) {
	s.publisher.Publish(appointment.OfficeID, domain.LifecycleEvent{
		Type:          kind,
		AppointmentID: appointment.ID,
		OfficeID:      appointment.OfficeID,
		Status:        string(appointment.Status),
		ActorID:       caller.ID,
		OccurredAt:    s.now(),
	})
}

// observe returns a closure recording the transition duration.
func (s *AppointmentService) observe(action string) func() {
	start := time.Now()
	return func() {
		metrics.TransitionDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
	}
}

// notificationMessage builds the citizen-facing SMS body for an event kind.
func notificationMessage(kind string, a *domain.Appointment) string {
	const dateLayout = "Mon, 02 Jan 2006 15:04"
	switch kind {
	case domain.EventApproved:
		return fmt.Sprintf("Your appointment on %s has been approved.", a.EffectiveDate().Format(dateLayout))
	case domain.EventDenied:
		if a.DecisionReason != "" {
			return fmt.Sprintf("Your appointment request was denied: %s", a.DecisionReason)
		}
		return "Your appointment request was denied."
	case domain.EventCancelled:
		if a.CanceledReason != "" {
			return fmt.Sprintf("Your appointment has been cancelled: %s", a.CanceledReason)
		}
		return "Your appointment has been cancelled."
	case domain.EventPostponed:
		return fmt.Sprintf("Your appointment has been moved from %s to %s and awaits re-approval.",
			a.AppointmentDate.Format(dateLayout), a.EffectiveDate().Format(dateLayout))
	default:
		return fmt.Sprintf("Your appointment status is now %s.", a.Status)
	}
}

// validateCreateInput rejects malformed creation payloads with ErrValidation.
func validateCreateInput(input ports.CreateAppointmentInput) error {
	switch {
	case input.OfficeID == "":
		return fmt.Errorf("%w: office_id is required", domain.ErrValidation)
	case input.HostID == "":
		return fmt.Errorf("%w: host_id is required", domain.ErrValidation)
	case input.Purpose == "":
		return fmt.Errorf("%w: purpose is required", domain.ErrValidation)
	case input.AppointmentDate.IsZero():
		return fmt.Errorf("%w: appointment_date is required", domain.ErrValidation)
	case input.Citizen.FirstName == "" || input.Citizen.LastName == "":
		return fmt.Errorf("%w: citizen name is required", domain.ErrValidation)
	case input.Citizen.Email == "" && input.Citizen.Phone == "":
		return fmt.Errorf("%w: citizen email or phone is required", domain.ErrValidation)
	}
	return nil
}
