package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointment lifecycle
// operations. All domain errors flow to the central error handler.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Create handles POST /v1/appointments.
//
// @Summary      Create an appointment together with its citizen
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  createAppointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	result, err := h.service.CreateWithCitizen(c.Request().Context(), toCreateInput(req, caller))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createAppointmentResponse{
		Appointment:   toAppointmentResponse(&result.Appointment),
		Citizen:       toCitizenResponse(&result.Citizen),
		CitizenReused: result.CitizenReused,
	})
}

// Get handles GET /v1/appointments/:id — the joined detail projection.
//
// @Summary      Get an appointment's detail view
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  appointmentDetailResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetAppointment(c.Request().Context(), ports.GetAppointmentInput{
		AppointmentID: c.Param("id"),
		Caller:        caller,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDetailResponse(detail))
}

// List handles GET /v1/appointments.
//
// @Summary      List appointment detail views
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        office_id  query     string  false  "Filter by office"
// @Param        host_id    query     string  false  "Filter by host"
// @Param        status     query     string  false  "Filter by lifecycle status"
// @Param        date_from  query     string  false  "Scheduled on or after (RFC 3339)"
// @Param        date_to    query     string  false  "Scheduled on or before (RFC 3339)"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  listAppointmentsResponse
// @Failure      403        {object}  errorResponse
// @Router       /v1/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	input := ports.ListAppointmentsInput{
		Caller:   caller,
		OfficeID: c.QueryParam("office_id"),
		HostID:   c.QueryParam("host_id"),
		Status:   c.QueryParam("status"),
	}
	if v := c.QueryParam("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_from must be RFC 3339")
		}
		input.DateFrom = t
	}
	if v := c.QueryParam("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_to must be RFC 3339")
		}
		input.DateTo = t
	}
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListAppointments(c.Request().Context(), input)
	if err != nil {
		return err
	}

	items := make([]appointmentDetailResponse, 0, len(result.Items))
	for _, d := range result.Items {
		items = append(items, toDetailResponse(d))
	}

	return c.JSON(http.StatusOK, listAppointmentsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Edit handles PATCH /v1/appointments/:id. Only pending appointments are
// editable.
//
// @Summary      Edit a pending appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Appointment id"
// @Param        body  body      editAppointmentRequest  true  "Fields to change"
// @Success      200   {object}  appointmentResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/appointments/{id} [patch]
func (h *AppointmentHandler) Edit(c echo.Context) error {
	var req editAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Edit(c.Request().Context(), ports.EditInput{
		AppointmentID:   c.Param("id"),
		Caller:          caller,
		Purpose:         req.Purpose,
		AppointmentDate: req.AppointmentDate,
		TimeSlot:        req.TimeSlot,
		HostID:          req.HostID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentResponse(updated))
}

// Approve handles POST /v1/appointments/:id/approve.
//
// @Summary      Approve a pending appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true   "Appointment id"
// @Param        body  body      approveRequest  false  "Optional decision reason"
// @Success      200   {object}  appointmentResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/appointments/{id}/approve [post]
func (h *AppointmentHandler) Approve(c echo.Context) error {
	var req approveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Approve(c.Request().Context(), ports.DecisionInput{
		AppointmentID: c.Param("id"),
		Caller:        caller,
		Reason:        req.Reason,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentResponse(updated))
}

// Deny handles POST /v1/appointments/:id/deny.
//
// @Summary      Deny a pending appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Appointment id"
// @Param        body  body      denyRequest  true  "Denial reason"
// @Success      200   {object}  appointmentResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/appointments/{id}/deny [post]
func (h *AppointmentHandler) Deny(c echo.Context) error {
	var req denyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Deny(c.Request().Context(), ports.DecisionInput{
		AppointmentID: c.Param("id"),
		Caller:        caller,
		Reason:        req.Reason,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentResponse(updated))
}

// Cancel handles POST /v1/appointments/:id/cancel.
//
// @Summary      Cancel a pending or approved appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Appointment id"
// @Param        body  body      cancelRequest  true  "Cancellation reason"
// @Success      200   {object}  appointmentResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	var req cancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Cancel(c.Request().Context(), ports.CancelInput{
		AppointmentID: c.Param("id"),
		Caller:        caller,
		Reason:        req.Reason,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentResponse(updated))
}

// Postpone handles POST /v1/appointments/:id/postpone.
//
// @Summary      Postpone an approved appointment to a new date
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Appointment id"
// @Param        body  body      postponeRequest  true  "New date and optional reason"
// @Success      200   {object}  appointmentResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/appointments/{id}/postpone [post]
func (h *AppointmentHandler) Postpone(c echo.Context) error {
	var req postponeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Postpone(c.Request().Context(), ports.PostponeInput{
		AppointmentID: c.Param("id"),
		Caller:        caller,
		NewDate:       req.NewDate,
		Reason:        req.Reason,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentResponse(updated))
}

// Complete handles POST /v1/appointments/:id/complete.
//
// @Summary      Mark an approved appointment as completed
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Complete(c.Request().Context(), ports.CompleteInput{
		AppointmentID: c.Param("id"),
		Caller:        caller,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentResponse(updated))
}

// NoShow handles POST /v1/appointments/:id/no-show.
//
// @Summary      Mark an approved appointment whose date passed as a no-show
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/appointments/{id}/no-show [post]
func (h *AppointmentHandler) NoShow(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	updated, err := h.service.MarkNoShow(c.Request().Context(), ports.CompleteInput{
		AppointmentID: c.Param("id"),
		Caller:        caller,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentResponse(updated))
}
