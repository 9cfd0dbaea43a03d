package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/ports"
)

// stubAppointmentService records the last input per operation and returns
// canned results.
type stubAppointmentService struct {
	createFn   func(ctx context.Context, input ports.CreateAppointmentInput) (*ports.CreateAppointmentResult, error)
	decisionFn func(ctx context.Context, input ports.DecisionInput) (*domain.Appointment, error)
	cancelFn   func(ctx context.Context, input ports.CancelInput) (*domain.Appointment, error)
	postponeFn func(ctx context.Context, input ports.PostponeInput) (*domain.Appointment, error)
	completeFn func(ctx context.Context, input ports.CompleteInput) (*domain.Appointment, error)
	editFn     func(ctx context.Context, input ports.EditInput) (*domain.Appointment, error)
	getFn      func(ctx context.Context, input ports.GetAppointmentInput) (*ports.AppointmentDetail, error)
	listFn     func(ctx context.Context, input ports.ListAppointmentsInput) (*ports.ListAppointmentsResult, error)
}

func (s *stubAppointmentService) CreateWithCitizen(ctx context.Context, input ports.CreateAppointmentInput) (*ports.CreateAppointmentResult, error) {
	return s.createFn(ctx, input)
}
func (s *stubAppointmentService) Approve(ctx context.Context, input ports.DecisionInput) (*domain.Appointment, error) {
	return s.decisionFn(ctx, input)
}
func (s *stubAppointmentService) Deny(ctx context.Context, input ports.DecisionInput) (*domain.Appointment, error) {
	return s.decisionFn(ctx, input)
}
func (s *stubAppointmentService) Cancel(ctx context.Context, input ports.CancelInput) (*domain.Appointment, error) {
	return s.cancelFn(ctx, input)
}
func (s *stubAppointmentService) Postpone(ctx context.Context, input ports.PostponeInput) (*domain.Appointment, error) {
	return s.postponeFn(ctx, input)
}
func (s *stubAppointmentService) Complete(ctx context.Context, input ports.CompleteInput) (*domain.Appointment, error) {
	return s.completeFn(ctx, input)
}
func (s *stubAppointmentService) MarkNoShow(ctx context.Context, input ports.CompleteInput) (*domain.Appointment, error) {
	return s.completeFn(ctx, input)
}
func (s *stubAppointmentService) Edit(ctx context.Context, input ports.EditInput) (*domain.Appointment, error) {
	return s.editFn(ctx, input)
}
func (s *stubAppointmentService) GetAppointment(ctx context.Context, input ports.GetAppointmentInput) (*ports.AppointmentDetail, error) {
	return s.getFn(ctx, input)
}
func (s *stubAppointmentService) ListAppointments(ctx context.Context, input ports.ListAppointmentsInput) (*ports.ListAppointmentsResult, error) {
	return s.listFn(ctx, input)
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "sec-1")
	c.Set("role", "secretary")
	return c, rec
}

func sampleAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              "appt-1",
		OfficeID:        "office-1",
		HostID:          "host-1",
		CitizenID:       "cit-1",
		Purpose:         "permit renewal",
		AppointmentDate: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Status:          status,
		IsActive:        true,
	}
}

func TestAppointmentHandler_Create_Success(t *testing.T) {
	stub := &stubAppointmentService{
		createFn: func(_ context.Context, input ports.CreateAppointmentInput) (*ports.CreateAppointmentResult, error) {
			if input.Caller.ID != "sec-1" || input.Caller.Role != "secretary" {
				t.Fatalf("caller not propagated: %+v", input.Caller)
			}
			if input.OfficeID != "office-1" || input.Citizen.FirstName != "Ana" {
				t.Fatalf("payload not bound: %+v", input)
			}
			return &ports.CreateAppointmentResult{
				Appointment: *sampleAppointment(domain.StatusPending),
				Citizen:     domain.Citizen{ID: "cit-1", FirstName: "Ana", LastName: "Lee"},
			}, nil
		},
	}
	h := NewAppointmentHandler(stub)

	body := `{
		"citizen": {"first_name": "Ana", "last_name": "Lee", "email": "ana@example.com"},
		"office_id": "office-1",
		"host_id": "host-1",
		"purpose": "permit renewal",
		"appointment_date": "2026-03-15T10:00:00Z",
		"time_slot": "10:00-10:30"
	}`
	c, rec := newContext(t, http.MethodPost, "/v1/appointments", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	appt, ok := resp["appointment"].(map[string]any)
	if !ok || appt["status"] != "pending" {
		t.Fatalf("unexpected appointment payload: %+v", resp)
	}
	if _, ok := resp["citizen_reused"]; !ok {
		t.Fatal("citizen_reused missing from response")
	}
}

func TestAppointmentHandler_Create_InvalidJSON(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentService{})

	c, _ := newContext(t, http.MethodPost, "/v1/appointments", "not-json")

	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAppointmentHandler_Create_MissingFields(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentService{
		createFn: func(context.Context, ports.CreateAppointmentInput) (*ports.CreateAppointmentResult, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	})

	c, _ := newContext(t, http.MethodPost, "/v1/appointments", `{"office_id": "office-1"}`)

	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAppointmentHandler_Create_NoIdentity(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentService{})

	e := echo.New()
	e.Validator = NewValidator()
	body := `{
		"citizen": {"first_name": "Ana", "last_name": "Lee", "email": "ana@example.com"},
		"office_id": "office-1", "host_id": "host-1", "purpose": "x",
		"appointment_date": "2026-03-15T10:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/appointments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError without identity, got %v", err)
	}
}

func TestAppointmentHandler_Approve_Success(t *testing.T) {
	stub := &stubAppointmentService{
		decisionFn: func(_ context.Context, input ports.DecisionInput) (*domain.Appointment, error) {
			if input.AppointmentID != "appt-1" {
				t.Fatalf("id not bound: %q", input.AppointmentID)
			}
			if input.Reason != "slot free" {
				t.Fatalf("reason not bound: %q", input.Reason)
			}
			a := sampleAppointment(domain.StatusApproved)
			return a, nil
		},
	}
	h := NewAppointmentHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/v1/appointments/appt-1/approve", `{"reason":"slot free"}`)
	c.SetParamNames("id")
	c.SetParamValues("appt-1")

	if err := h.Approve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["status"] != "approved" {
		t.Fatalf("expected approved in response, got %v", resp["status"])
	}
}

func TestAppointmentHandler_Approve_ServiceErrorPropagates(t *testing.T) {
	stub := &stubAppointmentService{
		decisionFn: func(context.Context, ports.DecisionInput) (*domain.Appointment, error) {
			return nil, domain.ErrAlreadyApproved
		},
	}
	h := NewAppointmentHandler(stub)

	c, _ := newContext(t, http.MethodPost, "/v1/appointments/appt-1/approve", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("appt-1")

	// Domain errors pass through to the central error handler untouched.
	if err := h.Approve(c); !errors.Is(err, domain.ErrAlreadyApproved) {
		t.Fatalf("expected ErrAlreadyApproved, got %v", err)
	}
}

func TestAppointmentHandler_Deny_RequiresReason(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentService{
		decisionFn: func(context.Context, ports.DecisionInput) (*domain.Appointment, error) {
			t.Fatal("service must not be called without a reason")
			return nil, nil
		},
	})

	c, _ := newContext(t, http.MethodPost, "/v1/appointments/appt-1/deny", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("appt-1")

	err := h.Deny(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAppointmentHandler_Postpone_BindsNewDate(t *testing.T) {
	wantDate := time.Date(2026, 3, 22, 10, 0, 0, 0, time.UTC)
	stub := &stubAppointmentService{
		postponeFn: func(_ context.Context, input ports.PostponeInput) (*domain.Appointment, error) {
			if !input.NewDate.Equal(wantDate) {
				t.Fatalf("new date not bound: %v", input.NewDate)
			}
			a := sampleAppointment(domain.StatusPostponed)
			a.NewAppointmentDate = &wantDate
			return a, nil
		},
	}
	h := NewAppointmentHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/v1/appointments/appt-1/postpone",
		`{"new_appointment_date":"2026-03-22T10:00:00Z","reason":"host away"}`)
	c.SetParamNames("id")
	c.SetParamValues("appt-1")

	if err := h.Postpone(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["new_appointment_date"] != "2026-03-22T10:00:00Z" {
		t.Fatalf("expected new_appointment_date in response, got %v", resp["new_appointment_date"])
	}
}

func TestAppointmentHandler_List_ParsesQuery(t *testing.T) {
	stub := &stubAppointmentService{
		listFn: func(_ context.Context, input ports.ListAppointmentsInput) (*ports.ListAppointmentsResult, error) {
			if input.OfficeID != "office-1" || input.Status != "pending" || input.Page != 2 || input.Limit != 5 {
				t.Fatalf("query not parsed: %+v", input)
			}
			return &ports.ListAppointmentsResult{
				Items: []*ports.AppointmentDetail{{
					Appointment: *sampleAppointment(domain.StatusPending),
					Host:        ports.HostInfo{ID: "host-1", Username: "host"},
					Citizen:     ports.CitizenInfo{ID: "cit-1", FirstName: "Ana"},
				}},
				Total: 11, Page: 2, Limit: 5, TotalPages: 3,
			}, nil
		},
	}
	h := NewAppointmentHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/v1/appointments?office_id=office-1&status=pending&page=2&limit=5", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	pagination, ok := resp["pagination"].(map[string]any)
	if !ok || pagination["total"] != float64(11) || pagination["total_pages"] != float64(3) {
		t.Fatalf("unexpected pagination: %+v", resp["pagination"])
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected 1 item, got %+v", resp["data"])
	}
}

func TestAppointmentHandler_List_RejectsBadDate(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentService{})

	c, _ := newContext(t, http.MethodGet, "/v1/appointments?date_from=yesterday", "")

	err := h.List(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAppointmentHandler_Get_ReturnsDetail(t *testing.T) {
	stub := &stubAppointmentService{
		getFn: func(_ context.Context, input ports.GetAppointmentInput) (*ports.AppointmentDetail, error) {
			if input.AppointmentID != "appt-1" {
				t.Fatalf("id not bound: %q", input.AppointmentID)
			}
			return &ports.AppointmentDetail{
				Appointment: *sampleAppointment(domain.StatusApproved),
				Host:        ports.HostInfo{ID: "host-1", Username: "hosty"},
				Citizen:     ports.CitizenInfo{ID: "cit-1", FirstName: "Ana", LastName: "Lee"},
			}, nil
		},
	}
	h := NewAppointmentHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/v1/appointments/appt-1", "")
	c.SetParamNames("id")
	c.SetParamValues("appt-1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	host, ok := resp["host"].(map[string]any)
	if !ok || host["username"] != "hosty" {
		t.Fatalf("host not rendered: %+v", resp["host"])
	}
	citizen, ok := resp["citizen"].(map[string]any)
	if !ok || citizen["first_name"] != "Ana" {
		t.Fatalf("citizen not rendered: %+v", resp["citizen"])
	}
	if resp["status"] != "approved" {
		t.Fatalf("appointment fields must render inline, got %v", resp["status"])
	}
}

func TestAppointmentHandler_Edit_BindsPointers(t *testing.T) {
	stub := &stubAppointmentService{
		editFn: func(_ context.Context, input ports.EditInput) (*domain.Appointment, error) {
			if input.Purpose == nil || *input.Purpose != "passport collection" {
				t.Fatalf("purpose not bound: %v", input.Purpose)
			}
			if input.TimeSlot != nil {
				t.Fatalf("omitted field must stay nil, got %v", *input.TimeSlot)
			}
			a := sampleAppointment(domain.StatusPending)
			a.Purpose = *input.Purpose
			return a, nil
		},
	}
	h := NewAppointmentHandler(stub)

	c, rec := newContext(t, http.MethodPatch, "/v1/appointments/appt-1", `{"purpose":"passport collection"}`)
	c.SetParamNames("id")
	c.SetParamValues("appt-1")

	if err := h.Edit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
