package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/handypro/connect-api/internal/api/middleware"
	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

type stubJobService struct {
	createFn       func(ctx context.Context, input ports.CreateJobInput, actor *domain.User) (*domain.Job, error)
	listFn         func(ctx context.Context, actor *domain.User) ([]*domain.Job, error)
	listOpenFn     func(ctx context.Context, actor *domain.User) ([]*domain.Job, error)
	getFn          func(ctx context.Context, id int64, actor *domain.User) (*domain.Job, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.JobStatus, actor *domain.User) (*domain.Job, error)
}

func (s *stubJobService) Create(ctx context.Context, input ports.CreateJobInput, actor *domain.User) (*domain.Job, error) {
	return s.createFn(ctx, input, actor)
}

func (s *stubJobService) List(ctx context.Context, actor *domain.User) ([]*domain.Job, error) {
	return s.listFn(ctx, actor)
}

func (s *stubJobService) ListOpen(ctx context.Context, actor *domain.User) ([]*domain.Job, error) {
	return s.listOpenFn(ctx, actor)
}

func (s *stubJobService) Get(ctx context.Context, id int64, actor *domain.User) (*domain.Job, error) {
	return s.getFn(ctx, id, actor)
}

func (s *stubJobService) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus, actor *domain.User) (*domain.Job, error) {
	return s.updateStatusFn(ctx, id, status, actor)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, user *domain.User) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.UserContextKey, user)
	return c
}

func TestJobHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	customer := &domain.User{ID: 1, Email: "anna@example.com", Role: domain.RoleCustomer}
	stub := &stubJobService{
		createFn: func(ctx context.Context, input ports.CreateJobInput, actor *domain.User) (*domain.Job, error) {
			if input.Title != "Fix kitchen sink" || actor.ID != 1 {
				t.Fatalf("unexpected args: %+v actor=%d", input, actor.ID)
			}
			return &domain.Job{ID: 10, Title: input.Title, Urgency: "urgent", Status: domain.JobStatusOpen, CustomerID: actor.ID}, nil
		},
	}
	handler := NewJobHandler(stub)

	body := strings.NewReader(`{"title":"Fix kitchen sink","description":"Leaking trap","location":"Springfield","urgency":"urgent"}`)
	req := httptest.NewRequest(http.MethodPost, "/jobs", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := handler.Create(authedContext(e, req, rec, customer)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "open" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestJobHandler_Create_InvalidUrgency(t *testing.T) {
	e := newTestEcho()
	stub := &stubJobService{
		createFn: func(ctx context.Context, input ports.CreateJobInput, actor *domain.User) (*domain.Job, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewJobHandler(stub)

	body := strings.NewReader(`{"title":"Fix sink","description":"x","location":"y","urgency":"yesterday"}`)
	req := httptest.NewRequest(http.MethodPost, "/jobs", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = handler.Create(authedContext(e, req, rec, &domain.User{ID: 1, Role: domain.RoleCustomer}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestJobHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubJobService{
		getFn: func(ctx context.Context, id int64, actor *domain.User) (*domain.Job, error) {
			return nil, domain.ErrJobNotFound
		},
	}
	handler := NewJobHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/jobs/42", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, &domain.User{ID: 2, Role: domain.RoleCustomer})
	c.SetParamNames("id")
	c.SetParamValues("42")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestJobHandler_Get_NonNumericID(t *testing.T) {
	e := newTestEcho()
	stub := &stubJobService{
		getFn: func(ctx context.Context, id int64, actor *domain.User) (*domain.Job, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewJobHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/jobs/abc", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, &domain.User{ID: 2, Role: domain.RoleCustomer})
	c.SetParamNames("id")
	c.SetParamValues("abc")

	_ = handler.Get(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestJobHandler_ListOpen_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubJobService{
		listOpenFn: func(ctx context.Context, actor *domain.User) ([]*domain.Job, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewJobHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/jobs/open", nil)
	rec := httptest.NewRecorder()

	_ = handler.ListOpen(authedContext(e, req, rec, &domain.User{ID: 2, Role: domain.RoleCustomer}))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestJobHandler_UpdateStatus_InvalidTransition(t *testing.T) {
	e := newTestEcho()
	stub := &stubJobService{
		updateStatusFn: func(ctx context.Context, id int64, status domain.JobStatus, actor *domain.User) (*domain.Job, error) {
			return nil, domain.ErrInvalidTransition
		},
	}
	handler := NewJobHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/jobs/10/status", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, &domain.User{ID: 1, Role: domain.RoleCustomer})
	c.SetParamNames("id")
	c.SetParamValues("10")

	_ = handler.UpdateStatus(c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestJobHandler_UpdateStatus_NotOwner(t *testing.T) {
	e := newTestEcho()
	stub := &stubJobService{
		updateStatusFn: func(ctx context.Context, id int64, status domain.JobStatus, actor *domain.User) (*domain.Job, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewJobHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/jobs/10/status", strings.NewReader(`{"status":"cancelled"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, &domain.User{ID: 9, Role: domain.RoleCustomer})
	c.SetParamNames("id")
	c.SetParamValues("10")

	_ = handler.UpdateStatus(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
