package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

type stubQuoteService struct {
	createFn func(ctx context.Context, input ports.CreateQuoteInput, actor *domain.User) (*domain.Quote, error)
	listFn   func(ctx context.Context, actor *domain.User) ([]*domain.Quote, error)
}

func (s *stubQuoteService) Create(ctx context.Context, input ports.CreateQuoteInput, actor *domain.User) (*domain.Quote, error) {
	return s.createFn(ctx, input, actor)
}

func (s *stubQuoteService) List(ctx context.Context, actor *domain.User) ([]*domain.Quote, error) {
	return s.listFn(ctx, actor)
}

func TestQuoteHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	pro := &domain.User{ID: 3, Email: "bob@example.com", Role: domain.RoleProfessional}
	stub := &stubQuoteService{
		createFn: func(ctx context.Context, input ports.CreateQuoteInput, actor *domain.User) (*domain.Quote, error) {
			if input.JobID != 12 || input.Amount != 150.5 || input.Notes != "parts included" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Quote{ID: 1, JobID: input.JobID, ProfessionalID: actor.ID, Amount: input.Amount, Status: domain.QuoteStatusPending}, nil
		},
	}
	handler := NewQuoteHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/quotes/12?amount=150.5&notes=parts+included", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, pro)
	c.SetParamNames("job_id")
	c.SetParamValues("12")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "pending" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestQuoteHandler_Create_MissingAmount(t *testing.T) {
	e := newTestEcho()
	stub := &stubQuoteService{
		createFn: func(ctx context.Context, input ports.CreateQuoteInput, actor *domain.User) (*domain.Quote, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewQuoteHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/quotes/12", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, &domain.User{ID: 3, Role: domain.RoleProfessional})
	c.SetParamNames("job_id")
	c.SetParamValues("12")

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQuoteHandler_Create_NonFiniteAmount(t *testing.T) {
	e := newTestEcho()
	stub := &stubQuoteService{
		createFn: func(ctx context.Context, input ports.CreateQuoteInput, actor *domain.User) (*domain.Quote, error) {
			t.Fatalf("non-finite amount reached the service: %v", input.Amount)
			return nil, nil
		},
	}
	handler := NewQuoteHandler(stub)

	// ParseFloat accepts these spellings; a stored NaN would poison
	// every later listing since it cannot be JSON-encoded.
	for _, amount := range []string{"NaN", "nan", "+Inf", "Inf", "-Inf"} {
		req := httptest.NewRequest(http.MethodPost, "/quotes/12?amount="+url.QueryEscape(amount), nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, &domain.User{ID: 3, Role: domain.RoleProfessional})
		c.SetParamNames("job_id")
		c.SetParamValues("12")

		_ = handler.Create(c)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("amount=%s: expected 400, got %d", amount, rec.Code)
		}
	}
}

func TestQuoteHandler_Create_CustomerForbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubQuoteService{
		createFn: func(ctx context.Context, input ports.CreateQuoteInput, actor *domain.User) (*domain.Quote, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewQuoteHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/quotes/12?amount=99", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, &domain.User{ID: 1, Role: domain.RoleCustomer})
	c.SetParamNames("job_id")
	c.SetParamValues("12")

	_ = handler.Create(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestQuoteHandler_List(t *testing.T) {
	e := newTestEcho()
	pro := &domain.User{ID: 3, Role: domain.RoleProfessional}
	stub := &stubQuoteService{
		listFn: func(ctx context.Context, actor *domain.User) ([]*domain.Quote, error) {
			return []*domain.Quote{
				{ID: 1, JobID: 12, ProfessionalID: actor.ID, Amount: 150.5, Status: domain.QuoteStatusPending},
			}, nil
		},
	}
	handler := NewQuoteHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec := httptest.NewRecorder()

	if err := handler.List(authedContext(e, req, rec, pro)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["job_id"] != float64(12) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
