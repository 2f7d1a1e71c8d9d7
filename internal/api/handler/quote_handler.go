package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/handypro/connect-api/internal/api/metrics"
	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

// QuoteHandler handles HTTP requests for quote operations.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// List returns the quotes visible to the caller.
//
// @Summary      List quotes visible to the caller
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Quote
// @Failure      401  {object}  errorResponse
// @Router       /quotes [get]
func (h *QuoteHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	quotes, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quotes)
}

// Create submits a quote on a job. Amount and notes arrive as query
// parameters, matching the public surface.
//
// @Summary      Submit a quote on a job
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        job_id  path      int     true   "Job id"
// @Param        amount  query     number  true   "Quoted amount"
// @Param        notes   query     string  false  "Notes for the customer"
// @Success      201     {object}  domain.Quote
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /quotes/{job_id} [post]
func (h *QuoteHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid job id"})
	}

	// ParseFloat accepts "NaN" and "Inf"; neither survives JSON
	// encoding, so they must not reach the store.
	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "amount must be a positive number"})
	}

	quote, err := h.service.Create(c.Request().Context(), ports.CreateQuoteInput{
		JobID:  jobID,
		Amount: amount,
		Notes:  c.QueryParam("notes"),
	}, user)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusForbidden, errorResponse{Error: "only professionals can submit quotes"})
		}
		return err
	}

	metrics.QuotesSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, quote)
}
