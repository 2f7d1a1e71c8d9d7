package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/handypro/connect-api/internal/api/metrics"
	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List returns the jobs visible to the caller.
//
// @Summary      List jobs visible to the caller
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Job
// @Failure      401  {object}  errorResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Create posts a new job owned by the caller.
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	job, err := h.service.Create(c.Request().Context(), ports.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Urgency:     req.Urgency,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		ServiceID:   req.ServiceID,
	}, user)
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(job.Urgency).Inc()
	return c.JSON(http.StatusCreated, job)
}

// ListOpen returns open jobs. Professionals only; the RBAC middleware
// rejects other roles before this handler runs.
//
// @Summary      List open jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Job
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /jobs/open [get]
func (h *JobHandler) ListOpen(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.ListOpen(c.Request().Context(), user)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusForbidden, errorResponse{Error: "only professionals can view open jobs"})
		}
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get returns a single job by id.
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job id"
// @Success      200  {object}  domain.Job
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid job id"})
	}

	job, err := h.service.Get(c.Request().Context(), id, user)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "job not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// UpdateStatus moves a job through its lifecycle.
//
// @Summary      Update job status
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Job id"
// @Param        body  body      updateJobStatusRequest  true  "New status"
// @Success      200   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid job id"})
	}

	var req updateJobStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	job, err := h.service.UpdateStatus(c.Request().Context(), id, domain.JobStatus(req.Status), user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "job not found"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
		case errors.Is(err, domain.ErrInvalidTransition):
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, job)
}
