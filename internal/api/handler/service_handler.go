package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handypro/connect-api/internal/core/domain"
)

// ServiceHandler serves the public catalog of offered service categories.
type ServiceHandler struct{}

func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

// List returns the service catalog.
//
// @Summary      List available service categories
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Catalog())
}
