package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dkolor/cotizador-api/internal/application/usecase"
)

// DashboardHandler expone los contadores del panel principal.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Contadores del panel
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.uc.Stats())
}
