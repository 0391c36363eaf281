package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/chaintrace-api/internal/application/usecase"
)

// AnalyticsHandler maneja las peticiones HTTP de agregados (público).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Analytics godoc
// @Summary      Agregados de la cadena de suministro
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.AnalyticsResponse
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.uc.GetAnalytics()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Status godoc
// @Summary      Estado operativo del servicio
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.ServiceStatusResponse
// @Router       /api/status [get]
func (h *AnalyticsHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.GetStatus()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
