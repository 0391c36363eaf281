package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/chaintrace-api/internal/application/dto"
	"github.com/tu-usuario/chaintrace-api/internal/application/usecase"
)

// EventHandler maneja las peticiones HTTP del ledger de eventos.
type EventHandler struct {
	uc *usecase.EventUseCase
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// Add godoc
// @Summary      Añadir evento al ledger de un producto
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddEventRequest  true  "Datos del evento"
// @Success      201   {object}  dto.AddEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Add(c *fiber.Ctx) error {
	principal := GetPrincipal(c)
	if principal == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "principal requerido"})
	}
	var in dto.AddEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.Stage == "" || in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, stage y status son requeridos"})
	}
	out, err := h.uc.Add(principal, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProduct godoc
// @Summary      Historial de eventos de un producto
// @Tags         events
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.EventListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/events [get]
func (h *EventHandler) ListByProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.List(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
