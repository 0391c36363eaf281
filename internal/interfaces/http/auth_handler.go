package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/chaintrace-api/internal/application/dto"
	"github.com/tu-usuario/chaintrace-api/pkg/jwt"
)

// AuthHandler emite tokens de desarrollo. Sólo se monta en entorno development:
// en producción los tokens vienen del proveedor de identidad externo.
type AuthHandler struct {
	secret     string
	issuer     string
	expMinutes int
}

// NewAuthHandler construye el handler.
func NewAuthHandler(secret, issuer string, expMinutes int) *AuthHandler {
	return &AuthHandler{secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// DevToken godoc
// @Summary      Emitir token de desarrollo para un principal
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DevTokenRequest  true  "Principal (vacío genera uno nuevo)"
// @Success      200   {object}  dto.DevTokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/dev-token [post]
func (h *AuthHandler) DevToken(c *fiber.Ctx) error {
	var in dto.DevTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	principal := in.Principal
	if principal == "" {
		principal = uuid.New().String()
	}
	token, err := jwt.Generate(h.secret, principal, h.issuer, h.expMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DevTokenResponse{Token: token, Principal: principal})
}
