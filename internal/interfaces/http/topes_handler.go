package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Expedientes-api/internal/application/compras"
	"github.com/jhoicas/Expedientes-api/internal/application/dto"
)

// TopesHandler expone la tabla de topes de contratación (protegido).
type TopesHandler struct {
	uc *compras.TopesUseCase
}

// NewTopesHandler construye el handler.
func NewTopesHandler(uc *compras.TopesUseCase) *TopesHandler {
	return &TopesHandler{uc: uc}
}

// List GET /api/config-topes
func (h *TopesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update cambia el monto máximo de un tipo de contratación (sólo admin).
// PUT /api/config-topes/:tipo
func (h *TopesHandler) Update(c *fiber.Ctx) error {
	tipo, err := url.PathUnescape(c.Params("tipo"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de contratación inválido"})
	}
	var in dto.UpdateTopeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), tipo, in.MontoMaximo)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
