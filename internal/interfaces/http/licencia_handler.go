package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Expedientes-api/internal/application/dto"
	"github.com/jhoicas/Expedientes-api/internal/domain/licencia"
	"github.com/jhoicas/Expedientes-api/pkg/clock"
)

// LicenciaHandler semáforo de vencimiento de licencias (protegido).
type LicenciaHandler struct {
	clock clock.Clock
	loc   *time.Location
}

// NewLicenciaHandler construye el handler.
func NewLicenciaHandler(clk clock.Clock, loc *time.Location) *LicenciaHandler {
	if clk == nil {
		clk = clock.System{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &LicenciaHandler{clock: clk, loc: loc}
}

// Semaforo GET /api/licencias/semaforo?vence=YYYY-MM-DD
func (h *LicenciaHandler) Semaforo(c *fiber.Ctx) error {
	vence, err := time.ParseInLocation("2006-01-02", c.Query("vence"), h.loc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "vence debe tener formato AAAA-MM-DD"})
	}
	now := h.clock.Now().In(h.loc)
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	r := licencia.Semaforo(vence, hoy)
	return c.JSON(dto.SemaforoResponse{
		Vence:         vence.Format("2006-01-02"),
		Estado:        string(r.Estado),
		Dias:          r.Dias,
		DiasRestantes: r.DiasRestantes,
		Vencida:       r.Vencida,
	})
}
