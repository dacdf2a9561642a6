package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Expedientes-api/internal/application/compras"
	"github.com/jhoicas/Expedientes-api/internal/application/dto"
)

// OrdenCompraHandler maneja la preparación, edición y emisión de órdenes de compra (protegido).
type OrdenCompraHandler struct {
	preparar   *compras.PrepararOCUseCase
	ordenes    *compras.OrdenCompraUseCase
	documentos *compras.DocumentosUseCase
}

// NewOrdenCompraHandler construye el handler.
func NewOrdenCompraHandler(preparar *compras.PrepararOCUseCase, ordenes *compras.OrdenCompraUseCase, documentos *compras.DocumentosUseCase) *OrdenCompraHandler {
	return &OrdenCompraHandler{preparar: preparar, ordenes: ordenes, documentos: documentos}
}

// Preparar arma el borrador de OC de un expediente de pago y le asigna numeración.
// POST /api/expedientes/:id/orden-compra/preparar
func (h *OrdenCompraHandler) Preparar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de expediente inválido"})
	}
	borrador, err := h.preparar.Preparar(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(compras.ToBorradorResponse(borrador))
}

// Recalcular devuelve totales, tipo de contratación y letras para los renglones editados.
// POST /api/ordenes-compra/recalcular
func (h *OrdenCompraHandler) Recalcular(c *fiber.Ctx) error {
	var in dto.RecalcularRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ordenes.Recalcular(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create persiste la orden aprobada.
// POST /api/ordenes-compra
func (h *OrdenCompraHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearOrdenCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ordenes.Crear(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista las órdenes más recientes.
// GET /api/ordenes-compra?limit=&offset=
func (h *OrdenCompraHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.ordenes.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve la orden con sus renglones.
// GET /api/ordenes-compra/:id
func (h *OrdenCompraHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.ordenes.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF dibuja la OC enviada en el body (sin persistirla).
// POST /api/ordenes-compra/pdf
func (h *OrdenCompraHandler) PDF(c *fiber.Ctx) error {
	var in dto.CrearOrdenCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.documentos.RenderPDF(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDFByID dibuja una OC guardada.
// GET /api/ordenes-compra/:id/pdf
func (h *OrdenCompraHandler) PDFByID(c *fiber.Ctx) error {
	out, err := h.documentos.RenderPDFByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export genera la planilla con las órdenes.
// GET /api/ordenes-compra/export
func (h *OrdenCompraHandler) Export(c *fiber.Ctx) error {
	out, err := h.documentos.ExportarOrdenes(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
