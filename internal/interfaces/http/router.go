package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Expedientes-api/internal/application/compras"
)

// Roles reconocidos en el token.
const (
	RoleAdmin    = "admin"
	RoleCompras  = "compras"
	RoleConsulta = "consulta"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PrepararOC *compras.PrepararOCUseCase
	Ordenes    *compras.OrdenCompraUseCase
	Documentos *compras.DocumentosUseCase
	Topes      *compras.TopesUseCase
	Licencias  *LicenciaHandler
	Metrics    fiber.Handler
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics)
	}

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Topes de contratación
	topes := protected.Group("/config-topes")
	topesHandler := NewTopesHandler(deps.Topes)
	topes.Get("/", topesHandler.List)
	topes.Put("/:tipo", RequireRole(RoleAdmin), topesHandler.Update)

	// Órdenes de compra
	ocHandler := NewOrdenCompraHandler(deps.PrepararOC, deps.Ordenes, deps.Documentos)
	protected.Post("/expedientes/:id/orden-compra/preparar", ocHandler.Preparar)

	ordenes := protected.Group("/ordenes-compra")
	ordenes.Post("/recalcular", ocHandler.Recalcular)
	ordenes.Post("/pdf", ocHandler.PDF)
	ordenes.Get("/export", ocHandler.Export)
	ordenes.Post("/", ocHandler.Create)
	ordenes.Get("/", ocHandler.List)
	ordenes.Get("/:id", ocHandler.GetByID)
	ordenes.Get("/:id/pdf", ocHandler.PDFByID)

	// Licencias
	licencias := protected.Group("/licencias")
	licenciaHandler := deps.Licencias
	if licenciaHandler == nil {
		licenciaHandler = NewLicenciaHandler(nil, nil)
	}
	licencias.Get("/semaforo", licenciaHandler.Semaforo)
}
