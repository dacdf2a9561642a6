package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Órdenes de compra
	ErrNotEligible       = errors.New("el expediente no es de tipo pago")
	ErrInvalidAmount     = errors.New("monto inválido")
	ErrInvalidLineItem   = errors.New("renglón inválido")
	ErrAllocation        = errors.New("no se pudo asignar la numeración")
	ErrAlreadyPrepared   = errors.New("la orden de compra ya fue generada")
	ErrNoThresholds      = errors.New("no hay topes de contratación configurados")
	ErrExceedsThresholds = errors.New("el monto supera todos los topes de contratación")
)
