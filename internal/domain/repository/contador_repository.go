package repository

import "context"

// ContadorRepository persiste los contadores de numeración por (periodo, contador).
type ContadorRepository interface {
	// GetAndIncrement incrementa el contador y devuelve el nuevo valor.
	// La primera llamada para un (periodo, contador) devuelve 1.
	GetAndIncrement(ctx context.Context, periodo, contador string) (int64, error)
}
