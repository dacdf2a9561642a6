// Package licencia calcula el estado de vencimiento de licencias de conducir del personal.
package licencia

import (
	"math"
	"time"
)

// Estado del semáforo de vencimiento.
type Estado string

const (
	EstadoRojo    Estado = "rojo"
	EstadoNaranja Estado = "naranja"
	EstadoVerde   Estado = "verde"
)

// Umbrales en días.
const (
	UmbralRojo    = 15
	UmbralNaranja = 45
)

// Resultado del cálculo. Dias puede ser negativo si la licencia ya venció;
// DiasRestantes es el valor a mostrar (nunca menor a cero).
type Resultado struct {
	Estado        Estado `json:"estado"`
	Dias          int    `json:"dias"`
	DiasRestantes int    `json:"dias_restantes"`
	Vencida       bool   `json:"vencida"`
}

// Semaforo calcula dias = ceil((vence - hoy) en días):
// rojo si dias < 15, naranja si dias < 45, verde en otro caso.
func Semaforo(vence, hoy time.Time) Resultado {
	dias := int(math.Ceil(vence.Sub(hoy).Hours() / 24))

	estado := EstadoVerde
	switch {
	case dias < UmbralRojo:
		estado = EstadoRojo
	case dias < UmbralNaranja:
		estado = EstadoNaranja
	}

	restantes := dias
	if restantes < 0 {
		restantes = 0
	}
	return Resultado{
		Estado:        estado,
		Dias:          dias,
		DiasRestantes: restantes,
		Vencida:       dias < 0,
	}
}
