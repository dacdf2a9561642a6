package compras

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Expedientes-api/internal/domain"
	domcompras "github.com/jhoicas/Expedientes-api/internal/domain/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
	"github.com/jhoicas/Expedientes-api/pkg/logger"
)

// Numeracion es el par de números asignado a una OC.
type Numeracion struct {
	Periodo        string
	SecuenciaOrden int64
	NumeroOC       string
	NumeroPedido   int64
}

// SecuenciaAllocator asigna números de OC y de pedido por período.
//
// Dentro del proceso las asignaciones de un mismo período se serializan con un
// mutex por período; entre procesos la exclusión la da el upsert transaccional
// del ContadorRepository. Los errores de persistencia se devuelven envueltos en
// domain.ErrAllocation y no se reintentan.
type SecuenciaAllocator struct {
	tx        ContadorTxRunner
	plantilla string
	log       *logger.Logger
	metricas  Metricas

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSecuenciaAllocator construye el allocator. Falla si la plantilla de numeración es inválida.
func NewSecuenciaAllocator(tx ContadorTxRunner, plantilla string, log *logger.Logger, metricas Metricas) (*SecuenciaAllocator, error) {
	if plantilla == "" {
		plantilla = domcompras.PlantillaNumeroDefault
	}
	if _, err := domcompras.FormatearNumeroOC(plantilla, "2000", 1); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SecuenciaAllocator{
		tx:        tx,
		plantilla: plantilla,
		log:       log.WithComponent("secuencia_oc"),
		metricas:  metricasOrNop(metricas),
		locks:     make(map[string]*sync.Mutex),
	}, nil
}

func (a *SecuenciaAllocator) lock(periodo string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	l, ok := a.locks[periodo]
	if !ok {
		l = &sync.Mutex{}
		a.locks[periodo] = l
	}
	return l
}

// Asignar incrementa ambos contadores del período en una sola transacción.
func (a *SecuenciaAllocator) Asignar(ctx context.Context, periodo string) (Numeracion, error) {
	if periodo == "" {
		return Numeracion{}, fmt.Errorf("%w: período vacío", domain.ErrAllocation)
	}
	l := a.lock(periodo)
	l.Lock()
	defer l.Unlock()

	var orden, pedido int64
	err := a.tx.RunContadores(ctx, func(contadores repository.ContadorRepository) error {
		var err error
		if orden, err = a.incrementar(ctx, contadores, periodo, entity.ContadorOrden); err != nil {
			return err
		}
		pedido, err = a.incrementar(ctx, contadores, periodo, entity.ContadorPedido)
		return err
	})
	if err != nil {
		return Numeracion{}, a.fallo(periodo, err)
	}

	numero, err := domcompras.FormatearNumeroOC(a.plantilla, periodo, orden)
	if err != nil {
		a.log.Warn().Str("periodo", periodo).Int64("orden", orden).Int64("pedido", pedido).
			Msg("numeración huérfana: no se pudo formatear el número de OC")
		a.metricas.NumeracionHuerfana(periodo)
		return Numeracion{}, a.fallo(periodo, err)
	}

	a.log.Debug().Str("periodo", periodo).Str("numero_oc", numero).Int64("pedido", pedido).Msg("numeración asignada")
	return Numeracion{Periodo: periodo, SecuenciaOrden: orden, NumeroOC: numero, NumeroPedido: pedido}, nil
}

// SiguienteNumeroOrden asigna sólo el número de OC del período.
func (a *SecuenciaAllocator) SiguienteNumeroOrden(ctx context.Context, periodo string) (string, error) {
	seq, err := a.siguiente(ctx, periodo, entity.ContadorOrden)
	if err != nil {
		return "", err
	}
	numero, err := domcompras.FormatearNumeroOC(a.plantilla, periodo, seq)
	if err != nil {
		a.metricas.NumeracionHuerfana(periodo)
		return "", a.fallo(periodo, err)
	}
	return numero, nil
}

// SiguienteNumeroPedido asigna sólo el número de pedido del período.
func (a *SecuenciaAllocator) SiguienteNumeroPedido(ctx context.Context, periodo string) (int64, error) {
	return a.siguiente(ctx, periodo, entity.ContadorPedido)
}

func (a *SecuenciaAllocator) siguiente(ctx context.Context, periodo, contador string) (int64, error) {
	if periodo == "" {
		return 0, fmt.Errorf("%w: período vacío", domain.ErrAllocation)
	}
	l := a.lock(periodo)
	l.Lock()
	defer l.Unlock()

	var v int64
	err := a.tx.RunContadores(ctx, func(contadores repository.ContadorRepository) error {
		var err error
		v, err = a.incrementar(ctx, contadores, periodo, contador)
		return err
	})
	if err != nil {
		return 0, a.fallo(periodo, err)
	}
	return v, nil
}

func (a *SecuenciaAllocator) incrementar(ctx context.Context, repo repository.ContadorRepository, periodo, contador string) (int64, error) {
	v, err := repo.GetAndIncrement(ctx, periodo, contador)
	if err != nil {
		return 0, fmt.Errorf("contador %s/%s: %w", periodo, contador, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("contador %s/%s devolvió %d", periodo, contador, v)
	}
	return v, nil
}

func (a *SecuenciaAllocator) fallo(periodo string, err error) error {
	a.metricas.AsignacionFallida()
	a.log.Error().Err(err).Str("periodo", periodo).Msg("fallo al asignar numeración")
	return fmt.Errorf("%w: %w", domain.ErrAllocation, err)
}
