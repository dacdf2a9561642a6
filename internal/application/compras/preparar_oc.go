package compras

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Expedientes-api/internal/application/dto"
	"github.com/jhoicas/Expedientes-api/internal/domain"
	domcompras "github.com/jhoicas/Expedientes-api/internal/domain/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
	"github.com/jhoicas/Expedientes-api/pkg/clock"
	"github.com/jhoicas/Expedientes-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// PreparacionConfig valores por defecto del borrador.
type PreparacionConfig struct {
	DestinoDefault      string
	FormaPagoDefault    string
	PlazoEntregaDefault string
	IVAInscriptoDefault bool
	Politica            domcompras.PoliticaExcedente
	Location            *time.Location
}

func (c PreparacionConfig) withDefaults() PreparacionConfig {
	if c.DestinoDefault == "" {
		c.DestinoDefault = entity.DestinoDefault
	}
	if c.FormaPagoDefault == "" {
		c.FormaPagoDefault = entity.FormaPagoDefault
	}
	if c.PlazoEntregaDefault == "" {
		c.PlazoEntregaDefault = entity.PlazoEntregaDefault
	}
	if c.Politica == "" {
		c.Politica = domcompras.PoliticaTopeMaximo
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	return c
}

// PrepararOCUseCase arma el borrador de una orden de compra a partir de un expediente de pago.
//
// Cada llamada asigna numeración nueva, aunque el expediente ya tenga un borrador:
// no se guarda estado por expediente. Los números que no llegan a devolverse en un
// borrador se registran como huérfanos (log y métrica) y nunca se reutilizan.
type PrepararOCUseCase struct {
	expedientes repository.ExpedienteRepository
	topes       repository.TopeRepository
	asignador   Asignador
	cfg         PreparacionConfig
	clock       clock.Clock
	log         *logger.Logger
	metricas    Metricas
}

// NewPrepararOCUseCase construye el caso de uso.
func NewPrepararOCUseCase(
	expedientes repository.ExpedienteRepository,
	topes repository.TopeRepository,
	asignador Asignador,
	cfg PreparacionConfig,
	clk clock.Clock,
	log *logger.Logger,
	metricas Metricas,
) *PrepararOCUseCase {
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PrepararOCUseCase{
		expedientes: expedientes,
		topes:       topes,
		asignador:   asignador,
		cfg:         cfg.withDefaults(),
		clock:       clk,
		log:         log.WithComponent("preparar_oc"),
		metricas:    metricasOrNop(metricas),
	}
}

// Preparar valida el expediente, asigna numeración y devuelve el borrador con totales en cero.
//
// Retorna:
//   - domain.ErrNotFound     si el expediente no existe.
//   - domain.ErrNotEligible  si el expediente no es de tipo PAGO.
//   - domain.ErrAllocation   si no se pudo asignar la numeración.
func (uc *PrepararOCUseCase) Preparar(ctx context.Context, expedienteID int64) (entity.BorradorOC, error) {
	borrador, err := uc.preparar(ctx, expedienteID)
	if err != nil {
		uc.metricas.PreparacionFallida(motivo(err))
		return entity.BorradorOC{}, err
	}
	uc.metricas.PreparacionOK()
	return borrador, nil
}

func (uc *PrepararOCUseCase) preparar(ctx context.Context, expedienteID int64) (entity.BorradorOC, error) {
	// ── 1. Expediente ─────────────────────────────────────────────────────────
	exp, err := uc.expedientes.GetByID(ctx, expedienteID)
	if err != nil {
		return entity.BorradorOC{}, fmt.Errorf("preparar oc: obtener expediente: %w", err)
	}
	if exp == nil {
		return entity.BorradorOC{}, domain.ErrNotFound
	}
	if !exp.EsPago() {
		return entity.BorradorOC{}, fmt.Errorf("%w: expediente %d es de tipo %s", domain.ErrNotEligible, exp.ID, exp.Tipo)
	}

	// ── 2. Topes y semilla en cero (antes de consumir numeración) ────────────
	topes, err := uc.topes.List(ctx)
	if err != nil {
		return entity.BorradorOC{}, fmt.Errorf("preparar oc: listar topes: %w", err)
	}
	tipo, err := domcompras.Clasificar(decimal.Zero, topes, uc.cfg.Politica)
	if err != nil {
		return entity.BorradorOC{}, err
	}
	letras, err := domcompras.MontoALetras(decimal.Zero)
	if err != nil {
		return entity.BorradorOC{}, err
	}

	// ── 3. Numeración ─────────────────────────────────────────────────────────
	hoy := uc.clock.Now().In(uc.cfg.Location)
	periodo := domcompras.Periodo(hoy, uc.cfg.Location)
	num, err := uc.asignador.Asignar(ctx, periodo)
	if err != nil {
		return entity.BorradorOC{}, err
	}

	// A partir de aquí cualquier salida con error deja la numeración huérfana.
	if err := ctx.Err(); err != nil {
		uc.huerfana(exp.ID, num, err)
		return entity.BorradorOC{}, err
	}

	// ── 4. Borrador ───────────────────────────────────────────────────────────
	return entity.BorradorOC{
		Expediente:       *exp,
		NumeroOC:         num.NumeroOC,
		NumeroPedido:     num.NumeroPedido,
		Fecha:            time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, uc.cfg.Location),
		Destino:          uc.cfg.DestinoDefault,
		FormaPago:        nonEmpty(exp.OCFormaPago, uc.cfg.FormaPagoDefault),
		PlazoEntrega:     nonEmpty(exp.OCPlazoEntrega, uc.cfg.PlazoEntregaDefault),
		EsIVAInscripto:   uc.cfg.IVAInscriptoDefault,
		TipoContratacion: tipo,
		Subtotal:         decimal.Zero,
		IVA:              decimal.Zero,
		Total:            decimal.Zero,
		TotalEnLetras:    letras,
	}, nil
}

func (uc *PrepararOCUseCase) huerfana(expedienteID int64, num Numeracion, err error) {
	uc.metricas.NumeracionHuerfana(num.Periodo)
	uc.log.Warn().
		Err(err).
		Int64("expediente_id", expedienteID).
		Str("periodo", num.Periodo).
		Str("numero_oc", num.NumeroOC).
		Int64("numero_pedido", num.NumeroPedido).
		Msg("numeración huérfana")
}

// ToBorradorResponse convierte el borrador al DTO de respuesta.
func ToBorradorResponse(b entity.BorradorOC) dto.BorradorOCResponse {
	e := b.Expediente
	return dto.BorradorOCResponse{
		Expediente: dto.ExpedienteResponse{
			ID:                e.ID,
			Numero:            e.Numero,
			Anio:              e.Anio,
			Tipo:              e.Tipo,
			Asunto:            e.Asunto,
			NroInfoGov:        e.NroInfoGov,
			NroGDE:            e.NroGDE,
			Caratula:          e.Caratula,
			ResolucionNro:     e.ResolucionNro,
			OCSenor:           e.OCSenor,
			OCDomicilio:       e.OCDomicilio,
			OCCUIT:            e.OCCUIT,
			OCDescripcionZona: e.OCDescripcionZona,
		},
		NumeroOC:         b.NumeroOC,
		NumeroPedido:     b.NumeroPedido,
		Fecha:            b.Fecha.Format(fechaLayout),
		Destino:          b.Destino,
		FormaPago:        b.FormaPago,
		PlazoEntrega:     b.PlazoEntrega,
		EsIVAInscripto:   b.EsIVAInscripto,
		TipoContratacion: b.TipoContratacion,
		Subtotal:         b.Subtotal,
		IVA:              b.IVA,
		Total:            b.Total,
		TotalEnLetras:    b.TotalEnLetras,
	}
}

func motivo(err error) string {
	for _, m := range []struct {
		err    error
		nombre string
	}{
		{domain.ErrNotFound, "not_found"},
		{domain.ErrNotEligible, "not_eligible"},
		{domain.ErrAllocation, "allocation"},
		{domain.ErrNoThresholds, "no_thresholds"},
		{domain.ErrExceedsThresholds, "exceeds_thresholds"},
	} {
		if errors.Is(err, m.err) {
			return m.nombre
		}
	}
	return "internal"
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}
