package compras

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Expedientes-api/internal/application/dto"
	"github.com/jhoicas/Expedientes-api/internal/domain"
	domcompras "github.com/jhoicas/Expedientes-api/internal/domain/compras"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
	"github.com/jhoicas/Expedientes-api/pkg/clock"
	"github.com/jhoicas/Expedientes-api/pkg/logger"
)

const fechaLayout = "2006-01-02"

// OrdenCompraUseCase recalcula, crea y consulta órdenes de compra.
type OrdenCompraUseCase struct {
	tx          OrdenTxRunner
	ordenes     repository.OrdenCompraRepository
	expedientes repository.ExpedienteRepository
	topes       repository.TopeRepository
	politica    domcompras.PoliticaExcedente
	loc         *time.Location
	clock       clock.Clock
	log         *logger.Logger
	metricas    Metricas
}

// NewOrdenCompraUseCase construye el caso de uso.
func NewOrdenCompraUseCase(
	tx OrdenTxRunner,
	ordenes repository.OrdenCompraRepository,
	expedientes repository.ExpedienteRepository,
	topes repository.TopeRepository,
	cfg PreparacionConfig,
	clk clock.Clock,
	log *logger.Logger,
	metricas Metricas,
) *OrdenCompraUseCase {
	cfg = cfg.withDefaults()
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OrdenCompraUseCase{
		tx:          tx,
		ordenes:     ordenes,
		expedientes: expedientes,
		topes:       topes,
		politica:    cfg.Politica,
		loc:         cfg.Location,
		clock:       clk,
		log:         log.WithComponent("orden_compra"),
		metricas:    metricasOrNop(metricas),
	}
}

// Recalcular devuelve totales, tipo de contratación y total en letras para los renglones
// editados. No asigna numeración ni persiste nada.
//
// Los renglones incompletos no cortan la vista previa: los totales se calculan igual y el
// motivo de la validación fallida vuelve en Advertencia. Con total negativo no se clasifica
// ni se expresa en letras.
func (uc *OrdenCompraUseCase) Recalcular(ctx context.Context, in dto.RecalcularRequest) (*dto.RecalcularResponse, error) {
	renglones := toRenglones(in.Renglones)
	tot := domcompras.CalcularTotales(renglones, in.EsIVAInscripto)
	resp := &dto.RecalcularResponse{Totales: toTotalesResponse(tot, in.EsIVAInscripto)}
	if err := domcompras.ValidarRenglones(renglones); err != nil {
		resp.Advertencia = err.Error()
	}
	if tot.Total.IsNegative() {
		return resp, nil
	}

	topes, err := uc.topes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("recalcular: listar topes: %w", err)
	}
	tipo, err := domcompras.Clasificar(tot.Total, topes, uc.politica)
	if err != nil {
		return nil, err
	}
	letras, err := domcompras.MontoALetras(tot.Redondeados().Total)
	if err != nil {
		return nil, err
	}
	resp.TipoContratacion = tipo
	resp.TotalEnLetras = letras
	return resp, nil
}

// Crear persiste la orden aprobada con sus renglones en una sola transacción.
//
// Retorna:
//   - domain.ErrInvalidLineItem  si algún renglón no es válido.
//   - domain.ErrInvalidInput     si falta número de OC o de pedido, o la fecha es inválida.
//   - domain.ErrNotFound         si el expediente no existe.
//   - domain.ErrNotEligible      si el expediente no es de tipo PAGO.
//   - domain.ErrAlreadyPrepared  si ya existe una orden con ese número.
func (uc *OrdenCompraUseCase) Crear(ctx context.Context, userID string, in dto.CrearOrdenCompraRequest) (*dto.OrdenCompraResponse, error) {
	doc, err := uc.armar(ctx, in)
	if err != nil {
		return nil, err
	}
	oc := doc.Orden
	oc.ID = uuid.New().String()
	oc.CreatedBy = userID
	now := uc.clock.Now()
	oc.CreatedAt, oc.UpdatedAt = now, now

	err = uc.tx.RunOrdenes(ctx, func(ordenes repository.OrdenCompraRepository) error {
		if err := ordenes.Create(ctx, &oc); err != nil {
			return err
		}
		for i := range doc.Renglones {
			doc.Renglones[i].OrdenCompraID = oc.ID
			if err := ordenes.CreateRenglon(ctx, &doc.Renglones[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyPrepared, oc.NumeroOC)
		}
		return nil, fmt.Errorf("crear orden de compra: %w", err)
	}

	uc.metricas.OrdenCreada()
	uc.log.Info().Str("id", oc.ID).Str("numero_oc", oc.NumeroOC).Int64("expediente_id", oc.ExpedienteID).
		Str("total", oc.Total.String()).Msg("orden de compra creada")

	resp := toOrdenResponse(&oc, doc.Renglones)
	return &resp, nil
}

// GetByID devuelve la orden con sus renglones.
func (uc *OrdenCompraUseCase) GetByID(ctx context.Context, id string) (*dto.OrdenCompraResponse, error) {
	oc, renglones, err := uc.cargar(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toOrdenResponse(oc, renglones)
	return &resp, nil
}

// List devuelve las órdenes más recientes primero.
func (uc *OrdenCompraUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.OrdenCompraListResponse, error) {
	page.DefaultPage()
	ordenes, err := uc.ordenes.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	items := make([]dto.OrdenCompraResponse, 0, len(ordenes))
	for _, oc := range ordenes {
		items = append(items, toOrdenResponse(oc, nil))
	}
	total, err := uc.ordenes.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("contar órdenes: %w", err)
	}
	return &dto.OrdenCompraListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func (uc *OrdenCompraUseCase) cargar(ctx context.Context, id string) (*entity.OrdenCompra, []entity.Renglon, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	oc, err := uc.ordenes.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener orden: %w", err)
	}
	if oc == nil {
		return nil, nil, domain.ErrNotFound
	}
	rs, err := uc.ordenes.GetRenglones(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener renglones: %w", err)
	}
	renglones := make([]entity.Renglon, 0, len(rs))
	for _, r := range rs {
		renglones = append(renglones, *r)
	}
	return oc, renglones, nil
}

// armar valida el payload y calcula totales, tipo de contratación y letras.
func (uc *OrdenCompraUseCase) armar(ctx context.Context, in dto.CrearOrdenCompraRequest) (DocumentoOC, error) {
	renglones := toRenglones(in.Renglones)
	if len(renglones) == 0 {
		return DocumentoOC{}, fmt.Errorf("%w: la orden no tiene renglones", domain.ErrInvalidLineItem)
	}
	if err := domcompras.ValidarRenglones(renglones); err != nil {
		return DocumentoOC{}, err
	}
	if strings.TrimSpace(in.NumeroOC) == "" || in.NumeroPedido <= 0 {
		return DocumentoOC{}, fmt.Errorf("%w: número de OC y de pedido obligatorios", domain.ErrInvalidInput)
	}
	fecha, err := uc.fecha(in.Fecha)
	if err != nil {
		return DocumentoOC{}, err
	}

	exp, err := uc.expedientes.GetByID(ctx, in.ExpedienteID)
	if err != nil {
		return DocumentoOC{}, fmt.Errorf("obtener expediente: %w", err)
	}
	if exp == nil {
		return DocumentoOC{}, domain.ErrNotFound
	}
	if !exp.EsPago() {
		return DocumentoOC{}, fmt.Errorf("%w: expediente %d es de tipo %s", domain.ErrNotEligible, exp.ID, exp.Tipo)
	}

	topes, err := uc.topes.List(ctx)
	if err != nil {
		return DocumentoOC{}, fmt.Errorf("listar topes: %w", err)
	}
	tot := domcompras.CalcularTotales(renglones, in.EsIVAInscripto)
	tipo, err := domcompras.Clasificar(tot.Total, topes, uc.politica)
	if err != nil {
		return DocumentoOC{}, err
	}
	red := tot.Redondeados()
	letras, err := domcompras.MontoALetras(red.Total)
	if err != nil {
		return DocumentoOC{}, err
	}

	return DocumentoOC{
		Orden: entity.OrdenCompra{
			ExpedienteID:     exp.ID,
			NumeroOC:         strings.TrimSpace(in.NumeroOC),
			NumeroPedido:     in.NumeroPedido,
			Fecha:            fecha,
			Destino:          nonEmpty(in.Destino, entity.DestinoDefault),
			ResolucionNro:    nonEmpty(in.ResolucionNro, exp.ResolucionNro),
			FormaPago:        nonEmpty(in.FormaPago, nonEmpty(exp.OCFormaPago, entity.FormaPagoDefault)),
			PlazoEntrega:     nonEmpty(in.PlazoEntrega, nonEmpty(exp.OCPlazoEntrega, entity.PlazoEntregaDefault)),
			EsIVAInscripto:   in.EsIVAInscripto,
			TipoContratacion: tipo,
			Senor:            nonEmpty(in.Senor, exp.OCSenor),
			Domicilio:        nonEmpty(in.Domicilio, exp.OCDomicilio),
			CUIT:             nonEmpty(in.CUIT, exp.OCCUIT),
			DescripcionZona:  nonEmpty(in.DescripcionZona, exp.OCDescripcionZona),
			Subtotal:         tot.Subtotal,
			IVA:              tot.IVA,
			Total:            tot.Total,
			TotalEnLetras:    letras,
		},
		Renglones: renglones,
		Subtotal:  red.Subtotal,
		IVA:       red.IVA,
		Total:     red.Total,
		Alicuota:  domcompras.Alicuota(in.EsIVAInscripto),
	}, nil
}

func (uc *OrdenCompraUseCase) fecha(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		hoy := uc.clock.Now().In(uc.loc)
		return time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, uc.loc), nil
	}
	f, err := time.ParseInLocation(fechaLayout, strings.TrimSpace(s), uc.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q (formato AAAA-MM-DD)", domain.ErrInvalidInput, s)
	}
	return f, nil
}

func toRenglones(in []dto.RenglonRequest) []entity.Renglon {
	out := make([]entity.Renglon, 0, len(in))
	for i, r := range in {
		out = append(out, entity.Renglon{
			ID:            uuid.New().String(),
			Nro:           i + 1,
			Cantidad:      r.Cantidad,
			Detalle:       strings.TrimSpace(r.Detalle),
			Marca:         strings.TrimSpace(r.Marca),
			ValorUnitario: r.ValorUnitario,
		})
	}
	return out
}

func toTotalesResponse(t domcompras.Totales, esIVAInscripto bool) dto.TotalesResponse {
	red := t.Redondeados()
	return dto.TotalesResponse{
		Alicuota:           domcompras.Alicuota(esIVAInscripto),
		Subtotal:           t.Subtotal,
		IVA:                t.IVA,
		Total:              t.Total,
		SubtotalRedondeado: red.Subtotal,
		IVARedondeado:      red.IVA,
		TotalRedondeado:    red.Total,
	}
}

func toOrdenResponse(oc *entity.OrdenCompra, renglones []entity.Renglon) dto.OrdenCompraResponse {
	resp := dto.OrdenCompraResponse{
		ID:               oc.ID,
		ExpedienteID:     oc.ExpedienteID,
		NumeroOC:         oc.NumeroOC,
		NumeroPedido:     oc.NumeroPedido,
		Fecha:            oc.Fecha.Format(fechaLayout),
		Destino:          oc.Destino,
		ResolucionNro:    oc.ResolucionNro,
		FormaPago:        oc.FormaPago,
		PlazoEntrega:     oc.PlazoEntrega,
		EsIVAInscripto:   oc.EsIVAInscripto,
		TipoContratacion: oc.TipoContratacion,
		Senor:            oc.Senor,
		Domicilio:        oc.Domicilio,
		CUIT:             oc.CUIT,
		DescripcionZona:  oc.DescripcionZona,
		Subtotal:         oc.Subtotal,
		IVA:              oc.IVA,
		Total:            oc.Total,
		TotalEnLetras:    oc.TotalEnLetras,
	}
	for _, r := range renglones {
		resp.Renglones = append(resp.Renglones, dto.RenglonResponse{
			ID:            r.ID,
			Nro:           r.Nro,
			Cantidad:      r.Cantidad,
			Detalle:       r.Detalle,
			Marca:         r.Marca,
			ValorUnitario: r.ValorUnitario,
			Total:         r.Total(),
		})
	}
	return resp
}
