package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Expedientes-api/internal/domain"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
)

var _ repository.OrdenCompraRepository = (*OrdenCompraRepo)(nil)

// OrdenCompraRepo implementación de OrdenCompraRepository (usable con pool o tx).
type OrdenCompraRepo struct {
	q Querier
}

// NewOrdenCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrdenCompraRepository(q Querier) *OrdenCompraRepo {
	return &OrdenCompraRepo{q: q}
}

const ordenColumns = `id, expediente_id, numero_oc, pedido_nro, fecha, destino, resolucion_nro,
		forma_pago, plazo_entrega, es_iva_inscripto, tipo_contratacion,
		senor, domicilio, cuit, descripcion_zona,
		subtotal, iva, total, total_en_letras, created_by, created_at, updated_at`

// Create persiste la cabecera de la orden. Un numero_oc repetido devuelve domain.ErrDuplicate.
func (r *OrdenCompraRepo) Create(ctx context.Context, oc *entity.OrdenCompra) error {
	if oc.ID == "" {
		oc.ID = uuid.New().String()
	}
	query := `INSERT INTO ordenes_compra (` + ordenColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(ctx, query,
		oc.ID, oc.ExpedienteID, oc.NumeroOC, oc.NumeroPedido, oc.Fecha, oc.Destino, nullIfEmpty(oc.ResolucionNro),
		oc.FormaPago, oc.PlazoEntrega, oc.EsIVAInscripto, oc.TipoContratacion,
		nullIfEmpty(oc.Senor), nullIfEmpty(oc.Domicilio), nullIfEmpty(oc.CUIT), nullIfEmpty(oc.DescripcionZona),
		oc.Subtotal, oc.IVA, oc.Total, oc.TotalEnLetras, nullIfEmpty(oc.CreatedBy), oc.CreatedAt, oc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("numero_oc %s: %w", oc.NumeroOC, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert orden de compra: %w", err)
	}
	return nil
}

// CreateRenglon persiste un renglón de la orden.
func (r *OrdenCompraRepo) CreateRenglon(ctx context.Context, rg *entity.Renglon) error {
	if rg.ID == "" {
		rg.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orden_compra_renglones (id, oc_id, renglon_nro, cantidad, detalle, marca, valor_unitario)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		rg.ID, rg.OrdenCompraID, rg.Nro, rg.Cantidad, rg.Detalle, nullIfEmpty(rg.Marca), rg.ValorUnitario,
	)
	if err != nil {
		return fmt.Errorf("insert renglón %d: %w", rg.Nro, err)
	}
	return nil
}

// GetByID obtiene la cabecera de una orden. Devuelve nil, nil si no existe.
func (r *OrdenCompraRepo) GetByID(ctx context.Context, id string) (*entity.OrdenCompra, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra WHERE id = $1`
	oc, err := scanOrdenCompra(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden de compra: %w", err)
	}
	return oc, nil
}

// GetRenglones devuelve los renglones de la orden ordenados por número.
func (r *OrdenCompraRepo) GetRenglones(ctx context.Context, ordenCompraID string) ([]*entity.Renglon, error) {
	query := `
		SELECT id, oc_id, renglon_nro, cantidad, detalle, marca, valor_unitario
		FROM orden_compra_renglones WHERE oc_id = $1
		ORDER BY renglon_nro ASC`
	rows, err := r.q.Query(ctx, query, ordenCompraID)
	if err != nil {
		return nil, fmt.Errorf("get renglones: %w", err)
	}
	defer rows.Close()

	var list []*entity.Renglon
	for rows.Next() {
		var (
			rg    entity.Renglon
			marca *string
		)
		if err := rows.Scan(&rg.ID, &rg.OrdenCompraID, &rg.Nro, &rg.Cantidad, &rg.Detalle, &marca, &rg.ValorUnitario); err != nil {
			return nil, fmt.Errorf("scan renglón: %w", err)
		}
		rg.Marca = stringOrEmpty(marca)
		list = append(list, &rg)
	}
	return list, rows.Err()
}

// List devuelve las órdenes más recientes primero.
func (r *OrdenCompraRepo) List(ctx context.Context, limit, offset int) ([]*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra
		ORDER BY created_at DESC, numero_oc DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ordenes de compra: %w", err)
	}
	defer rows.Close()

	var list []*entity.OrdenCompra
	for rows.Next() {
		oc, err := scanOrdenCompra(rows)
		if err != nil {
			return nil, fmt.Errorf("scan orden de compra: %w", err)
		}
		list = append(list, oc)
	}
	return list, rows.Err()
}

// Count devuelve la cantidad total de órdenes guardadas.
func (r *OrdenCompraRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ordenes_compra`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ordenes de compra: %w", err)
	}
	return n, nil
}

func scanOrdenCompra(row pgxScanner) (*entity.OrdenCompra, error) {
	var oc entity.OrdenCompra
	var resolucion, senor, domicilio, cuit, zona, creado *string
	err := row.Scan(
		&oc.ID, &oc.ExpedienteID, &oc.NumeroOC, &oc.NumeroPedido, &oc.Fecha, &oc.Destino, &resolucion,
		&oc.FormaPago, &oc.PlazoEntrega, &oc.EsIVAInscripto, &oc.TipoContratacion,
		&senor, &domicilio, &cuit, &zona,
		&oc.Subtotal, &oc.IVA, &oc.Total, &oc.TotalEnLetras, &creado, &oc.CreatedAt, &oc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	oc.ResolucionNro = stringOrEmpty(resolucion)
	oc.Senor = stringOrEmpty(senor)
	oc.Domicilio = stringOrEmpty(domicilio)
	oc.CUIT = stringOrEmpty(cuit)
	oc.DescripcionZona = stringOrEmpty(zona)
	oc.CreatedBy = stringOrEmpty(creado)
	return &oc, nil
}
