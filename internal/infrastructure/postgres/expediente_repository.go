package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
)

var _ repository.ExpedienteRepository = (*ExpedienteRepo)(nil)

// ExpedienteRepo implementación de ExpedienteRepository (usable con pool o tx).
type ExpedienteRepo struct {
	q Querier
}

// NewExpedienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpedienteRepository(q Querier) *ExpedienteRepo {
	return &ExpedienteRepo{q: q}
}

// GetByID obtiene un expediente por ID. Devuelve nil, nil si no existe.
func (r *ExpedienteRepo) GetByID(ctx context.Context, id int64) (*entity.Expediente, error) {
	query := `
		SELECT id, numero, anio, tipo, asunto, nro_infogov, nro_gde, caratula, resolucion_nro,
		       oficina, estado, fecha_pase,
		       oc_senor, oc_domicilio, oc_cuit, oc_descripcion_zona, oc_forma_pago, oc_plazo_entrega,
		       created_at, updated_at
		FROM expedientes WHERE id = $1`
	e, err := scanExpediente(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expediente: %w", err)
	}
	return e, nil
}

func scanExpediente(row pgxScanner) (*entity.Expediente, error) {
	var e entity.Expediente
	var nroInfoGov, nroGDE, caratula, resolucion, oficina, estado *string
	var senor, domicilio, cuit, zona, formaPago, plazo *string
	err := row.Scan(
		&e.ID, &e.Numero, &e.Anio, &e.Tipo, &e.Asunto, &nroInfoGov, &nroGDE, &caratula, &resolucion,
		&oficina, &estado, &e.FechaPase,
		&senor, &domicilio, &cuit, &zona, &formaPago, &plazo,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.NroInfoGov = stringOrEmpty(nroInfoGov)
	e.NroGDE = stringOrEmpty(nroGDE)
	e.Caratula = stringOrEmpty(caratula)
	e.ResolucionNro = stringOrEmpty(resolucion)
	e.Oficina = stringOrEmpty(oficina)
	e.Estado = stringOrEmpty(estado)
	e.OCSenor = stringOrEmpty(senor)
	e.OCDomicilio = stringOrEmpty(domicilio)
	e.OCCUIT = stringOrEmpty(cuit)
	e.OCDescripcionZona = stringOrEmpty(zona)
	e.OCFormaPago = stringOrEmpty(formaPago)
	e.OCPlazoEntrega = stringOrEmpty(plazo)
	return &e, nil
}
