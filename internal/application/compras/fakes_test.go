package compras_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Expedientes-api/internal/domain"
	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeExpedientes struct {
	items map[int64]*entity.Expediente
	err   error
}

func (f *fakeExpedientes) GetByID(_ context.Context, id int64) (*entity.Expediente, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

type fakeTopes struct {
	mu    sync.Mutex
	items []*entity.Tope
	err   error
}

func (f *fakeTopes) List(_ context.Context) ([]*entity.Tope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Tope, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeTopes) UpdateMontoMaximo(_ context.Context, tipo string, monto decimal.Decimal) (*entity.Tope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.items {
		if t.TipoContratacion == tipo {
			t.MontoMaximo = monto
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func topesSemilla() *fakeTopes {
	return &fakeTopes{items: []*entity.Tope{
		{ID: 1, TipoContratacion: "Contratación directa", MontoMaximo: decimal.NewFromInt(5_000_000)},
		{ID: 2, TipoContratacion: "Contratación directa con publicación", MontoMaximo: decimal.NewFromInt(15_000_000)},
		{ID: 3, TipoContratacion: "Licitación pública de menor monto", MontoMaximo: decimal.NewFromInt(50_000_000)},
		{ID: 4, TipoContratacion: "Licitación pública de mayor monto", MontoMaximo: decimal.RequireFromString("999999999.99")},
	}}
}

// memContadores guarda los contadores comprometidos. RunContadores aplica los
// incrementos sólo si fn termina sin error, como una transacción.
type memContadores struct {
	mu      sync.Mutex
	valores map[string]int64
	// fallarEn hace fallar GetAndIncrement para ese contador.
	fallarEn string
	calls    int
}

func newMemContadores() *memContadores {
	return &memContadores{valores: map[string]int64{}}
}

func (m *memContadores) RunContadores(ctx context.Context, fn func(repository.ContadorRepository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &txContadores{base: m, staged: map[string]int64{}}
	if err := fn(tx); err != nil {
		return err
	}
	for k, v := range tx.staged {
		m.valores[k] = v
	}
	return nil
}

func (m *memContadores) valor(periodo, contador string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.valores[periodo+"/"+contador]
}

type txContadores struct {
	base   *memContadores
	staged map[string]int64
}

func (t *txContadores) GetAndIncrement(_ context.Context, periodo, contador string) (int64, error) {
	t.base.calls++
	if t.base.fallarEn == contador {
		return 0, fmt.Errorf("conexión perdida")
	}
	k := periodo + "/" + contador
	v, ok := t.staged[k]
	if !ok {
		v = t.base.valores[k]
	}
	v++
	t.staged[k] = v
	return v, nil
}

// memOrdenes repositorio de órdenes con unicidad de numero_oc.
type memOrdenes struct {
	mu        sync.Mutex
	ordenes   map[string]*entity.OrdenCompra
	orden     []string
	renglones map[string][]*entity.Renglon
}

func newMemOrdenes() *memOrdenes {
	return &memOrdenes{ordenes: map[string]*entity.OrdenCompra{}, renglones: map[string][]*entity.Renglon{}}
}

func (m *memOrdenes) RunOrdenes(_ context.Context, fn func(repository.OrdenCompraRepository) error) error {
	m.mu.Lock()
	tx := &txOrdenes{base: m}
	m.mu.Unlock()
	if err := fn(tx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, oc := range tx.ordenes {
		m.ordenes[oc.ID] = oc
		m.orden = append(m.orden, oc.ID)
	}
	for _, r := range tx.renglones {
		m.renglones[r.OrdenCompraID] = append(m.renglones[r.OrdenCompraID], r)
	}
	return nil
}

func (m *memOrdenes) Create(ctx context.Context, oc *entity.OrdenCompra) error {
	return m.RunOrdenes(ctx, func(r repository.OrdenCompraRepository) error { return r.Create(ctx, oc) })
}

func (m *memOrdenes) CreateRenglon(_ context.Context, r *entity.Renglon) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.renglones[r.OrdenCompraID] = append(m.renglones[r.OrdenCompraID], &cp)
	return nil
}

func (m *memOrdenes) GetByID(_ context.Context, id string) (*entity.OrdenCompra, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	oc, ok := m.ordenes[id]
	if !ok {
		return nil, nil
	}
	cp := *oc
	return &cp, nil
}

func (m *memOrdenes) GetRenglones(_ context.Context, id string) ([]*entity.Renglon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rs := append([]*entity.Renglon(nil), m.renglones[id]...)
	sort.Slice(rs, func(i, j int) bool { return rs[i].Nro < rs[j].Nro })
	return rs, nil
}

func (m *memOrdenes) List(_ context.Context, limit, offset int) ([]*entity.OrdenCompra, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.OrdenCompra
	for i := len(m.orden) - 1; i >= 0; i-- {
		out = append(out, m.ordenes[m.orden[i]])
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memOrdenes) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.orden)), nil
}

func (m *memOrdenes) existeNumero(numero string) bool {
	for _, oc := range m.ordenes {
		if oc.NumeroOC == numero {
			return true
		}
	}
	return false
}

type txOrdenes struct {
	base      *memOrdenes
	ordenes   []*entity.OrdenCompra
	renglones []*entity.Renglon
}

func (t *txOrdenes) Create(_ context.Context, oc *entity.OrdenCompra) error {
	t.base.mu.Lock()
	dup := t.base.existeNumero(oc.NumeroOC)
	t.base.mu.Unlock()
	if dup {
		return fmt.Errorf("numero_oc ya existe: %w", domain.ErrDuplicate)
	}
	cp := *oc
	t.ordenes = append(t.ordenes, &cp)
	return nil
}

func (t *txOrdenes) CreateRenglon(_ context.Context, r *entity.Renglon) error {
	cp := *r
	t.renglones = append(t.renglones, &cp)
	return nil
}

func (t *txOrdenes) GetByID(ctx context.Context, id string) (*entity.OrdenCompra, error) {
	return t.base.GetByID(ctx, id)
}

func (t *txOrdenes) GetRenglones(ctx context.Context, id string) ([]*entity.Renglon, error) {
	return t.base.GetRenglones(ctx, id)
}

func (t *txOrdenes) List(ctx context.Context, limit, offset int) ([]*entity.OrdenCompra, error) {
	return t.base.List(ctx, limit, offset)
}

func (t *txOrdenes) Count(ctx context.Context) (int64, error) {
	return t.base.Count(ctx)
}

// fakeMetricas cuenta las llamadas.
type fakeMetricas struct {
	mu         sync.Mutex
	ok         int
	fallidas   map[string]int
	asignacion int
	huerfanas  int
	creadas    int
}

func newFakeMetricas() *fakeMetricas {
	return &fakeMetricas{fallidas: map[string]int{}}
}

func (f *fakeMetricas) PreparacionOK() {
	f.mu.Lock()
	f.ok++
	f.mu.Unlock()
}

func (f *fakeMetricas) PreparacionFallida(motivo string) {
	f.mu.Lock()
	f.fallidas[motivo]++
	f.mu.Unlock()
}

func (f *fakeMetricas) AsignacionFallida() {
	f.mu.Lock()
	f.asignacion++
	f.mu.Unlock()
}

func (f *fakeMetricas) NumeracionHuerfana(string) {
	f.mu.Lock()
	f.huerfanas++
	f.mu.Unlock()
}

func (f *fakeMetricas) OrdenCreada() {
	f.mu.Lock()
	f.creadas++
	f.mu.Unlock()
}

func expedientePago() *entity.Expediente {
	return &entity.Expediente{
		ID:                10,
		Numero:            "1234",
		Anio:              2026,
		Tipo:              entity.ExpedienteTipoPago,
		Asunto:            "Reparación embrague Toyota Hilux",
		ResolucionNro:     "45/2026",
		OCSenor:           "Taller Los Andes",
		OCDomicilio:       "San Martín 100, Malargüe",
		OCCUIT:            "30-12345678-9",
		OCDescripcionZona: "Subdelegación Río Grande",
	}
}
