// Package metrics expone los contadores del circuito de órdenes de compra en Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Expedientes-api/internal/application/compras"
)

var _ compras.Metricas = (*OCMetrics)(nil)

// OCMetrics implementa compras.Metricas.
type OCMetrics struct {
	preparaciones        *prometheus.CounterVec
	asignacionesFallidas prometheus.Counter
	huerfanas            *prometheus.CounterVec
	ordenesCreadas       prometheus.Counter
}

// New registra los contadores en registerer (prometheus.DefaultRegisterer si es nil).
func New(registerer prometheus.Registerer) (*OCMetrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	m := &OCMetrics{
		preparaciones: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oc_preparaciones_total",
			Help: "Preparaciones de orden de compra por resultado.",
		}, []string{"resultado"}),
		asignacionesFallidas: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oc_asignaciones_fallidas_total",
			Help: "Fallos al asignar numeración de OC.",
		}),
		huerfanas: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oc_numeracion_huerfana_total",
			Help: "Números de OC asignados que no llegaron a un borrador.",
		}, []string{"periodo"}),
		ordenesCreadas: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oc_ordenes_creadas_total",
			Help: "Órdenes de compra persistidas.",
		}),
	}
	for _, c := range []prometheus.Collector{m.preparaciones, m.asignacionesFallidas, m.huerfanas, m.ordenesCreadas} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *OCMetrics) PreparacionOK() { m.preparaciones.WithLabelValues("ok").Inc() }

func (m *OCMetrics) PreparacionFallida(motivo string) {
	m.preparaciones.WithLabelValues(motivo).Inc()
}

func (m *OCMetrics) AsignacionFallida() { m.asignacionesFallidas.Inc() }

func (m *OCMetrics) NumeracionHuerfana(periodo string) {
	m.huerfanas.WithLabelValues(periodo).Inc()
}

func (m *OCMetrics) OrdenCreada() { m.ordenesCreadas.Inc() }
