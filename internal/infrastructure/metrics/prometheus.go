// Package metrics expone métricas Prometheus de las corridas de sincronización.
package metrics

import (
	"time"

	"github.com/jhoicas/productividad-api/internal/application/ingestion"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ ingestion.Recorder = (*IngestionRecorder)(nil)

// IngestionRecorder implementa ingestion.Recorder sobre un registro Prometheus.
type IngestionRecorder struct {
	rows     *prometheus.CounterVec
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewIngestionRecorder registra las métricas en reg (prometheus.DefaultRegisterer en la API).
func NewIngestionRecorder(reg prometheus.Registerer) *IngestionRecorder {
	f := promauto.With(reg)
	return &IngestionRecorder{
		rows: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ingestion",
			Name:      "rows_total",
			Help:      "Filas procesadas por entidad y resultado (processed, skipped, failed).",
		}, []string{"entity", "outcome"}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ingestion",
			Name:      "runs_total",
			Help:      "Corridas de sincronización por entidad y estado final.",
		}, []string{"entity", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ingestion",
			Name:      "run_duration_seconds",
			Help:      "Duración de las corridas de sincronización.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		}, []string{"entity"}),
	}
}

// RowOutcome suma una fila al contador de su resultado.
func (r *IngestionRecorder) RowOutcome(entity, outcome string) {
	r.rows.WithLabelValues(entity, outcome).Inc()
}

// RunFinished registra el estado final y la duración de una corrida.
func (r *IngestionRecorder) RunFinished(entity, status string, elapsed time.Duration) {
	r.runs.WithLabelValues(entity, status).Inc()
	r.duration.WithLabelValues(entity).Observe(elapsed.Seconds())
}
