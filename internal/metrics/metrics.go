// Package metrics expõe as métricas Prometheus das execuções do relatório
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reportbot"

// Resultados possíveis de uma execução
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics agrupa os coletores registrados em um registry próprio
type Metrics struct {
	registry *prometheus.Registry

	Runs         *prometheus.CounterVec
	RunAttempts  prometheus.Counter
	StepFailures *prometheus.CounterVec
	StepDuration *prometheus.HistogramVec
	LastSuccess  prometheus.Gauge
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total de execuções do relatório por resultado",
		}, []string{"result"}),
		RunAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "run_attempts_total",
			Help:      "Total de tentativas de execução, incluindo retentativas",
		}),
		StepFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "step_failures_total",
			Help:      "Total de falhas por etapa do pipeline",
		}, []string{"step"}),
		StepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Duração de cada etapa do pipeline",
			Buckets:   prometheus.DefBuckets,
		}, []string{"step"}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Horário Unix da última entrega concluída",
		}),
	}

	registry.MustRegister(
		m.Runs,
		m.RunAttempts,
		m.StepFailures,
		m.StepDuration,
		m.LastSuccess,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Gatherer retorna o registry usado na exposição
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler expõe o registry no formato de texto do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Gatherer(), promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveAttempt() {
	m.RunAttempts.Inc()
}

// ObserveStep registra a duração da etapa e, se houver erro, a falha
func (m *Metrics) ObserveStep(step string, duration time.Duration, err error) {
	m.StepDuration.WithLabelValues(step).Observe(duration.Seconds())
	if err != nil {
		m.StepFailures.WithLabelValues(step).Inc()
	}
}

func (m *Metrics) ObserveRun(err error, completedAt time.Time) {
	if err != nil {
		m.Runs.WithLabelValues(ResultFailure).Inc()
		return
	}
	m.Runs.WithLabelValues(ResultSuccess).Inc()
	m.LastSuccess.Set(float64(completedAt.Unix()))
}
