package experiment

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the prometheus collectors updated by a Runner.
type Metrics struct {
	evaluations *prometheus.CounterVec
	generations *prometheus.CounterVec
	runsTotal   *prometheus.CounterVec
	frontSize   *prometheus.GaugeVec
	runDuration *prometheus.HistogramVec
}

// NewMetrics creates the run metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weips_evaluations_total",
				Help: "Total number of objective evaluations",
			},
			[]string{"algorithm", "problem"},
		),
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weips_generations_total",
				Help: "Total number of completed generations",
			},
			[]string{"algorithm", "problem"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weips_runs_total",
				Help: "Total number of runs by final phase",
			},
			[]string{"algorithm", "problem", "phase"},
		),
		frontSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "weips_front_size",
				Help: "Size of the final non-dominated front of the last finished run",
			},
			[]string{"algorithm", "problem"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weips_run_duration_seconds",
				Help:    "Distribution of run durations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"algorithm", "problem"},
		),
	}
	reg.MustRegister(m.evaluations, m.generations, m.runsTotal, m.frontSize, m.runDuration)
	return m
}

func (m *Metrics) observe(r *RunResult) {
	algorithm, problem := r.Algorithm, r.Problem.Name()
	m.runDuration.WithLabelValues(algorithm, problem).Observe(r.Duration.Seconds())
	m.runsTotal.WithLabelValues(algorithm, problem, string(r.Record.Status.Phase)).Inc()
	if r.Result == nil {
		return
	}
	m.evaluations.WithLabelValues(algorithm, problem).Add(float64(r.Result.Evaluations))
	m.generations.WithLabelValues(algorithm, problem).Add(float64(r.Result.Generations))
	m.frontSize.WithLabelValues(algorithm, problem).Set(float64(len(r.Result.Front)))
}
