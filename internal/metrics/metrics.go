// Package metrics exposes Prometheus metrics for the ledger.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/sharesplitter/internal/ledger"
)

const namespace = "sharesplit"

// Ledger is the read side of the ledger the metrics watch.
type Ledger interface {
	Subscribe(fn ledger.Listener) (unsubscribe func())
	FixedPercentageTotal() float64
	BillsTotal() float64
	ParticipantCount() int
	BillCount() int
}

// Manager owns the ledger collectors and the registry they live in.
type Manager struct {
	registry *prometheus.Registry

	mutations       *prometheus.CounterVec
	persistFailures prometheus.Counter
	participants    prometheus.Gauge
	bills           prometheus.Gauge
	billsTotal      prometheus.Gauge
	percentageTotal prometheus.Gauge
}

// NewManager creates a Manager with its own registry. The Go and process
// collectors are registered alongside the ledger metrics.
func NewManager() *Manager {
	m := &Manager{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "mutations_total",
			Help:      "Committed ledger mutations by kind",
		}, []string{"kind"}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "persist_failures_total",
			Help:      "Mutations whose records could not be written to storage",
		}),
		participants: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "participants",
			Help:      "Participants in the roster",
		}),
		bills: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "bills",
			Help:      "Bills in the ledger",
		}),
		billsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "bills_amount_total",
			Help:      "Sum of all bill totals",
		}),
		percentageTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "fixed_percentage_total",
			Help:      "Sum of fixed percentages, may exceed 100",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.mutations,
		m.persistFailures,
		m.participants,
		m.bills,
		m.billsTotal,
		m.percentageTotal,
	)
	return m
}

// Registry returns the registry holding all collectors.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Watch seeds the gauges from l and keeps them current by subscribing to
// its events. The returned function stops watching.
func (m *Manager) Watch(l Ledger) (stop func()) {
	m.refresh(l)
	return l.Subscribe(func(evt ledger.Event) {
		if evt.Kind == ledger.PersistFailed {
			m.persistFailures.Inc()
			return
		}
		m.mutations.WithLabelValues(string(evt.Kind)).Inc()
		m.refresh(l)
	})
}

func (m *Manager) refresh(l Ledger) {
	m.participants.Set(float64(l.ParticipantCount()))
	m.bills.Set(float64(l.BillCount()))
	m.billsTotal.Set(l.BillsTotal())
	m.percentageTotal.Set(l.FixedPercentageTotal())
}

