package store

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts what a LedgerStore does.
type Metrics struct {
	Saves         prometheus.Counter
	SaveErrors    prometheus.Counter
	LoadFallbacks prometheus.Counter
	ImportedRows  prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg, when not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Saves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pnl_store_saves_total",
			Help: "Number of ledger documents written to the backend.",
		}),
		SaveErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pnl_store_save_errors_total",
			Help: "Number of failed writes to the backend.",
		}),
		LoadFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pnl_store_load_fallbacks_total",
			Help: "Number of corrupt documents discarded at load time.",
		}),
		ImportedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pnl_import_rows_total",
			Help: "Number of rows applied by bulk imports.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Saves, m.SaveErrors, m.LoadFallbacks, m.ImportedRows)
	}
	return m
}
