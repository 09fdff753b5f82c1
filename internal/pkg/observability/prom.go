package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "droptracker"
)

var (
	DropsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "ledger", "drops_logged_total"),
		Help: "Number of drops logged",
	}, []string{"raid", "chest"})
	DropsRemoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "ledger", "drops_removed_total"),
		Help: "Number of drops removed by undo",
	}, []string{"raid"})
	LedgerSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "ledger", "size"),
		Help: "Number of records currently held by the ledger",
	})
	SettingsSaveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "settings", "save_duration_seconds"),
		Help:    "Duration of settings snapshot saves in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	}, []string{"result"})
	ExportedRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "export", "rows_total"),
		Help: "Number of ledger rows written to CSV exports",
	})
)
