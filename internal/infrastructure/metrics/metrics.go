package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ledger metrics
	AccountsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finanzas_accounts_created_total",
		Help: "Total number of accounts created",
	})

	TransactionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finanzas_transactions_created_total",
		Help: "Total number of transactions created",
	})

	TransactionsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finanzas_transactions_updated_total",
		Help: "Total number of transactions updated",
	})

	TransactionsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finanzas_transactions_deleted_total",
		Help: "Total number of transactions deleted",
	})

	// Snapshot metrics
	SnapshotWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finanzas_snapshot_writes_total",
		Help: "Total number of snapshot writes",
	})

	SnapshotWriteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "finanzas_snapshot_write_duration_seconds",
		Help:    "Duration of snapshot writes",
		Buckets: prometheus.DefBuckets,
	})

	SnapshotLoadFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finanzas_snapshot_load_fallbacks_total",
		Help: "Total number of snapshot loads that fell back to an empty state",
	})
)
