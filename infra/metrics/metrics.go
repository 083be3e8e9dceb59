package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanrecon_queries_total",
		Help: "Executed loan queries by classified category.",
	}, []string{"query_type"})

	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "loanrecon_query_duration_seconds",
		Help:    "Loan query execution time by classified category.",
		Buckets: prometheus.DefBuckets,
	}, []string{"query_type"})

	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanrecon_requests_total",
		Help: "Protocol requests by method.",
	}, []string{"method"})

	ProtocolErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanrecon_protocol_errors_total",
		Help: "Error responses by JSON-RPC error code.",
	}, []string{"code"})

	StoreRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "loanrecon_store_records",
		Help: "Records in the published snapshot.",
	})

	StoreRebuildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loanrecon_store_rebuilds_total",
		Help: "Snapshot builds since process start.",
	})
)
