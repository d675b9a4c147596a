package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the prospect evaluation service

var (
	// API Call metrics
	APICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospects_api_calls_total",
			Help: "Total number of CollegeFootballData API calls",
		},
		[]string{"endpoint", "status"},
	)

	APICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prospects_api_call_duration_seconds",
			Help:    "Duration of API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Database metrics
	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospects_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "table", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prospects_db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "prospects_db_connections_active",
			Help: "Number of active database connections",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "prospects_db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// Cache metrics
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prospects_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prospects_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// Evaluation metrics
	EvaluationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospects_evaluation_runs_total",
			Help: "Total number of evaluation pipeline runs",
		},
		[]string{"type", "status"},
	)

	EvaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prospects_evaluation_duration_seconds",
			Help:    "Duration of evaluation pipeline runs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"type"},
	)

	ProspectsEvaluated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prospects_evaluated_total",
			Help: "Total number of prospects evaluated",
		},
	)

	ProspectsGraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prospects_graded_total",
			Help: "Total number of prospects graded",
		},
	)

	ProspectsInClass = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "prospects_class_size",
			Help: "Number of prospects in the active draft class",
		},
	)

	ProspectTierDistribution = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "prospects_tier_count",
			Help: "Number of prospects per tier after the latest run",
		},
		[]string{"tier"},
	)

	ComparisonPoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "prospects_comparison_pool_size",
			Help: "Size of the NFL comparison pool",
		},
	)

	PhysicalUpgradesApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prospects_physical_upgrades_total",
			Help: "Total number of tier upgrades from physical measurables",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospects_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)

	// System metrics
	SystemUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "prospects_system_uptime_seconds",
			Help: "System uptime in seconds",
		},
	)

	LastSuccessfulRun = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "prospects_last_successful_run_timestamp",
			Help: "Timestamp of last successful evaluation run",
		},
	)
)

// RecordAPICall records an API call metric
func RecordAPICall(endpoint, status string, duration float64) {
	APICallsTotal.WithLabelValues(endpoint, status).Inc()
	APICallDuration.WithLabelValues(endpoint).Observe(duration)
}

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table, status string, duration float64) {
	DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration)
}

// RecordCacheHit records a cache hit
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// RecordEvaluationRun records an evaluation pipeline run
func RecordEvaluationRun(runType, status string, duration float64) {
	EvaluationRunsTotal.WithLabelValues(runType, status).Inc()
	EvaluationDuration.WithLabelValues(runType).Observe(duration)

	if status == "success" {
		LastSuccessfulRun.SetToCurrentTime()
	}
}

// RecordProspectEvaluated counts one evaluated prospect
func RecordProspectEvaluated() {
	ProspectsEvaluated.Inc()
}

// RecordProspectGraded counts one graded prospect
func RecordProspectGraded() {
	ProspectsGraded.Inc()
}

// RecordPhysicalUpgrade counts one measurables-driven tier upgrade
func RecordPhysicalUpgrade() {
	PhysicalUpgradesApplied.Inc()
}

// UpdateTierDistribution sets the per-tier prospect counts
func UpdateTierDistribution(counts map[string]int) {
	for tier, count := range counts {
		ProspectTierDistribution.WithLabelValues(tier).Set(float64(count))
	}
}

// RecordError records an error
func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

// UpdateDBConnectionStats updates database connection pool statistics
func UpdateDBConnectionStats(active, idle int32) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
