package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kankou_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"route", "status"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kankou_http_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
	DatasetRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "kankou_dataset_rows",
		Help: "Rows loaded per dataset",
	}, []string{"dataset"})
	DatasetLoadErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kankou_dataset_load_errors_total",
		Help: "Datasets that failed to load",
	}, []string{"dataset"})
	MapMarkersSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kankou_map_markers_skipped_total",
		Help: "Spots left off the map because of missing or malformed coordinates",
	})
	RecommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kankou_recommendations_total",
		Help: "Quiz submissions by outcome",
	}, []string{"result"})
	RecommendationUnresolvedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kankou_recommendation_unresolved_total",
		Help: "Suggested spot names missing from the spot dataset",
	})
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "kankou_active_sessions",
		Help: "Viewer sessions currently held in memory",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(DatasetRows)
	prometheus.MustRegister(DatasetLoadErrorsTotal)
	prometheus.MustRegister(MapMarkersSkippedTotal)
	prometheus.MustRegister(RecommendationsTotal)
	prometheus.MustRegister(RecommendationUnresolvedTotal)
	prometheus.MustRegister(ActiveSessions)
}

// Handler exposes the default registry for /metrics.
func Handler() http.Handler { return promhttp.Handler() }
