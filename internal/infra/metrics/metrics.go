package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_fetches_total",
			Help: "The total number of record fetches by outcome",
		},
		[]string{"source", "status"},
	)

	RecordFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "record_fetch_duration_seconds",
			Help:    "Duration of record fetches",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	RecordsLoaded = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "records_loaded",
			Help:    "Number of records returned by successful fetches",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
		[]string{"source"},
	)

	DiscardedResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_fetch_discarded_total",
			Help: "Fetch results dropped because the view was torn down first",
		},
		[]string{"source"},
	)

	ScriptLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maps_script_loads_total",
			Help: "Maps API bootstrap attempts by outcome",
		},
		[]string{"status"},
	)

	ViewsMounted = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "views_mounted",
			Help: "Number of currently mounted views",
		},
		[]string{"component"},
	)

	Navigations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carousel_navigations_total",
			Help: "Carousel navigation actions",
		},
		[]string{"component", "direction"},
	)

	EventPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_event_publish_errors_total",
			Help: "Total number of view events that could not be published",
		},
		[]string{"component"},
	)
)
