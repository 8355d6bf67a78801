package metrics

import "github.com/prometheus/client_golang/prometheus"

// Import results.
const (
	ResultSuccess    = "success"
	ResultParseError = "parse_error"
	ResultStoreError = "store_error"
)

// Search kinds.
const (
	SearchAll    = "all"
	SearchRanked = "ranked"
	SearchMap    = "map"
)

var (
	ImportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imports_total",
			Help:      "Total number of full-replace imports",
		},
		[]string{"result"},
	)

	ImportRowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_rows_total",
			Help:      "Rows stored by imports",
		},
		[]string{"status"}, // "active" / "voided"
	)

	UnrecognizedVoidedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_unrecognized_voided_total",
			Help:      "Distinct unrecognized Anulado tokens seen by imports",
		},
	)

	ImportWarningsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_warnings_total",
			Help:      "Non-fatal validation warnings raised by imports",
		},
	)

	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of client searches",
		},
		[]string{"kind"},
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of records returned by a search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(ImportsTotal)
	prometheus.MustRegister(ImportRowsTotal)
	prometheus.MustRegister(UnrecognizedVoidedTotal)
	prometheus.MustRegister(ImportWarningsTotal)
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchResults)
}

// ObserveSearch counts a search of kind and the size of its result.
func ObserveSearch(kind string, results int) {
	SearchesTotal.WithLabelValues(kind).Inc()
	SearchResults.WithLabelValues(kind).Observe(float64(results))
}
