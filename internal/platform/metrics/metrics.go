package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// RoutesPlanned counts pick route requests by outcome.
	RoutesPlanned = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "pick_routes_planned_total", Help: "Pick route requests by outcome."},
		[]string{"outcome"},
	)
	// RouteDistance tracks the total distance of planned routes in floor units.
	RouteDistance = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "pick_route_distance_units", Help: "Total distance of planned pick routes.", Buckets: []float64{5, 10, 20, 50, 100, 200, 500, 1000}},
	)
	// RouteStops tracks the number of stops per planned route.
	RouteStops = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "pick_route_stops", Help: "Number of stops in planned pick routes.", Buckets: []float64{2, 3, 5, 8, 13, 21, 34, 55}},
	)
	// RouteCacheLookups counts route cache lookups by result (hit, miss, error).
	RouteCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "pick_route_cache_lookups_total", Help: "Route cache lookups by result."},
		[]string{"result"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(RoutesPlanned)
		Registry.MustRegister(RouteDistance)
		Registry.MustRegister(RouteStops)
		Registry.MustRegister(RouteCacheLookups)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
