package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "futoru",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by path and status.",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "futoru",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	mealLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "futoru",
			Name:      "meal_logged_total",
			Help:      "Count of meal logs recorded by source.",
		},
		[]string{"source"},
	)

	mealDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "futoru",
			Name:      "meal_deleted_total",
			Help:      "Count of meal logs deleted by their owners.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(requestsTotal, requestDuration, mealLogged, mealDeleted)
	})
}

func IncMealLogged(source string) {
	mealLogged.WithLabelValues(source).Inc()
}

func IncMealDeleted() {
	mealDeleted.Inc()
}

// Middleware records per-request counters and latency.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
