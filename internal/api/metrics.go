package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dshills/winequality/internal/model"
)

// metrics holds the server's Prometheus collectors.
type metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	predictions  *prometheus.CounterVec
	quality      prometheus.Histogram
	defaulted    prometheus.Counter
	rangeWarning prometheus.Counter
}

func newMetrics(reg prometheus.Registerer, namespace string) *metrics {
	f := promauto.With(reg)
	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of API requests",
		}, []string{"method", "path", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "path"}),
		predictions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Predictions served, by category",
		}, []string{"category"}),
		quality: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_quality",
			Help:      "Distribution of predicted quality values",
			Buckets:   prometheus.LinearBuckets(3, 0.5, 11),
		}),
		defaulted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "defaulted_fields_total",
			Help:      "Request fields replaced by their documented default",
		}),
		rangeWarning: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "range_warnings_total",
			Help:      "Resolved fields outside their declared range",
		}),
	}
}

// middleware records request counts and latency. Unmatched routes share one
// path label.
func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		m.requests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

func (m *metrics) observePrediction(p model.Prediction, defaulted, warnings int) {
	m.predictions.WithLabelValues(string(p.Category)).Inc()
	m.quality.Observe(p.Quality)
	m.defaulted.Add(float64(defaulted))
	m.rangeWarning.Add(float64(warnings))
}
