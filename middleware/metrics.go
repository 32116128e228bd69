package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"tailscale-relay-service/request"
)

type MetricStorage struct {
	statusCounter *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

func NewMetricStorage(registry prometheus.Registerer) *MetricStorage {
	return &MetricStorage{
		statusCounter: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Namespace: "relay",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of handled requests by endpoint and status class",
		}, []string{"endpoint", "status"}),
		duration: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "relay",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Request handling duration, external invocation included",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

func (s *MetricStorage) ObserveRequest(endpoint string, statusCode int, duration time.Duration) {
	s.statusCounter.WithLabelValues(endpoint, statusClass(statusCode)).Inc()
	s.duration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func statusClass(statusCode int) string {
	switch {
	case statusCode >= 100 && statusCode < 200:
		return "1xx"
	case statusCode < 300:
		return "2xx"
	case statusCode < 400:
		return "3xx"
	case statusCode < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func Metrics(storage *MetricStorage) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			writer := &writerWrapper{ResponseWriter: ctx.ResponseWriter()}
			ctx.SetResponseWriter(writer)

			start := time.Now()
			err := next.Handle(ctx)
			storage.ObserveRequest(ctx.Endpoint(), writer.StatusCode(), time.Since(start))

			return err
		})
	}
}
