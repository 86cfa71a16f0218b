// Package metrics holds the Prometheus collectors of the identifier service.
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a dedicated registry so several servers can coexist in one process.
type Metrics struct {
	registry       *prometheus.Registry
	generated      *prometheus.CounterVec
	requestCounter *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.generated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "idgen",
			Name:      "ids_generated_total",
			Help:      "Total number of identifiers generated",
		},
		[]string{"strategy"},
	)
	m.requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "idgen",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"path", "status"},
	)
	m.registry.MustRegister(m.generated, m.requestCounter)
	return m
}

// Generated adds count identifiers produced by strategy.
func (m *Metrics) Generated(strategy string, count int) {
	m.generated.WithLabelValues(strategy).Add(float64(count))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Middleware counts requests by route and status.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestCounter.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
