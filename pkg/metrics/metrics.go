package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	registerer prometheus.Registerer

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	ReservationDecisions *prometheus.CounterVec
	ReservationRetries   prometheus.Counter
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (удобно для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	factory := promauto.With(reg)

	return &Metrics{
		registerer: reg,
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		ReservationDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_decisions_total",
			Help:        "Reservation validation outcomes by rejection kind",
			ConstLabels: labels,
		}, []string{"outcome", "kind"}),
		ReservationRetries: factory.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_create_retries_total",
			Help:        "Retries of reservation creation after a storage-level conflict",
			ConstLabels: labels,
		}),
	}
}

// RegisterDB регистрирует сборщик статистики пула соединений
func (m *Metrics) RegisterDB(db *sql.DB, dbName string) error {
	return m.registerer.Register(collectors.NewDBStatsCollector(db, dbName))
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDecision фиксирует результат проверки бронирования
func (m *Metrics) ObserveDecision(accepted bool, kind string) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
		kind = "none"
	}
	m.ReservationDecisions.WithLabelValues(outcome, kind).Inc()
}

// ObserveRetry фиксирует повтор создания бронирования
func (m *Metrics) ObserveRetry() {
	if m == nil {
		return
	}
	m.ReservationRetries.Inc()
}
