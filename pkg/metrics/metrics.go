package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики базы данных
	DBQueryDuration   *prometheus.HistogramVec
	DBConnectionsOpen *prometheus.GaugeVec
	DBConnectionsIdle *prometheus.GaugeVec

	// Метрики планировщика напоминаний
	ReminderSweepsTotal     *prometheus.CounterVec
	RemindersSentTotal      *prometheus.CounterVec
	ReminderFailuresTotal   *prometheus.CounterVec
	NotificationsSentTotal  *prometheus.CounterVec
	NotificationErrorsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"state"}),

		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"state"}),

		ReminderSweepsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminder_sweeps_total",
			Help:        "Total number of reminder scheduler sweeps",
			ConstLabels: constLabels,
		}, []string{"result"}),

		RemindersSentTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminders_sent_total",
			Help:        "Total number of booking reminders sent",
			ConstLabels: constLabels,
		}, []string{"lead_minutes"}),

		ReminderFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminder_failures_total",
			Help:        "Total number of failed reminder deliveries",
			ConstLabels: constLabels,
		}, []string{"lead_minutes"}),

		NotificationsSentTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_sent_total",
			Help:        "Total number of notifications delivered",
			ConstLabels: constLabels,
		}, []string{"event_kind"}),

		NotificationErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "notification_errors_total",
			Help:        "Total number of notification delivery failures",
			ConstLabels: constLabels,
		}, []string{"event_kind"}),
	}
}
