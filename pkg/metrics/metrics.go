package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration     *prometheus.HistogramVec
	DBQueryErrors       *prometheus.CounterVec
	DBConnections       *prometheus.GaugeVec
	DBWaitCount         *prometheus.GaugeVec
	DBWaitDurationTotal *prometheus.GaugeVec

	// Доменные метрики
	TimeSlotsGenerated  *prometheus.CounterVec
	AssignmentConflicts *prometheus.CounterVec
	AssignmentsCreated  *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		DBWaitDurationTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_wait_duration_seconds",
			Help: "Total time blocked waiting for a new connection",
		}, []string{"service"}),

		TimeSlotsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "time_slots_generated_total",
			Help: "Total number of generated calendar time slots",
		}, []string{"service", "availability"}),

		AssignmentConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "assignment_conflicts_total",
			Help: "Total number of rejected assignments because of an occupied time range",
		}, []string{"service", "operation"}),

		AssignmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "assignments_created_total",
			Help: "Total number of created work assignments",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBConnections,
		m.DBWaitCount,
		m.DBWaitDurationTotal,
		m.TimeSlotsGenerated,
		m.AssignmentConflicts,
		m.AssignmentsCreated,
	)

	return m
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64, waitDuration time.Duration) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.DBConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
	m.DBWaitCount.WithLabelValues(m.serviceName).Set(float64(waitCount))
	m.DBWaitDurationTotal.WithLabelValues(m.serviceName).Set(waitDuration.Seconds())
}

// ObserveTimeSlots фиксирует количество сгенерированных слотов
func (m *Metrics) ObserveTimeSlots(available, occupied int) {
	if m == nil {
		return
	}
	m.TimeSlotsGenerated.WithLabelValues(m.serviceName, "available").Add(float64(available))
	m.TimeSlotsGenerated.WithLabelValues(m.serviceName, "occupied").Add(float64(occupied))
}

// IncAssignmentConflict фиксирует отклоненное из-за пересечения назначение
func (m *Metrics) IncAssignmentConflict(operation string) {
	if m == nil {
		return
	}
	m.AssignmentConflicts.WithLabelValues(m.serviceName, operation).Inc()
}

// IncAssignmentCreated фиксирует созданное назначение
func (m *Metrics) IncAssignmentCreated() {
	if m == nil {
		return
	}
	m.AssignmentsCreated.WithLabelValues(m.serviceName).Inc()
}
