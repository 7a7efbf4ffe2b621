package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "admin"

// Metrics holds the service's collectors. It satisfies dashboard.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	fetchDuration *prometheus.HistogramVec
	ordersLoaded  prometheus.Gauge
	mutations     *prometheus.CounterVec
	logins        *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		fetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_fetch_duration_seconds",
			Help:      "Time spent reading all orders from the content store.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
		ordersLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders_loaded",
			Help:      "Number of orders in the dashboard mirror after the last successful fetch.",
		}),
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_mutations_total",
			Help:      "Order mutations sent to the content store.",
		}, []string{"action", "result"}),
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Admin login attempts.",
		}, []string{"result"}),
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) ObserveFetch(elapsed time.Duration, err error) {
	m.fetchDuration.WithLabelValues(result(err)).Observe(elapsed.Seconds())
}

func (m *Metrics) OrdersLoaded(n int) {
	m.ordersLoaded.Set(float64(n))
}

func (m *Metrics) Mutation(action string, err error) {
	m.mutations.WithLabelValues(action, result(err)).Inc()
}

func (m *Metrics) Login(ok bool) {
	if ok {
		m.logins.WithLabelValues("ok").Inc()
		return
	}
	m.logins.WithLabelValues("rejected").Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
