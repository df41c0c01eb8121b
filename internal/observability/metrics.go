package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the bot.
type Metrics struct {
	WebhookRequests *prometheus.CounterVec // labels: outcome={ok,bad_signature,bad_payload}
	EventsReceived  *prometheus.CounterVec // labels: type={text,ignored,verification}
	Queries         *prometheus.CounterVec // labels: outcome (see domain query outcomes)

	FetchRequests *prometheus.CounterVec   // labels: report={metar,taf}, outcome={success,not_found,error}
	FetchDuration *prometheus.HistogramVec // labels: report={metar,taf}

	Replies *prometheus.CounterVec // labels: outcome={sent,failed}

	QueryLogPublished prometheus.Counter
	QueryLogErrors    prometheus.Counter
	QueryLogEnabled   prometheus.Gauge
}

// NewMetrics creates and registers all bot metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.WebhookRequests,
		m.EventsReceived,
		m.Queries,
		m.FetchRequests,
		m.FetchDuration,
		m.Replies,
		m.QueryLogPublished,
		m.QueryLogErrors,
		m.QueryLogEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		WebhookRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wx_bot",
			Name:      "webhook_requests_total",
			Help:      "Webhook callbacks received, by outcome.",
		}, []string{"outcome"}),
		EventsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wx_bot",
			Name:      "events_received_total",
			Help:      "Events extracted from webhook envelopes, by type.",
		}, []string{"type"}),
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wx_bot",
			Name:      "queries_total",
			Help:      "Weather queries handled, by outcome.",
		}, []string{"outcome"}),
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wx_bot",
			Name:      "fetch_requests_total",
			Help:      "TGFTP mirror requests, by report type and outcome.",
		}, []string{"report", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wx_bot",
			Name:      "fetch_duration_seconds",
			Help:      "TGFTP mirror request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"report"}),
		Replies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wx_bot",
			Name:      "replies_total",
			Help:      "Reply API calls, by outcome.",
		}, []string{"outcome"}),
		QueryLogPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wx_bot",
			Name:      "querylog_published_total",
			Help:      "Query-log records published to Kafka.",
		}),
		QueryLogErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wx_bot",
			Name:      "querylog_errors_total",
			Help:      "Query-log publish failures.",
		}),
		QueryLogEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "wx_bot",
			Name:      "querylog_enabled",
			Help:      "1 when query-log publishing is enabled, 0 otherwise.",
		}),
	}
}
