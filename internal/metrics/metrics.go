package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Chat holds the counters exported for chatbot analytics. Each instance
// owns its registry so tests can create as many as they need.
type Chat struct {
	registry   *prometheus.Registry
	queries    *prometheus.CounterVec
	unresolved prometheus.Counter
	logErrors  prometheus.Counter
}

func NewChat() *Chat {
	m := &Chat{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saicollege",
			Subsystem: "chat",
			Name:      "queries_total",
			Help:      "Chat messages answered, by the rule that produced the reply.",
		}, []string{"rule"}),
		unresolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "saicollege",
			Subsystem: "chat",
			Name:      "unresolved_total",
			Help:      "Chat messages no rule could answer.",
		}),
		logErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "saicollege",
			Subsystem: "chat",
			Name:      "log_errors_total",
			Help:      "Chat log appends that failed.",
		}),
	}

	m.registry.MustRegister(
		m.queries,
		m.unresolved,
		m.logErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Chat) ObserveReply(rule string, unresolved bool) {
	m.queries.WithLabelValues(rule).Inc()
	if unresolved {
		m.unresolved.Inc()
	}
}

func (m *Chat) ObserveLogError() {
	m.logErrors.Inc()
}

func (m *Chat) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
