package metrics

import "github.com/prometheus/client_golang/prometheus"

// QuoteMetrics exposes counters/histograms for the chat, lead and quote flows.
type QuoteMetrics struct {
	chatRequests      *prometheus.CounterVec
	leads             *prometheus.CounterVec
	quotes            *prometheus.CounterVec
	completionLatency prometheus.Histogram
}

func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	m := &QuoteMetrics{
		chatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cotacao",
			Name:      "chat_requests_total",
			Help:      "Total chat turns served, by readiness",
		}, []string{"ready"}),
		leads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cotacao",
			Name:      "leads_total",
			Help:      "Lead recording attempts, by outcome",
		}, []string{"outcome"}),
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cotacao",
			Name:      "quotes_total",
			Help:      "Quote requests served, by source",
		}, []string{"source"}),
		completionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cotacao",
			Name:      "completion_latency_seconds",
			Help:      "Latency of chat completion calls",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.chatRequests, m.leads, m.quotes, m.completionLatency)
	return m
}

func (m *QuoteMetrics) ObserveChat(ready bool) {
	if m == nil {
		return
	}
	label := "false"
	if ready {
		label = "true"
	}
	m.chatRequests.WithLabelValues(label).Inc()
}

func (m *QuoteMetrics) ObserveLead(outcome string) {
	if m == nil {
		return
	}
	m.leads.WithLabelValues(outcome).Inc()
}

func (m *QuoteMetrics) ObserveQuote(source string) {
	if m == nil {
		return
	}
	m.quotes.WithLabelValues(source).Inc()
}

func (m *QuoteMetrics) ObserveCompletionLatency(seconds float64) {
	if m == nil {
		return
	}
	m.completionLatency.Observe(seconds)
}
