package routes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registryReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_reads_total",
		Help: "Registry documents served, by kind and outcome",
	}, []string{"kind", "outcome"})

	renderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "registry_page_render_seconds",
		Help:    "Time spent rendering HTML pages",
		Buckets: prometheus.DefBuckets,
	}, []string{"page"})
)

func countRead(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	registryReads.WithLabelValues(kind, outcome).Inc()
}

func observeRender(page string) func() {
	timer := prometheus.NewTimer(renderDuration.WithLabelValues(page))

	return func() { timer.ObserveDuration() }
}
