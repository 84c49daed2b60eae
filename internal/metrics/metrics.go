// Package metrics exposes Prometheus instrumentation for the navigation
// engine. Collectors register on the default registry; hosts that scrape
// /metrics get them for free.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "navgate_searches_total",
		Help: "Pathfinding searches by outcome",
	}, []string{"outcome"})

	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "navgate_search_expanded_nodes",
		Help:    "Nodes expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	rebuildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "navgate_graph_rebuilds_total",
		Help: "Graph snapshot rebuilds",
	})

	graphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "navgate_graph_nodes",
		Help: "Nodes in the most recently built snapshot",
	})

	graphLinks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "navgate_graph_links",
		Help: "Directed link entries in the most recently built snapshot",
	})
)

// RecordSearch records one completed search.
func RecordSearch(outcome string, expanded int) {
	searchesTotal.WithLabelValues(outcome).Inc()
	searchExpanded.Observe(float64(expanded))
}

// RecordRebuild records a snapshot build and the resulting graph size.
func RecordRebuild(nodes, links int) {
	rebuildsTotal.Inc()
	graphNodes.Set(float64(nodes))
	graphLinks.Set(float64(links))
}
