// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package metrics implements a Prometheus backed [observe.Observer].
//
// Register a [Collector] to count every reported absence, failure and
// bookkeeping event, partitioned by kind and namespace:
//
//	c := metrics.NewCollector(prometheus.DefaultRegisterer)
//	config.SetObserver(c)
package metrics

import (
	"github.com/z5labs/candor/observe"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector counts reported events. It is safe for concurrent use.
type Collector struct {
	events *prometheus.CounterVec
}

// NewCollector registers the event metrics with reg and returns the
// collector counting into them. Registering two collectors with the
// same registerer panics, reuse one collector instead.
func NewCollector(reg prometheus.Registerer) *Collector {
	return &Collector{
		events: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "candor_events_total",
				Help: "Total number of reported unhappy path events",
			},
			[]string{"kind", "namespace"},
		),
	}
}

// Observe implements the [observe.Observer] interface.
func (c *Collector) Observe(e observe.Event) {
	if c == nil {
		return
	}

	c.events.WithLabelValues(string(e.Kind), e.Namespace).Inc()
}
