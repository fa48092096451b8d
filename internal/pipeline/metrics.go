package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshSuccessTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "auth",
		Name:      "refresh_success_total",
		Help:      "Credential refreshes that minted a new access credential.",
	})

	refreshFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "auth",
		Name:      "refresh_failures_total",
		Help:      "Credential refreshes rejected by the server; each one destroys the session.",
	})

	refreshCoalescedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "auth",
		Name:      "refresh_coalesced_total",
		Help:      "401 recoveries that reused a refresh performed by a concurrent request.",
	})

	refreshReplaysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "auth",
		Name:      "refresh_replays_total",
		Help:      "Original requests replayed after a successful refresh.",
	})
)
