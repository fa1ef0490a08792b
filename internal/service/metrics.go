package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "store",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of created orders.",
	})

	ordersApproved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "store",
		Subsystem: "orders",
		Name:      "approved_total",
		Help:      "Total number of orders moved to paid.",
	})

	downloadsServed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "store",
		Subsystem: "downloads",
		Name:      "served_total",
		Help:      "Total number of protected downloads opened.",
	})

	downloadsDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "store",
		Subsystem: "downloads",
		Name:      "denied_total",
		Help:      "Protected download attempts rejected by the token gate.",
	}, []string{"reason"})
)
