package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	createdTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pastebin_pastes_created_total",
		Help: "Number of pastes created",
	})

	viewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pastebin_paste_reads_total",
		Help: "Quota-consuming read outcomes",
	}, []string{"outcome"})

	conflictTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pastebin_store_conflicts_total",
		Help: "Conditional-update conflicts retried by the read loop",
	})
)
