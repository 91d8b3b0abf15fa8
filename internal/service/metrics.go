package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	tapsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "game_taps_total",
			Help: "Total successful tap actions",
		},
	)
	tasksCompletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_tasks_completed_total",
			Help: "Total task completions, by task type",
		},
		[]string{"type"},
	)
	referralsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "game_referrals_total",
			Help: "Total referrals recorded",
		},
	)
)

func init() {
	prometheus.MustRegister(tapsTotal)
	prometheus.MustRegister(tasksCompletedTotal)
	prometheus.MustRegister(referralsTotal)
}
