package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	compositionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "magic_prompt_compositions_total",
			Help: "Total number of composed prompts by source (wizard or direct).",
		},
		[]string{"source"},
	)

	wizardSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "magic_prompt_wizard_sessions_total",
			Help: "Total number of wizard sessions started by variant.",
		},
		[]string{"variant"},
	)

	savedPromptsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "magic_prompt_saved_prompts_total",
		Help: "Total number of prompts saved to the library.",
	})

	translationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "magic_prompt_translations_total",
			Help: "Total number of translation attempts by provider and status.",
		},
		[]string{"provider", "status"},
	)

	adminOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "magic_prompt_admin_operations_total",
			Help: "Total number of admin user operations by operation and status.",
		},
		[]string{"op", "status"},
	)
)

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
