// Package metrics holds the domain counters exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WizardCompletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lawhub_wizard_completions_total",
		Help: "Wizard sessions that reached a solution, by scenario.",
	}, []string{"scenario"})

	ChatMessages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lawhub_chat_messages_total",
		Help: "User messages answered by the chat bot.",
	})

	DocumentUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lawhub_document_uploads_total",
		Help: "Document uploads, by outcome (accepted, rejected).",
	}, []string{"outcome"})

	BusyRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lawhub_busy_rejections_total",
		Help: "Triggers rejected because the page was still working, by page.",
	}, []string{"page"})
)
