// Package metrics defines prometheus collectors for the content pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProviderCalls counts chat completion calls per provider and outcome (ok, error)
	ProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alpcontent",
		Name:      "provider_calls_total",
		Help:      "LLM provider calls by outcome",
	}, []string{"provider", "outcome"})

	// FallbackUsed counts static fallback payloads returned per use case
	FallbackUsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alpcontent",
		Name:      "fallback_used_total",
		Help:      "Static fallback content served after all providers failed",
	}, []string{"use_case"})

	// ArticlesFetched counts normalized articles per source type
	ArticlesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alpcontent",
		Name:      "articles_fetched_total",
		Help:      "Articles fetched by source type",
	}, []string{"source_type"})

	// SourceErrors counts failed source fetches
	SourceErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alpcontent",
		Name:      "source_errors_total",
		Help:      "Failed fetches by source type",
	}, []string{"source_type"})

	// GenerationRuns counts generation runs per content kind and result
	GenerationRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alpcontent",
		Name:      "generation_runs_total",
		Help:      "Generation runs by kind and result",
	}, []string{"kind", "result"})

	// ProviderLatency tracks chat completion latency including retries
	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "alpcontent",
		Name:      "provider_latency_seconds",
		Help:      "LLM provider call latency",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
	}, []string{"provider"})
)
