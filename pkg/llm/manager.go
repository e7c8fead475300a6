package llm

import (
	"context"
	"slices"

	log "github.com/go-pkgz/lgr"

	"github.com/pdtriglav/alpcontent/pkg/config"
	"github.com/pdtriglav/alpcontent/pkg/metrics"
)

// Outcome tells whether a result came from a live provider or from static fallback content
type Outcome int

const (
	OutcomeGenerated Outcome = iota
	OutcomeFallback
)

func (o Outcome) String() string {
	if o == OutcomeFallback {
		return "fallback"
	}
	return "generated"
}

// Result is the outcome of a chat completion with fallback
type Result struct {
	Payload  Payload
	Provider string // provider which answered or supplied the fallback, "static" if none configured
	Outcome  Outcome
}

// UsedFallback is true when no live provider produced the payload
func (r Result) UsedFallback() bool { return r.Outcome == OutcomeFallback }

// Manager holds configured gateways and chains them per use case
type Manager struct {
	gateways   map[string]Gateway
	order      []string // configured gateways in registration order
	priorities map[UseCase][]string
}

// NewManager keeps the configured gateways only. Priorities map a use case to provider names;
// configured providers missing from a list are tried after the listed ones.
func NewManager(gateways []Gateway, priorities map[string][]string) *Manager {
	m := &Manager{gateways: map[string]Gateway{}, priorities: map[UseCase][]string{}}
	for _, g := range gateways {
		if !g.Configured() {
			log.Printf("[DEBUG] llm provider %s is not configured, skipped", g.Name())
			continue
		}
		m.gateways[g.Name()] = g
		m.order = append(m.order, g.Name())
	}
	for useCase, names := range priorities {
		m.priorities[UseCase(useCase)] = names
	}
	log.Printf("[INFO] llm providers available: %v", m.order)
	return m
}

// NewManagerFromConfig builds OpenAI-compatible gateways for all configured providers
func NewManagerFromConfig(cfg config.LLMConfig) *Manager {
	retry := RetryConfig{Attempts: cfg.MaxRetries, Delay: cfg.RetryDelay, MaxDelay: cfg.MaxRetryDelay, Timeout: cfg.Timeout}
	gateways := make([]Gateway, 0, len(cfg.Providers))
	for _, p := range cfg.Providers {
		gateways = append(gateways, NewOpenAIGateway(p, retry))
	}
	return NewManager(gateways, cfg.Priorities)
}

// Available returns names of configured providers
func (m *Manager) Available() []string {
	return slices.Clone(m.order)
}

// ChatCompletionWithFallback tries providers in priority order and moves to the next one on any error.
// When all fail it returns static fallback content. It never returns an error.
func (m *Manager) ChatCompletionWithFallback(ctx context.Context, msgs []Message, useCase UseCase, opts Options) Result {
	order := m.orderFor(useCase)
	for _, name := range order {
		payload, err := m.gateways[name].ChatCompletion(ctx, msgs, opts)
		if err != nil {
			log.Printf("[WARN] provider %s failed for %s: %v", name, useCase, err)
			continue
		}
		log.Printf("[DEBUG] provider %s answered %s request", name, useCase)
		return Result{Payload: payload, Provider: name, Outcome: OutcomeGenerated}
	}

	metrics.FallbackUsed.WithLabelValues(string(useCase)).Inc()
	if len(order) == 0 {
		log.Printf("[WARN] no llm providers configured, static %s fallback used", useCase)
		return Result{Payload: DefaultFallback(useCase), Provider: "static", Outcome: OutcomeFallback}
	}
	log.Printf("[ERROR] all providers failed for %s (%v), fallback content used", useCase, order)
	first := m.gateways[order[0]]
	return Result{Payload: first.FallbackContent(useCase), Provider: first.Name(), Outcome: OutcomeFallback}
}

// TestAllProviders runs connection test for each configured provider
func (m *Manager) TestAllProviders(ctx context.Context) map[string]bool {
	res := make(map[string]bool, len(m.order))
	for _, name := range m.order {
		res[name] = m.gateways[name].TestConnection(ctx)
	}
	return res
}

// orderFor returns configured provider names for a use case, unknown use cases follow the historical order
func (m *Manager) orderFor(useCase UseCase) []string {
	preferred, ok := m.priorities[useCase]
	if !ok {
		preferred = m.priorities[UseCaseHistorical]
	}

	res := make([]string, 0, len(m.order))
	for _, name := range preferred {
		if _, ok := m.gateways[name]; ok && !slices.Contains(res, name) {
			res = append(res, name)
		}
	}
	for _, name := range m.order {
		if !slices.Contains(res, name) {
			res = append(res, name)
		}
	}
	return res
}
