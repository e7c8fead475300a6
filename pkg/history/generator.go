// Package history produces the "on this day" mountaineering event. Events are looked up by calendar day,
// generated through the llm manager when missing and persisted with one record per historical occurrence.
package history

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"

	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/llm"
	"github.com/pdtriglav/alpcontent/pkg/metrics"
	"github.com/pdtriglav/alpcontent/pkg/repository"
)

//go:generate moq -out mocks/deps.go -pkg mocks -skip-ensure -fmt goimports . Completer Store

//go:embed prompt.md
var defaultPrompt string

const systemPrompt = "You are a knowledgeable mountaineering historian. " +
	"Always respond with valid JSON containing historical mountaineering events."

// Completer runs a chat completion with provider fallback
type Completer interface {
	ChatCompletionWithFallback(ctx context.Context, msgs []llm.Message, useCase llm.UseCase, opts llm.Options) llm.Result
}

// Store persists historical events
type Store interface {
	GetEvent(ctx context.Context, id int64) (domain.HistoricalEvent, error)
	GetEventForDay(ctx context.Context, month, day int) (domain.HistoricalEvent, error)
	CreateEventIfDayEmpty(ctx context.Context, event domain.HistoricalEvent) (domain.HistoricalEvent, bool, error)
	UpdateEvent(ctx context.Context, event *domain.HistoricalEvent) error
	ImportEvents(ctx context.Context, events []domain.HistoricalEvent) (int, error)
}

// Generator makes and stores historical events
type Generator struct {
	llm      Completer
	store    Store
	template string
	opts     llm.Options
	flight   singleflight.Group

	flightTimeout time.Duration // limit of a generation shared by concurrent callers
}

// Params holds generator dependencies and settings
type Params struct {
	LLM         Completer
	Store       Store
	Template    string // prompt with [current_date] placeholder, embedded default if empty
	Temperature float64
	MaxTokens   int
}

// RegenerateResult is the regenerated record and whether static fallback content was stored
type RegenerateResult struct {
	Event        domain.HistoricalEvent `json:"event"`
	UsedFallback bool                   `json:"used_fallback"`
}

// NewGenerator makes a generator
func NewGenerator(p Params) *Generator {
	tmpl := p.Template
	if strings.TrimSpace(tmpl) == "" {
		tmpl = defaultPrompt
	}
	return &Generator{
		llm:      p.LLM,
		store:    p.Store,
		template: tmpl,
		opts:     llm.Options{Temperature: p.Temperature, MaxTokens: p.MaxTokens, JSON: true},

		flightTimeout: 3 * time.Minute,
	}
}

// LoadTemplate reads a prompt template file, empty path returns the embedded template
func LoadTemplate(path string) (string, error) {
	if path == "" {
		return defaultPrompt, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if err != nil {
		return "", fmt.Errorf("read prompt template %s: %w", path, err)
	}
	if !strings.Contains(string(data), "[current_date]") {
		return "", fmt.Errorf("prompt template %s has no [current_date] placeholder", path)
	}
	return string(data), nil
}

// GetOrCreate returns the event for the calendar day of date, generating it if the day has none.
// Concurrent callers for the same day share one generation.
func (g *Generator) GetOrCreate(ctx context.Context, date time.Time) (domain.HistoricalEvent, error) {
	month, day := int(date.Month()), date.Day()
	ev, err := g.store.GetEventForDay(ctx, month, day)
	if err == nil {
		return ev, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return domain.HistoricalEvent{}, fmt.Errorf("lookup event: %w", err)
	}

	// the shared generation outlives any single caller, a canceled caller stops waiting only
	key := fmt.Sprintf("%02d-%02d", month, day)
	ch := g.flight.DoChan(key, func() (any, error) {
		gctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.flightTimeout)
		defer cancel()
		return g.Generate(gctx, date)
	})
	select {
	case <-ctx.Done():
		return domain.HistoricalEvent{}, fmt.Errorf("wait for event %s: %w", key, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return domain.HistoricalEvent{}, res.Err
		}
		if res.Shared {
			log.Printf("[DEBUG] event for %s shared with a concurrent caller", key)
		}
		return res.Val.(domain.HistoricalEvent), nil
	}
}

// Generate asks the llm for an event on the calendar day of date and stores it.
// Provider exhaustion stores the static fallback event marked as not generated.
// If the day got an event in the meantime, the existing one is returned.
func (g *Generator) Generate(ctx context.Context, date time.Time) (domain.HistoricalEvent, error) {
	ev, usedFallback, err := g.build(ctx, date)
	if err != nil {
		metrics.GenerationRuns.WithLabelValues("historical", "invalid").Inc()
		return domain.HistoricalEvent{}, err
	}

	stored, created, err := g.store.CreateEventIfDayEmpty(ctx, ev)
	if err != nil {
		metrics.GenerationRuns.WithLabelValues("historical", "error").Inc()
		return domain.HistoricalEvent{}, fmt.Errorf("save event for %s: %w", ev.DateLabel(), err)
	}
	if !created {
		log.Printf("[INFO] event for %s already exists, keeping %q", ev.DateLabel(), stored.Title)
		return stored, nil
	}

	metrics.GenerationRuns.WithLabelValues("historical", outcomeLabel(usedFallback)).Inc()
	log.Printf("[INFO] stored event for %s: %q (%d), fallback=%v", stored.DateLabel(), stored.Title, stored.Year, usedFallback)
	return stored, nil
}

// Regenerate replaces the content of an existing event in place. Invalid llm output or provider
// exhaustion overwrite the record with fallback content, errors are returned only for a missing id
// or a failed update.
func (g *Generator) Regenerate(ctx context.Context, id int64) (RegenerateResult, error) {
	existing, err := g.store.GetEvent(ctx, id)
	if err != nil {
		return RegenerateResult{}, err
	}

	date := calendarDay(existing.Month, existing.Day)
	ev, usedFallback, err := g.build(ctx, date)
	if err != nil {
		log.Printf("[WARN] regenerate event %d: %v, using fallback content", id, err)
		ev, usedFallback = fallbackEvent(llm.DefaultFallback(llm.UseCaseHistorical), date), true
	}

	ev.ID, ev.CreatedAt = existing.ID, existing.CreatedAt
	if err := g.store.UpdateEvent(ctx, &ev); err != nil {
		metrics.GenerationRuns.WithLabelValues("historical", "error").Inc()
		return RegenerateResult{}, fmt.Errorf("regenerate event %d: %w", id, err)
	}
	metrics.GenerationRuns.WithLabelValues("historical", outcomeLabel(usedFallback)).Inc()
	log.Printf("[INFO] regenerated event %d for %s: %q, fallback=%v", id, ev.DateLabel(), ev.Title, usedFallback)
	return RegenerateResult{Event: ev, UsedFallback: usedFallback}, nil
}

// BulkGenerate makes sure every day from start to end inclusive has an event. A failed day is logged
// and skipped, the result holds the events of the days which succeeded.
func (g *Generator) BulkGenerate(ctx context.Context, start, end time.Time) []domain.HistoricalEvent {
	res := []domain.HistoricalEvent{}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if ctx.Err() != nil {
			log.Printf("[WARN] bulk generation interrupted at %s: %v", domain.DateKey(d), ctx.Err())
			break
		}
		ev, err := g.GetOrCreate(ctx, d)
		if err != nil {
			log.Printf("[WARN] failed to generate event for %s: %v", domain.DateKey(d), err)
			continue
		}
		res = append(res, ev)
	}
	log.Printf("[INFO] bulk generation %s..%s: %d events", domain.DateKey(start), domain.DateKey(end), len(res))
	return res
}

// Preview generates an event for the calendar day of date without storing it
func (g *Generator) Preview(ctx context.Context, date time.Time) (domain.HistoricalEvent, bool, error) {
	return g.build(ctx, date)
}

// ImportCurated stores trusted events, all marked as not generated. Existing records for the same
// month, day and year are overwritten. Either all events are stored or none.
func (g *Generator) ImportCurated(ctx context.Context, events []domain.HistoricalEvent) (int, error) {
	curated := make([]domain.HistoricalEvent, 0, len(events))
	for i, ev := range events {
		if err := validateCurated(ev); err != nil {
			return 0, fmt.Errorf("event #%d: %w", i, err)
		}
		ev.IsGenerated = false
		ev.Category = domain.CategoryAchievement
		if c, ok := domain.ParseCategory(string(events[i].Category)); ok {
			ev.Category = c
		}
		curated = append(curated, ev)
	}
	n, err := g.store.ImportEvents(ctx, curated)
	if err != nil {
		return 0, err
	}
	log.Printf("[INFO] imported %d curated events", n)
	return n, nil
}

// build calls the llm and turns its answer into an event for the calendar day of date.
// usedFallback is set when the manager answered with static fallback content.
func (g *Generator) build(ctx context.Context, date time.Time) (ev domain.HistoricalEvent, usedFallback bool, err error) {
	msgs := []llm.Message{llm.SystemMessage(systemPrompt), llm.UserMessage(g.prompt(date))}
	res := g.llm.ChatCompletionWithFallback(ctx, msgs, llm.UseCaseHistorical, g.opts)
	if res.UsedFallback() {
		log.Printf("[WARN] llm providers exhausted for %s, fallback event used", dateLabel(date))
		return fallbackEvent(res.Payload, date), true, nil
	}

	ev, err = parseEvent(res.Payload, date)
	if err != nil {
		return domain.HistoricalEvent{}, false, fmt.Errorf("event from %s for %s: %w", res.Provider, dateLabel(date), err)
	}
	ev.IsGenerated = true
	return ev, false, nil
}

func (g *Generator) prompt(date time.Time) string {
	return strings.ReplaceAll(g.template, "[current_date]", dateLabel(date))
}

// dateLabel renders the calendar day as "27 July"
func dateLabel(date time.Time) string {
	return fmt.Sprintf("%d %s", date.Day(), date.Month())
}

// calendarDay returns a date for month and day in a leap year, so 29 February is valid
func calendarDay(month, day int) time.Time {
	return time.Date(2000, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func outcomeLabel(usedFallback bool) string {
	if usedFallback {
		return "fallback"
	}
	return "generated"
}
