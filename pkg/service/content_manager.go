// Package service orchestrates the historical event and news pipelines behind an in-flight guard
// and runs them as observable background tasks.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/history"
	"github.com/pdtriglav/alpcontent/pkg/metrics"
	"github.com/pdtriglav/alpcontent/pkg/repository"
)

//go:generate moq -out mocks/deps.go -pkg mocks -skip-ensure -fmt goimports . EventGenerator NewsFetcher ProviderTester Store

// ErrAlreadyRunning returned when a run of the same kind is in flight
var ErrAlreadyRunning = errors.New("already running")

// ErrUnknownKind returned when a task is triggered for a kind which doesn't exist
var ErrUnknownKind = errors.New("unknown task kind")

// EventGenerator produces and stores historical events
type EventGenerator interface {
	GetOrCreate(ctx context.Context, date time.Time) (domain.HistoricalEvent, error)
	Regenerate(ctx context.Context, id int64) (history.RegenerateResult, error)
	Preview(ctx context.Context, date time.Time) (domain.HistoricalEvent, bool, error)
}

// NewsFetcher runs the news aggregation, it always returns, possibly empty
type NewsFetcher interface {
	FetchAll(ctx context.Context) []domain.Article
}

// ProviderTester checks connectivity of llm providers
type ProviderTester interface {
	TestAllProviders(ctx context.Context) map[string]bool
}

// Store is the persistence used by the content manager
type Store interface {
	GetNewsDay(ctx context.Context, date string) (domain.NewsDay, error)
	SaveNewsDay(ctx context.Context, day domain.NewsDay) error
	DeleteNewsBefore(ctx context.Context, before time.Time) (int64, error)
	CountNewsDays(ctx context.Context) (int, error)
	CountEvents(ctx context.Context) (total, curated int, err error)
	CountGeneratedSince(ctx context.Context, since time.Time) (int, error)
	GetJSON(ctx context.Context, key string, v any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
	Ping(ctx context.Context) error
}

// ContentManager is the entry point for content consumers and triggers
type ContentManager struct {
	events        EventGenerator
	news          NewsFetcher
	providers     ProviderTester
	store         Store
	guard         *Guard
	runner        *TaskRunner
	retentionDays int
	now           func() time.Time
}

// Params holds content manager dependencies
type Params struct {
	Events        EventGenerator
	News          NewsFetcher
	Providers     ProviderTester
	Store         Store
	RetentionDays int // cached news days kept by CleanupNews, 30 if not set
}

// NewContentManager makes a content manager with its own guard and task runner
func NewContentManager(p Params) *ContentManager {
	if p.RetentionDays <= 0 {
		p.RetentionDays = 30
	}
	guard := NewGuard()
	return &ContentManager{
		events:        p.Events,
		news:          p.News,
		providers:     p.Providers,
		store:         p.Store,
		guard:         guard,
		runner:        NewTaskRunner(guard),
		retentionDays: p.RetentionDays,
		now:           time.Now,
	}
}

// GetOrCreateTodaysEvent returns today's event, generating it if needed
func (m *ContentManager) GetOrCreateTodaysEvent(ctx context.Context) (domain.HistoricalEvent, error) {
	return m.events.GetOrCreate(ctx, m.now())
}

// RegenerateEvent replaces an event content, fails only for a missing id or a storage error
func (m *ContentManager) RegenerateEvent(ctx context.Context, id int64) (history.RegenerateResult, error) {
	return m.events.Regenerate(ctx, id)
}

// FetchAndCacheNews runs the aggregation and caches a non-empty result for today. If a news run
// is already in flight it returns the cached articles instead of starting another one.
func (m *ContentManager) FetchAndCacheNews(ctx context.Context) []domain.Article {
	release, ok := m.guard.TryAcquire(KindNews)
	if !ok {
		log.Printf("[INFO] news refresh already in flight, serving cache")
		return m.cachedNews(ctx)
	}
	defer release()
	return m.fetchAndCacheNews(ctx)
}

// GetCachedNewsForToday returns today's cached articles without network access, on a cache miss
// it fetches and caches them
func (m *ContentManager) GetCachedNewsForToday(ctx context.Context) []domain.Article {
	day, err := m.store.GetNewsDay(ctx, domain.DateKey(m.now()))
	if err == nil {
		return day.Articles
	}
	if !errors.Is(err, repository.ErrNotFound) {
		log.Printf("[WARN] can't read news cache: %v", err)
		return []domain.Article{}
	}
	log.Printf("[INFO] no cached news for today, fetching")
	return m.FetchAndCacheNews(ctx)
}

// RunDailyGeneration makes sure today's event exists. Errors are counted, not returned.
// A call while another daily run is in flight is skipped.
func (m *ContentManager) RunDailyGeneration(ctx context.Context) domain.GenerationStats {
	release, ok := m.guard.TryAcquire(KindHistorical)
	if !ok {
		log.Printf("[INFO] daily generation already in flight, skipped")
		return domain.GenerationStats{Skipped: true, StartedAt: m.now()}
	}
	defer release()
	return m.runDaily(ctx)
}

// TestServices checks providers, database and a live generation
func (m *ContentManager) TestServices(ctx context.Context) map[string]bool {
	res := map[string]bool{"llmService": false, "database": false, "historicalGeneration": false}

	for name, ok := range m.providers.TestAllProviders(ctx) {
		res["provider:"+name] = ok
		res["llmService"] = res["llmService"] || ok
	}

	if err := m.store.Ping(ctx); err != nil {
		log.Printf("[WARN] database check failed: %v", err)
	} else {
		res["database"] = true
	}

	ev, usedFallback, err := m.events.Preview(ctx, m.now())
	switch {
	case err != nil:
		log.Printf("[WARN] historical generation check failed: %v", err)
	default:
		res["historicalGeneration"] = strings.TrimSpace(ev.Title) != ""
		if usedFallback {
			log.Printf("[WARN] historical generation check answered with fallback content")
		}
	}
	return res
}

// DashboardStats returns content counters and in-flight runs
func (m *ContentManager) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	total, curated, err := m.store.CountEvents(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	now := m.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	generated, err := m.store.CountGeneratedSince(ctx, monthStart)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	newsDays, err := m.store.CountNewsDays(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return domain.DashboardStats{
		TotalEvents:        total,
		CuratedEvents:      curated,
		GeneratedThisMonth: generated,
		CachedNewsDays:     newsDays,
		InFlight:           m.guard.Snapshot(),
	}, nil
}

// CleanupNews deletes cached news days older than the retention window
func (m *ContentManager) CleanupNews(ctx context.Context) (int64, error) {
	release, ok := m.guard.TryAcquire(KindCleanup)
	if !ok {
		return 0, fmt.Errorf("cleanup: %w", ErrAlreadyRunning)
	}
	defer release()
	return m.cleanupNews(ctx)
}

// LastDailyRun returns stats of the last completed daily run, false if none recorded
func (m *ContentManager) LastDailyRun(ctx context.Context) (domain.GenerationStats, bool) {
	var stats domain.GenerationStats
	ok, err := m.store.GetJSON(ctx, repository.SettingLastDailyRun, &stats)
	if err != nil {
		log.Printf("[WARN] can't read last daily run: %v", err)
		return domain.GenerationStats{}, false
	}
	return stats, ok
}

// Trigger starts a background task for kind. If a run of this kind is in flight nothing new
// is started, the running task (if known) is returned with started=false.
func (m *ContentManager) Trigger(kind string) (task *Task, started bool, err error) {
	var fn TaskFunc
	switch kind {
	case KindHistorical:
		fn = func(ctx context.Context) (any, error) {
			stats := m.runDaily(ctx)
			if stats.Errors > 0 {
				return stats, errors.New("daily generation finished with errors")
			}
			return stats, nil
		}
	case KindNews:
		fn = func(ctx context.Context) (any, error) {
			articles := m.fetchAndCacheNews(ctx)
			return map[string]int{"articles": len(articles)}, nil
		}
	case KindCleanup:
		fn = func(ctx context.Context) (any, error) {
			deleted, err := m.cleanupNews(ctx)
			return map[string]int64{"deleted": deleted}, err
		}
	default:
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	task, started = m.runner.Submit(kind, fn)
	return task, started, nil
}

// Task returns a snapshot of a background task
func (m *ContentManager) Task(id string) (*Task, error) {
	return m.runner.Get(id)
}

// CancelTask cancels a running background task
func (m *ContentManager) CancelTask(id string) error {
	return m.runner.Cancel(id)
}

// InFlight reports which kinds are running now
func (m *ContentManager) InFlight() map[string]bool {
	return m.guard.Snapshot()
}

// Shutdown cancels background tasks and waits for them
func (m *ContentManager) Shutdown() {
	m.runner.Stop()
}

func (m *ContentManager) runDaily(ctx context.Context) domain.GenerationStats {
	start := m.now()
	stats := domain.GenerationStats{StartedAt: start}

	ev, err := m.events.GetOrCreate(ctx, start)
	if err != nil {
		log.Printf("[ERROR] daily historical event failed: %v", err)
		stats.Errors++
	} else {
		stats.HistoricalEvents = 1
		log.Printf("[INFO] daily historical event: %q (%s)", ev.Title, ev.FullDate())
	}
	stats.Duration = m.now().Sub(start).Round(time.Millisecond).String()

	result := "ok"
	if stats.Errors > 0 {
		result = "error"
	}
	metrics.GenerationRuns.WithLabelValues("daily", result).Inc()

	if err := m.store.SetJSON(ctx, repository.SettingLastDailyRun, stats); err != nil {
		log.Printf("[WARN] can't record daily run: %v", err)
	}
	log.Printf("[INFO] daily generation complete: events=%d errors=%d in %s", stats.HistoricalEvents, stats.Errors, stats.Duration)
	return stats
}

func (m *ContentManager) fetchAndCacheNews(ctx context.Context) []domain.Article {
	articles := m.news.FetchAll(ctx)
	if articles == nil {
		articles = []domain.Article{}
	}

	result := "empty"
	if len(articles) > 0 {
		result = "ok"
		day := domain.NewsDay{Date: domain.DateKey(m.now()), Articles: articles, CachedAt: m.now()}
		if err := m.store.SaveNewsDay(ctx, day); err != nil {
			log.Printf("[WARN] can't cache news for %s: %v", day.Date, err)
			result = "error"
		}
	} else {
		log.Printf("[INFO] news aggregation returned nothing, cache left as is")
	}
	metrics.GenerationRuns.WithLabelValues("news", result).Inc()

	run := map[string]any{"at": m.now(), "articles": len(articles)}
	if err := m.store.SetJSON(ctx, repository.SettingLastNewsRun, run); err != nil {
		log.Printf("[WARN] can't record news run: %v", err)
	}
	return articles
}

func (m *ContentManager) cachedNews(ctx context.Context) []domain.Article {
	day, err := m.store.GetNewsDay(ctx, domain.DateKey(m.now()))
	if err != nil {
		return []domain.Article{}
	}
	return day.Articles
}

func (m *ContentManager) cleanupNews(ctx context.Context) (int64, error) {
	before := m.now().AddDate(0, 0, -m.retentionDays)
	deleted, err := m.store.DeleteNewsBefore(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("cleanup news: %w", err)
	}
	log.Printf("[INFO] removed %d cached news days before %s", deleted, domain.DateKey(before))
	return deleted, nil
}
