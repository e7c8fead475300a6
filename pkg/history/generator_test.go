package history

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/history/mocks"
	"github.com/pdtriglav/alpcontent/pkg/llm"
	"github.com/pdtriglav/alpcontent/pkg/repository"
)

func setupRepo(t *testing.T) *repository.Repositories {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func completer(fn func(msgs []llm.Message) llm.Result) *mocks.CompleterMock {
	return &mocks.CompleterMock{
		ChatCompletionWithFallbackFunc: func(_ context.Context, msgs []llm.Message, _ llm.UseCase, _ llm.Options) llm.Result {
			return fn(msgs)
		},
	}
}

func generated(p llm.Payload) func([]llm.Message) llm.Result {
	return func([]llm.Message) llm.Result {
		return llm.Result{Payload: p, Provider: "moonshot", Outcome: llm.OutcomeGenerated}
	}
}

func exhausted([]llm.Message) llm.Result {
	return llm.Result{Payload: llm.DefaultFallback(llm.UseCaseHistorical), Provider: "moonshot", Outcome: llm.OutcomeFallback}
}

func TestGenerator_Generate(t *testing.T) {
	repos := setupRepo(t)
	c := completer(generated(validPayload()))
	g := NewGenerator(Params{LLM: c, Store: repos.History, Temperature: 0.3, MaxTokens: 2000})

	ev, err := g.Generate(context.Background(), testDate)
	require.NoError(t, err)
	assert.NotZero(t, ev.ID)
	assert.True(t, ev.IsGenerated)
	assert.Equal(t, 1954, ev.Year)
	assert.Equal(t, 7, ev.Month)
	assert.Equal(t, 27, ev.Day)

	require.Len(t, c.ChatCompletionWithFallbackCalls(), 1)
	call := c.ChatCompletionWithFallbackCalls()[0]
	assert.Equal(t, llm.UseCaseHistorical, call.UseCase)
	assert.Equal(t, llm.Options{Temperature: 0.3, MaxTokens: 2000, JSON: true}, call.Opts)
	require.Len(t, call.Msgs, 2)
	assert.Equal(t, "system", call.Msgs[0].Role)
	assert.Contains(t, call.Msgs[1].Content, "27 July")
	assert.NotContains(t, call.Msgs[1].Content, "[current_date]")
}

func TestGenerator_GenerateFallback(t *testing.T) {
	repos := setupRepo(t)
	g := NewGenerator(Params{LLM: completer(exhausted), Store: repos.History})

	ev, err := g.Generate(context.Background(), testDate)
	require.NoError(t, err)
	assert.False(t, ev.IsGenerated)
	assert.Equal(t, 1953, ev.Year)
	assert.Equal(t, 7, ev.Month, "fallback stored under the requested day")
	assert.Equal(t, 27, ev.Day)
	assert.Equal(t, llm.FallbackMethodology, ev.Methodology)
}

func TestGenerator_GenerateInvalid(t *testing.T) {
	p := validPayload()
	delete(p, "description")
	store := &mocks.StoreMock{}
	g := NewGenerator(Params{LLM: completer(generated(p)), Store: store})

	_, err := g.Generate(context.Background(), testDate)
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.CreateEventIfDayEmptyCalls(), "nothing stored")
}

func TestGenerator_GenerateStoreError(t *testing.T) {
	store := &mocks.StoreMock{
		CreateEventIfDayEmptyFunc: func(context.Context, domain.HistoricalEvent) (domain.HistoricalEvent, bool, error) {
			return domain.HistoricalEvent{}, false, errors.New("disk full")
		},
	}
	g := NewGenerator(Params{LLM: completer(generated(validPayload())), Store: store})
	_, err := g.Generate(context.Background(), testDate)
	require.EqualError(t, err, "save event for 27 July: disk full")
}

func TestGenerator_GetOrCreate(t *testing.T) {
	repos := setupRepo(t)
	ctx := context.Background()

	t.Run("existing curated event, no llm call", func(t *testing.T) {
		curated := domain.HistoricalEvent{Month: 7, Day: 27, Year: 1910, Title: "curated", Category: domain.CategoryDiscovery}
		require.NoError(t, repos.History.CreateEvent(ctx, &curated))

		c := completer(generated(validPayload()))
		g := NewGenerator(Params{LLM: c, Store: repos.History})
		ev, err := g.GetOrCreate(ctx, testDate)
		require.NoError(t, err)
		assert.Equal(t, curated.ID, ev.ID)
		assert.Empty(t, c.ChatCompletionWithFallbackCalls())
	})

	t.Run("missing day generated", func(t *testing.T) {
		c := completer(generated(validPayload()))
		g := NewGenerator(Params{LLM: c, Store: repos.History})
		ev, err := g.GetOrCreate(ctx, testDate.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, 28, ev.Day)
		assert.True(t, ev.IsGenerated)
		assert.Len(t, c.ChatCompletionWithFallbackCalls(), 1)
	})

	t.Run("lookup failure", func(t *testing.T) {
		store := &mocks.StoreMock{GetEventForDayFunc: func(context.Context, int, int) (domain.HistoricalEvent, error) {
			return domain.HistoricalEvent{}, errors.New("db down")
		}}
		g := NewGenerator(Params{LLM: completer(generated(validPayload())), Store: store})
		_, err := g.GetOrCreate(ctx, testDate)
		require.EqualError(t, err, "lookup event: db down")
	})
}

func TestGenerator_GetOrCreateConcurrent(t *testing.T) {
	repos := setupRepo(t)
	c := completer(func([]llm.Message) llm.Result {
		time.Sleep(20 * time.Millisecond)
		return llm.Result{Payload: validPayload(), Provider: "moonshot", Outcome: llm.OutcomeGenerated}
	})
	g := NewGenerator(Params{LLM: c, Store: repos.History})

	const callers = 10
	var wg sync.WaitGroup
	ids := make([]int64, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ev, err := g.GetOrCreate(context.Background(), testDate)
			assert.NoError(t, err)
			ids[i] = ev.ID
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	all, err := repos.History.ListEvents(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, all, 1, "exactly one row for the day")
	assert.Less(t, len(c.ChatCompletionWithFallbackCalls()), callers, "concurrent callers share generation")
}

func TestGenerator_GetOrCreateCallerCanceled(t *testing.T) {
	repos := setupRepo(t)
	started, release := make(chan struct{}), make(chan struct{})
	genErr := make(chan error, 1)
	c := &mocks.CompleterMock{ChatCompletionWithFallbackFunc: func(ctx context.Context, _ []llm.Message, _ llm.UseCase,
		_ llm.Options) llm.Result {
		close(started)
		<-release
		genErr <- ctx.Err()
		return llm.Result{Payload: validPayload(), Provider: "moonshot", Outcome: llm.OutcomeGenerated}
	}}
	g := NewGenerator(Params{LLM: c, Store: repos.History})

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := g.GetOrCreate(ctx, testDate)
		firstErr <- err
	}()
	<-started

	second := make(chan domain.HistoricalEvent, 1)
	go func() {
		ev, err := g.GetOrCreate(context.Background(), testDate)
		assert.NoError(t, err)
		second <- ev
	}()

	cancel()
	select {
	case err := <-firstErr:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("canceled caller kept waiting")
	}

	close(release)
	require.NoError(t, <-genErr, "generation is not canceled with its first caller")
	select {
	case ev := <-second:
		assert.NotZero(t, ev.ID)
		assert.Equal(t, "First ascent of K2", ev.Title)
	case <-time.After(5 * time.Second):
		t.Fatal("joined caller did not get the event")
	}
	assert.Len(t, c.ChatCompletionWithFallbackCalls(), 1)
}

func TestGenerator_CuratedImportReplacesStoredFallback(t *testing.T) {
	repos := setupRepo(t)
	ctx := context.Background()
	day := time.Date(2025, 10, 17, 6, 0, 0, 0, time.UTC)

	g := NewGenerator(Params{LLM: completer(exhausted), Store: repos.History})
	ev, err := g.GetOrCreate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, "First Ascent of Mount Everest", ev.Title)

	_, err = g.ImportCurated(ctx, []domain.HistoricalEvent{{Month: 10, Day: 17, Year: 1978, Title: "Curated ascent",
		Description: "d", Location: "l", People: []string{"a"}}})
	require.NoError(t, err)

	ev, err = g.GetOrCreate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, "Curated ascent", ev.Title)
}

func TestGenerator_Regenerate(t *testing.T) {
	repos := setupRepo(t)
	ctx := context.Background()

	original := domain.HistoricalEvent{Month: 7, Day: 27, Year: 1990, Title: "old", People: []string{"a"},
		Category: domain.CategoryExpedition, IsGenerated: true}
	require.NoError(t, repos.History.CreateEvent(ctx, &original))

	t.Run("generated content replaces record", func(t *testing.T) {
		g := NewGenerator(Params{LLM: completer(generated(validPayload())), Store: repos.History})
		res, err := g.Regenerate(ctx, original.ID)
		require.NoError(t, err)
		assert.False(t, res.UsedFallback)
		assert.Equal(t, original.ID, res.Event.ID)

		stored, err := repos.History.GetEvent(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, "First ascent of K2", stored.Title)
		assert.Equal(t, 1954, stored.Year)
		assert.True(t, stored.IsGenerated)
		assert.True(t, !stored.UpdatedAt.Before(original.UpdatedAt))
	})

	t.Run("provider exhaustion stores fallback", func(t *testing.T) {
		g := NewGenerator(Params{LLM: completer(exhausted), Store: repos.History})
		res, err := g.Regenerate(ctx, original.ID)
		require.NoError(t, err)
		assert.True(t, res.UsedFallback)

		stored, err := repos.History.GetEvent(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, "First Ascent of Mount Everest", stored.Title)
		assert.False(t, stored.IsGenerated)
		assert.Equal(t, llm.FallbackMethodology, stored.Methodology)
	})

	t.Run("invalid output stores fallback", func(t *testing.T) {
		p := validPayload()
		delete(p, "people")
		p["year"] = float64(1970)
		g := NewGenerator(Params{LLM: completer(generated(p)), Store: repos.History})
		res, err := g.Regenerate(ctx, original.ID)
		require.NoError(t, err)
		assert.True(t, res.UsedFallback)
		assert.Equal(t, 1953, res.Event.Year)
	})

	t.Run("missing id", func(t *testing.T) {
		g := NewGenerator(Params{LLM: completer(generated(validPayload())), Store: repos.History})
		_, err := g.Regenerate(ctx, 9999)
		require.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("update failure", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetEventFunc: func(context.Context, int64) (domain.HistoricalEvent, error) { return original, nil },
			UpdateEventFunc: func(context.Context, *domain.HistoricalEvent) error {
				return errors.New("locked")
			},
		}
		g := NewGenerator(Params{LLM: completer(exhausted), Store: store})
		_, err := g.Regenerate(ctx, original.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "locked")
	})
}

func TestGenerator_BulkGenerate(t *testing.T) {
	repos := setupRepo(t)
	calls := 0
	c := completer(func(msgs []llm.Message) llm.Result {
		calls++
		p := validPayload()
		if strings.Contains(msgs[1].Content, "28 July") {
			delete(p, "title") // this day fails validation
		}
		return llm.Result{Payload: p, Provider: "deepseek", Outcome: llm.OutcomeGenerated}
	})
	g := NewGenerator(Params{LLM: c, Store: repos.History})

	start := time.Date(2025, 7, 27, 0, 0, 0, 0, time.UTC)
	res := g.BulkGenerate(context.Background(), start, start.AddDate(0, 0, 2))
	require.Len(t, res, 2)
	assert.Equal(t, 27, res[0].Day)
	assert.Equal(t, 29, res[1].Day)
	assert.Equal(t, 3, calls)

	again := g.BulkGenerate(context.Background(), start, start)
	require.Len(t, again, 1)
	assert.Equal(t, res[0].ID, again[0].ID, "existing day reused")
	assert.Equal(t, 3, calls)

	assert.Empty(t, g.BulkGenerate(context.Background(), start.AddDate(0, 0, 1), start), "end before start")
}

func TestGenerator_Preview(t *testing.T) {
	store := &mocks.StoreMock{}
	g := NewGenerator(Params{LLM: completer(generated(validPayload())), Store: store})
	ev, usedFallback, err := g.Preview(context.Background(), testDate)
	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, "First ascent of K2", ev.Title)
	assert.Zero(t, ev.ID, "not stored")
}

func TestGenerator_ImportCurated(t *testing.T) {
	repos := setupRepo(t)
	g := NewGenerator(Params{LLM: completer(exhausted), Store: repos.History})

	n, err := g.ImportCurated(context.Background(), []domain.HistoricalEvent{
		{Month: 8, Day: 8, Year: 1786, Title: "Mont Blanc", Category: "First_Ascent", IsGenerated: true},
		{Month: 7, Day: 14, Year: 1865, Title: "Matterhorn"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ev, err := repos.History.GetEventForDay(context.Background(), 8, 8)
	require.NoError(t, err)
	assert.False(t, ev.IsGenerated)
	assert.Equal(t, domain.CategoryFirstAscent, ev.Category)

	ev, err = repos.History.GetEventForDay(context.Background(), 7, 14)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryAchievement, ev.Category)

	_, err = g.ImportCurated(context.Background(), []domain.HistoricalEvent{{Month: 1, Day: 1, Year: 1900}})
	require.ErrorIs(t, err, ErrValidation)
}

func TestLoadTemplate(t *testing.T) {
	tmpl, err := LoadTemplate("")
	require.NoError(t, err)
	assert.Contains(t, tmpl, "[current_date]")

	dir := t.TempDir()
	good := filepath.Join(dir, "good.md")
	require.NoError(t, os.WriteFile(good, []byte("event on [current_date]"), 0o600))
	tmpl, err = LoadTemplate(good)
	require.NoError(t, err)
	assert.Equal(t, "event on [current_date]", tmpl)

	bad := filepath.Join(dir, "bad.md")
	require.NoError(t, os.WriteFile(bad, []byte("no placeholder"), 0o600))
	_, err = LoadTemplate(bad)
	require.Error(t, err)

	_, err = LoadTemplate(filepath.Join(dir, "missing.md"))
	require.Error(t, err)

	g := NewGenerator(Params{Template: "custom [current_date] and [current_date]"})
	assert.Equal(t, "custom 1 March and 1 March", g.prompt(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}
