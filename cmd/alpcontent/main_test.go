package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/repository"
)

// writeConfig makes a config file with a database in a temp dir, returns config path and dsn
func writeConfig(t *testing.T) (cfgPath, dsn string) {
	t.Helper()
	dir := t.TempDir()
	dsn = "file:" + filepath.Join(dir, "test.db") + "?_pragma=busy_timeout(5000)&_txlock=immediate"
	cfg := fmt.Sprintf("server:\n  listen: \"127.0.0.1:0\"\ndatabase:\n  dsn: %q\n  max_open_conns: 1\n", dsn)
	cfgPath = filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	return cfgPath, dsn
}

func openRepos(t *testing.T, dsn string) *repository.Repositories {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: dsn, MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func TestRun_MissingConfig(t *testing.T) {
	err := run(context.Background(), Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	err := run(context.Background(), Opts{Config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_Import(t *testing.T) {
	cfgPath, dsn := writeConfig(t)
	events := `[
		{"month": 5, "day": 29, "year": 1953, "title": "First ascent of Everest", "description": "Hillary and Norgay reach the summit",
		 "location": "Everest", "people": ["Edmund Hillary", "Tenzing Norgay"], "category": "first_ascent"},
		{"month": 8, "day": 26, "year": 1778, "title": "First ascent of Triglav", "description": "Four men from Bohinj reach the top",
		 "location": "Triglav", "people": ["Luka Korošec"]}
	]`
	importPath := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(importPath, []byte(events), 0o600))

	err := run(context.Background(), Opts{Config: cfgPath, Run: "import", Import: importPath})
	require.NoError(t, err)

	repos := openRepos(t, dsn)
	total, curated, err := repos.History.CountEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, curated)

	ev, err := repos.History.GetEventForDay(context.Background(), 8, 26)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryAchievement, ev.Category)
	assert.False(t, ev.IsGenerated)
}

func TestRun_ImportErrors(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	err := run(context.Background(), Opts{Config: cfgPath, Run: "import"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--import-file is required")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"month": 13, "day": 1, "year": 1900, "title": "x"}]`), 0o600))
	err = run(context.Background(), Opts{Config: cfgPath, Run: "import", Import: bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad date")
}

func TestRun_Crawl(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/category/na-danasnji-dan/":
			_, _ = w.Write([]byte(`<html><body><h2 class="entry-title"><a href="/triglav/">Triglav</a></h2></body></html>`))
		case "/triglav/":
			_, _ = w.Write([]byte(`<html><body><h1 class="entry-title">26. avgust – Prvi vzpon na Triglav</h1>
<div class="entry-meta">avg 26, 2022</div>
<div class="entry-content"><p>Leta 1778 so Luka Korošec in tovariši prvi stopili na Triglav.</p></div></body></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	cfgPath, dsn := writeConfig(t)
	f, err := os.OpenFile(cfgPath, os.O_APPEND|os.O_WRONLY, 0o600) //nolint:gosec // test file
	require.NoError(t, err)
	_, err = fmt.Fprintf(f, "history:\n  archive:\n    url: %q\n    delay: 1ms\n", ts.URL+"/category/na-danasnji-dan/")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, run(context.Background(), Opts{Config: cfgPath, Run: "crawl"}))

	repos := openRepos(t, dsn)
	ev, err := repos.History.GetEventForDay(context.Background(), 8, 26)
	require.NoError(t, err)
	assert.Equal(t, "Prvi vzpon na Triglav", ev.Title)
	assert.Equal(t, 1778, ev.Year)
	assert.Equal(t, ts.URL+"/triglav/", ev.URL)
	assert.False(t, ev.IsGenerated)
}

func TestRun_BulkInvalidDates(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	tests := []struct {
		name, from, to, want string
	}{
		{name: "bad from", from: "2025-13-01", to: "2025-07-01", want: "invalid --from"},
		{name: "bad to", from: "2025-07-01", to: "tomorrow", want: "invalid --to"},
		{name: "reversed", from: "2025-07-03", to: "2025-07-01", want: "is before"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), Opts{Config: cfgPath, Run: "bulk", From: tt.from, To: tt.to})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_Cleanup(t *testing.T) {
	cfgPath, dsn := writeConfig(t)
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: dsn, MaxOpenConns: 1})
	require.NoError(t, err)
	old := domain.DateKey(time.Now().AddDate(0, 0, -60))
	require.NoError(t, repos.News.SaveNewsDay(ctx, domain.NewsDay{Date: old, Articles: []domain.Article{{Title: "old"}}}))
	require.NoError(t, repos.News.SaveNewsDay(ctx, domain.NewsDay{Date: domain.DateKey(time.Now()), Articles: []domain.Article{{Title: "new"}}}))
	require.NoError(t, repos.Close())

	require.NoError(t, run(ctx, Opts{Config: cfgPath, Run: "cleanup"}))

	repos = openRepos(t, dsn)
	n, err := repos.News.CountNewsDays(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRun_ServerStartStop(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, Opts{Config: cfgPath, Run: "serve", Listen: fmt.Sprintf("127.0.0.1:%d", port)})
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(Opts{})
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Listen)

	cfg, err = loadConfig(Opts{Listen: "127.0.0.1:9000"})
	require.NoError(t, err)
	listen, _ := cfg.GetServerConfig()
	assert.Equal(t, "127.0.0.1:9000", listen)
}

func TestSecrets(t *testing.T) {
	cfg, err := loadConfig(Opts{})
	require.NoError(t, err)
	cfg.LLM.Providers[0].APIKey = "sk-one"
	cfg.LLM.Providers[1].APIKey = ""
	cfg.News.NewsAPI.APIKey = "news-key"
	assert.Equal(t, []string{"sk-one", "news-key"}, secrets(cfg))
}
