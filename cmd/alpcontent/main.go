package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/pdtriglav/alpcontent/pkg/config"
	"github.com/pdtriglav/alpcontent/pkg/content"
	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/feed"
	"github.com/pdtriglav/alpcontent/pkg/history"
	"github.com/pdtriglav/alpcontent/pkg/llm"
	"github.com/pdtriglav/alpcontent/pkg/news"
	"github.com/pdtriglav/alpcontent/pkg/repository"
	"github.com/pdtriglav/alpcontent/pkg/service"
	"github.com/pdtriglav/alpcontent/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"path to config file, defaults are used if empty"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Run    string `long:"run" env:"RUN" default:"serve" choice:"serve" choice:"daily" choice:"news" choice:"selftest" choice:"import" choice:"crawl" choice:"bulk" choice:"cleanup" description:"what to run"`

	Import string `long:"import-file" description:"curated events JSON file, for --run=import"`
	From   string `long:"from" description:"first day, YYYY-MM-DD, for --run=bulk"`
	To     string `long:"to" description:"last day inclusive, YYYY-MM-DD, for --run=bulk"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// app holds the wired components
type app struct {
	repos     *repository.Repositories
	generator *history.Generator
	manager   *service.ContentManager
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLog(opts.Debug, !opts.NoColor, secrets(cfg)...)
	log.Printf("[INFO] starting alpcontent version %s, run %s", revision, opts.Run)

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	switch opts.Run {
	case "daily":
		stats := a.manager.RunDailyGeneration(ctx)
		log.Printf("[INFO] daily generation: events %d, errors %d, skipped %v, took %s",
			stats.HistoricalEvents, stats.Errors, stats.Skipped, stats.Duration)
		if stats.Errors > 0 {
			return fmt.Errorf("daily generation finished with %d errors", stats.Errors)
		}
		return nil
	case "news":
		articles := a.manager.FetchAndCacheNews(ctx)
		log.Printf("[INFO] %d news articles cached", len(articles))
		return nil
	case "selftest":
		return selfTest(ctx, a.manager)
	case "import":
		return importEvents(ctx, a.generator, opts.Import)
	case "crawl":
		return crawlArchive(ctx, a.generator, feed.NewArchiveCrawler(cfg.History.Archive))
	case "bulk":
		return bulkGenerate(ctx, a.generator, opts.From, opts.To)
	case "cleanup":
		n, err := a.manager.CleanupNews(ctx)
		if err != nil {
			return fmt.Errorf("cleanup news cache: %w", err)
		}
		log.Printf("[INFO] removed %d cached news days", n)
		return nil
	default:
		srv := server.New(cfg, a.manager, revision, opts.Debug)
		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		log.Print("[INFO] shutdown complete")
		return nil
	}
}

func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	return cfg, nil
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	tmpl, err := history.LoadTemplate(cfg.History.PromptFile)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	llmManager := llm.NewManagerFromConfig(cfg.LLM)
	generator := history.NewGenerator(history.Params{
		LLM:         llmManager,
		Store:       repos.History,
		Template:    tmpl,
		Temperature: cfg.History.Temperature,
		MaxTokens:   cfg.History.MaxTokens,
	})
	extractor := content.NewExtractor(cfg.News.Enrich.Timeout, cfg.News.UserAgent)
	aggregator := news.NewAggregatorFromConfig(cfg.News, extractor, llmManager)

	manager := service.NewContentManager(service.Params{
		Events:        generator,
		News:          aggregator,
		Providers:     llmManager,
		Store:         service.NewRepoStore(repos),
		RetentionDays: cfg.News.CacheRetentionDays,
	})
	return &app{repos: repos, generator: generator, manager: manager}, nil
}

func (a *app) close() {
	a.manager.Shutdown()
	if err := a.repos.Close(); err != nil {
		log.Printf("[WARN] failed to close database: %v", err)
	}
}

func selfTest(ctx context.Context, m *service.ContentManager) error {
	res := m.TestServices(ctx)
	failed := 0
	for name, ok := range res {
		log.Printf("[INFO] selftest %s: %v", name, ok)
		if !ok {
			failed++
		}
	}
	if !res["database"] {
		return fmt.Errorf("selftest failed, database is not available")
	}
	if failed > 0 {
		log.Printf("[WARN] selftest: %d checks failed", failed)
	}
	return nil
}

func importEvents(ctx context.Context, g *history.Generator, path string) error {
	if path == "" {
		return fmt.Errorf("--import-file is required for import")
	}
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	var events []domain.HistoricalEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return fmt.Errorf("parse import file %s: %w", path, err)
	}
	n, err := g.ImportCurated(ctx, events)
	if err != nil {
		return fmt.Errorf("import curated events: %w", err)
	}
	log.Printf("[INFO] imported %d curated events from %s", n, path)
	return nil
}

// crawlArchive imports the events of the club "on this day" archive as curated events
func crawlArchive(ctx context.Context, g *history.Generator, crawler *feed.ArchiveCrawler) error {
	events, err := crawler.Crawl(ctx)
	if err != nil {
		return fmt.Errorf("crawl archive: %w", err)
	}
	if len(events) == 0 {
		log.Print("[WARN] archive crawl found no events")
		return nil
	}
	n, err := g.ImportCurated(ctx, events)
	if err != nil {
		return fmt.Errorf("import archive events: %w", err)
	}
	log.Printf("[INFO] imported %d archive events", n)
	return nil
}

func bulkGenerate(ctx context.Context, g *history.Generator, from, to string) error {
	start, err := time.Parse(time.DateOnly, from)
	if err != nil {
		return fmt.Errorf("invalid --from %q: %w", from, err)
	}
	end, err := time.Parse(time.DateOnly, to)
	if err != nil {
		return fmt.Errorf("invalid --to %q: %w", to, err)
	}
	if end.Before(start) {
		return fmt.Errorf("--to %s is before --from %s", to, from)
	}
	events := g.BulkGenerate(ctx, start, end)
	days := int(end.Sub(start).Hours()/24) + 1
	log.Printf("[INFO] bulk generation: %d of %d days have events", len(events), days)
	return nil
}

// secrets collects api keys hidden from logs
func secrets(cfg *config.Config) []string {
	var res []string
	for _, p := range cfg.LLM.Providers {
		if p.APIKey != "" {
			res = append(res, p.APIKey)
		}
	}
	if cfg.News.NewsAPI.APIKey != "" {
		res = append(res, cfg.News.NewsAPI.APIKey)
	}
	return res
}

func setupLog(dbg, colored bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if colored {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
