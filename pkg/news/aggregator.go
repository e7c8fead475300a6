// Package news combines fetched articles, scores them, removes near duplicates and selects
// a small daily set with a cap on locale articles.
package news

import (
	"context"
	"time"
	"unicode/utf8"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/pdtriglav/alpcontent/pkg/config"
	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/feed"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher Extractor Completer

// Fetcher returns normalized articles from one kind of source, it never fails as a whole
type Fetcher interface {
	FetchAll(ctx context.Context) []domain.Article
}

// Extractor returns main text of an article page
type Extractor interface {
	Extract(ctx context.Context, pageURL string) (string, error)
}

// Aggregator runs the news pipeline over RSS, scraping and the news api backfill
type Aggregator struct {
	rss       Fetcher
	scraper   Fetcher
	api       Fetcher
	extractor Extractor
	editor    Completer
	scorer    *Scorer
	cleaner   *feed.Cleaner
	cfg       config.NewsConfig
}

// Params holds aggregator dependencies, Extractor, Editor and API fetcher are optional
type Params struct {
	RSS       Fetcher
	Scraper   Fetcher
	API       Fetcher
	Extractor Extractor
	Editor    Completer
	Config    config.NewsConfig
}

// NewAggregator creates an aggregator
func NewAggregator(p Params) *Aggregator {
	return &Aggregator{
		rss:       p.RSS,
		scraper:   p.Scraper,
		api:       p.API,
		extractor: p.Extractor,
		editor:    p.Editor,
		scorer:    NewScorer(p.Config.Scoring),
		cleaner:   feed.NewCleaner(p.Config.SummaryLength),
		cfg:       p.Config,
	}
}

// NewAggregatorFromConfig wires the feed fetchers, the optional content extractor and the optional llm editor
func NewAggregatorFromConfig(cfg config.NewsConfig, extractor Extractor, editor Completer) *Aggregator {
	cleaner := feed.NewCleaner(cfg.SummaryLength)
	p := Params{
		RSS: feed.NewRSSFetcher(feed.RSSParams{
			Sources: cfg.RSS, Timeout: cfg.Timeout, UserAgent: cfg.UserAgent, Workers: cfg.MaxWorkers,
			MinSummary: cfg.MinSummaryLength, Cleaner: cleaner,
		}),
		Scraper: feed.NewScraper(feed.ScraperParams{
			Sources: cfg.Scraping, Timeout: cfg.Timeout, UserAgent: cfg.UserAgent, Workers: cfg.MaxWorkers, Cleaner: cleaner,
		}),
		Config: cfg,
	}
	if api := feed.NewNewsAPIFetcher(cfg.NewsAPI, cfg.Timeout, cfg.UserAgent, cleaner); api.Enabled() {
		p.API = api
	}
	if cfg.Enrich.Enabled && extractor != nil {
		p.Extractor = extractor
	}
	if cfg.Editorial.Enabled && editor != nil {
		p.Editor = editor
	}
	return NewAggregator(p)
}

// FetchAll fetches RSS and scraped sources concurrently, backfills from the news api when they are thin,
// then scores, deduplicates and selects the daily articles. Selected articles are enriched and summarized
// when an extractor and an editor are set.
func (a *Aggregator) FetchAll(ctx context.Context) []domain.Article {
	var rssArticles, scraped, fromAPI []domain.Article
	g, gctx := errgroup.WithContext(ctx)
	if a.rss != nil {
		g.Go(func() error {
			rssArticles = a.rss.FetchAll(gctx)
			return nil
		})
	}
	if a.scraper != nil {
		g.Go(func() error {
			scraped = a.scraper.FetchAll(gctx)
			return nil
		})
	}
	_ = g.Wait()

	if specialized := len(rssArticles) + len(scraped); a.api != nil && specialized < a.cfg.BackfillBelow {
		log.Printf("[INFO] only %d articles from specialized sources, backfilling from news api", specialized)
		fromAPI = a.api.FetchAll(ctx)
	}

	combined := CombineSources(rssArticles, scraped, fromAPI)
	scored := a.scorer.ScoreRelevancy(combined)
	unique := Deduplicate(scored, a.cfg.SimilarityThreshold)
	selected := Select(unique, a.cfg.MaxArticles, a.cfg.MaxLocale)
	log.Printf("[INFO] news aggregation: rss=%d scraped=%d api=%d unique=%d selected=%d",
		len(rssArticles), len(scraped), len(fromAPI), len(unique), len(selected))

	return a.summarize(ctx, a.enrich(ctx, selected))
}

// ScoreRelevancy scores articles with the configured tables
func (a *Aggregator) ScoreRelevancy(articles []domain.Article) []domain.Article {
	return a.scorer.ScoreRelevancy(articles)
}

// CombineSources tags each article with the source type of its list and concatenates the lists
func CombineSources(rss, scraped, api []domain.Article) []domain.Article {
	res := make([]domain.Article, 0, len(rss)+len(scraped)+len(api))
	tag := func(articles []domain.Article, st domain.SourceType) {
		for _, a := range articles {
			a.SourceType = st
			res = append(res, a)
		}
	}
	tag(rss, domain.SourceRSS)
	tag(scraped, domain.SourceScraping)
	tag(api, domain.SourceAPI)
	return res
}

// Select takes up to n articles in order, with at most maxLocale locale articles
func Select(articles []domain.Article, n, maxLocale int) []domain.Article {
	res := make([]domain.Article, 0, n)
	locale := 0
	for _, a := range articles {
		if len(res) >= n {
			break
		}
		if a.Locale {
			if locale >= maxLocale {
				continue
			}
			locale++
		}
		res = append(res, a)
	}
	return res
}

// enrich replaces thin summaries with the beginning of the extracted article text
func (a *Aggregator) enrich(ctx context.Context, articles []domain.Article) []domain.Article {
	if a.extractor == nil {
		return articles
	}
	for i, art := range articles {
		if utf8.RuneCountInString(art.Summary) >= a.cfg.Enrich.MinSummary {
			continue
		}
		ectx, cancel := context.WithTimeout(ctx, a.enrichTimeout())
		text, err := a.extractor.Extract(ectx, art.URL)
		cancel()
		if err != nil {
			log.Printf("[DEBUG] can't enrich %s: %v", art.URL, err)
			continue
		}
		if summary := a.cleaner.Clean(text); utf8.RuneCountInString(summary) > utf8.RuneCountInString(art.Summary) {
			articles[i].Summary = summary
		}
	}
	return articles
}

func (a *Aggregator) enrichTimeout() time.Duration {
	if a.cfg.Enrich.Timeout > 0 {
		return a.cfg.Enrich.Timeout
	}
	return 20 * time.Second
}
