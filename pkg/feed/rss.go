// Package feed fetches mountaineering news from RSS feeds, scraped club pages and a news search API,
// normalizing every entry into domain.Article.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	log "github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/pdtriglav/alpcontent/pkg/config"
	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/metrics"
)

// RSSFetcher reads configured RSS/Atom feeds
type RSSFetcher struct {
	client     *http.Client
	userAgent  string
	cleaner    *Cleaner
	sources    []config.RSSSource
	workers    int
	minSummary int
}

// RSSParams configures RSSFetcher
type RSSParams struct {
	Sources    []config.RSSSource
	Timeout    time.Duration
	UserAgent  string
	Workers    int
	MinSummary int // entries with summary not longer than this are dropped
	Cleaner    *Cleaner
}

// NewRSSFetcher creates a fetcher for the given feeds
func NewRSSFetcher(params RSSParams) *RSSFetcher {
	if params.Workers <= 0 {
		params.Workers = 5
	}
	if params.Cleaner == nil {
		params.Cleaner = NewCleaner(300)
	}
	return &RSSFetcher{
		client: &http.Client{
			Timeout: params.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:  params.UserAgent,
		cleaner:    params.Cleaner,
		sources:    params.Sources,
		workers:    params.Workers,
		minSummary: params.MinSummary,
	}
}

// FetchAll reads all feeds concurrently. A failing feed contributes nothing and never fails the run.
func (f *RSSFetcher) FetchAll(ctx context.Context) []domain.Article {
	perSource := make([][]domain.Article, len(f.sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for i, src := range f.sources {
		g.Go(func() error {
			perSource[i] = f.FetchSource(gctx, src)
			return nil
		})
	}
	_ = g.Wait()

	var res []domain.Article
	for _, articles := range perSource {
		res = append(res, articles...)
	}
	metrics.ArticlesFetched.WithLabelValues(string(domain.SourceRSS)).Add(float64(len(res)))
	return res
}

// FetchSource reads one feed, returning an empty list on any fetch or parse error
func (f *RSSFetcher) FetchSource(ctx context.Context, src config.RSSSource) []domain.Article {
	name := src.Name
	if name == "" {
		name = SourceName(src.URL)
	}

	parsed, err := f.parse(ctx, src.URL)
	if err != nil {
		metrics.SourceErrors.WithLabelValues(string(domain.SourceRSS)).Inc()
		log.Printf("[WARN] rss source %s (%s) skipped: %v", name, src.URL, err)
		return []domain.Article{}
	}

	res := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if article, ok := f.toArticle(item, name, src.Credibility); ok {
			res = append(res, article)
		}
	}
	log.Printf("[DEBUG] rss source %s: %d of %d entries accepted", name, len(res), len(parsed.Items))
	return res
}

func (f *RSSFetcher) toArticle(item *gofeed.Item, source string, credibility float64) (domain.Article, bool) {
	title := strings.TrimSpace(item.Title)
	link := strings.TrimSpace(item.Link)
	if title == "" || link == "" {
		return domain.Article{}, false
	}

	raw := item.Description
	if strings.TrimSpace(raw) == "" {
		raw = item.Content
	}
	summary := f.cleaner.Clean(raw)
	if utf8.RuneCountInString(summary) <= f.minSummary {
		return domain.Article{}, false
	}

	var published time.Time // zero when the feed has no date, such entries get no recency bonus
	switch {
	case item.PublishedParsed != nil:
		published = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		published = *item.UpdatedParsed
	}

	return domain.Article{
		Title:       title,
		URL:         link,
		Summary:     summary,
		PublishedAt: published,
		Source:      source,
		SourceType:  domain.SourceRSS,
		Credibility: credibility,
	}, true
}

func (f *RSSFetcher) parse(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	body, err := f.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return parsed, nil
}

func (f *RSSFetcher) fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	setRequestHeaders(req, f.userAgent, acceptFeed)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// SourceName derives a short source name from a URL host, "https://www.planetmountain.com/rss" -> "planetmountain"
func SourceName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if idx := strings.Index(host, "."); idx > 0 {
		return host[:idx]
	}
	return host
}
