package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/pdtriglav/alpcontent/pkg/config"
	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/metrics"
)

// maxScrapedPerSource caps articles taken from one listing page
const maxScrapedPerSource = 10

// date layouts seen on club and magazine listing pages
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2.1.2006",
	"02.01.2006",
	"2. 1. 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
}

// Scraper extracts article lists from HTML pages with CSS selectors
type Scraper struct {
	client    *http.Client
	userAgent string
	cleaner   *Cleaner
	sources   []config.ScrapeSource
	gates     map[string]*intervalGate
	workers   int
}

// ScraperParams configures Scraper
type ScraperParams struct {
	Sources   []config.ScrapeSource
	Timeout   time.Duration
	UserAgent string
	Workers   int
	Cleaner   *Cleaner
}

// NewScraper creates a scraper with one interval gate per source
func NewScraper(params ScraperParams) *Scraper {
	if params.Workers <= 0 {
		params.Workers = 5
	}
	if params.Cleaner == nil {
		params.Cleaner = NewCleaner(300)
	}
	s := &Scraper{
		client:    &http.Client{Timeout: params.Timeout},
		userAgent: params.UserAgent,
		cleaner:   params.Cleaner,
		sources:   params.Sources,
		gates:     make(map[string]*intervalGate, len(params.Sources)),
		workers:   params.Workers,
	}
	for _, src := range params.Sources {
		s.gates[src.Name] = &intervalGate{interval: src.MinInterval}
	}
	return s
}

// FetchAll scrapes every source concurrently, a failing source is logged and skipped
func (s *Scraper) FetchAll(ctx context.Context) []domain.Article {
	perSource := make([][]domain.Article, len(s.sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, src := range s.sources {
		g.Go(func() error {
			articles, err := s.FetchSource(gctx, src)
			if err != nil {
				metrics.SourceErrors.WithLabelValues(string(domain.SourceScraping)).Inc()
				log.Printf("[WARN] scraping source %s skipped: %v", src.Name, err)
				return nil
			}
			perSource[i] = articles
			return nil
		})
	}
	_ = g.Wait()

	var res []domain.Article
	for _, articles := range perSource {
		res = append(res, articles...)
	}
	metrics.ArticlesFetched.WithLabelValues(string(domain.SourceScraping)).Add(float64(len(res)))
	return res
}

// FetchSource makes one rate limited GET request to the source and extracts up to 10 articles
func (s *Scraper) FetchSource(ctx context.Context, src config.ScrapeSource) ([]domain.Article, error) {
	base, err := url.Parse(src.URL)
	if err != nil {
		return nil, fmt.Errorf("parse source url: %w", err)
	}

	gate, ok := s.gates[src.Name]
	if !ok {
		gate = &intervalGate{interval: src.MinInterval}
	}
	if err := gate.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	doc, err := s.load(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	var res []domain.Article
	doc.Find(src.ArticleSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if article, ok := s.extract(sel, src, base); ok {
			res = append(res, article)
		}
		return len(res) < maxScrapedPerSource
	})
	log.Printf("[DEBUG] scraping source %s: %d articles", src.Name, len(res))
	return res, nil
}

func (s *Scraper) load(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	setRequestHeaders(req, s.userAgent, acceptHTML)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}

func (s *Scraper) extract(sel *goquery.Selection, src config.ScrapeSource, base *url.URL) (domain.Article, bool) {
	titleSel := pick(sel, src.TitleSelector, "h1, h2, h3, h4")
	title := strings.TrimSpace(s.cleaner.Clean(titleSel.Text()))
	if title == "" {
		return domain.Article{}, false
	}

	href := ""
	if src.URLSelector != "" {
		href, _ = sel.Find(src.URLSelector).First().Attr("href")
	}
	if href == "" {
		href, _ = titleSel.Find("a").First().Attr("href")
	}
	if href == "" {
		href, _ = titleSel.Closest("a").Attr("href")
	}
	if href == "" {
		href, _ = sel.Find("a").First().Attr("href")
	}
	link, err := base.Parse(strings.TrimSpace(href))
	if href == "" || err != nil {
		return domain.Article{}, false
	}

	summary := ""
	if src.SummarySelector != "" {
		fragment, _ := sel.Find(src.SummarySelector).First().Html()
		summary = s.cleaner.Clean(fragment)
	}

	var published time.Time
	if src.DateSelector != "" {
		if t, ok := parseDate(sel.Find(src.DateSelector).First()); ok {
			published = t
		}
	}

	return domain.Article{
		Title:       title,
		URL:         link.String(),
		Summary:     summary,
		PublishedAt: published,
		Source:      src.Name,
		SourceType:  domain.SourceScraping,
		Credibility: src.Credibility,
	}, true
}

// pick returns the first match of selector inside sel, or of the fallback selector when selector is empty
func pick(sel *goquery.Selection, selector, fallback string) *goquery.Selection {
	if selector == "" {
		selector = fallback
	}
	return sel.Find(selector).First()
}

// parseDate reads a datetime attribute or the element text
func parseDate(sel *goquery.Selection) (time.Time, bool) {
	candidates := []string{}
	if v, ok := sel.Attr("datetime"); ok {
		candidates = append(candidates, v)
	}
	candidates = append(candidates, strings.TrimSpace(sel.Text()))
	for _, c := range candidates {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, c); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
