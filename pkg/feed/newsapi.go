package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/pdtriglav/alpcontent/pkg/config"
	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/metrics"
)

// NewsAPIFetcher searches a newsapi.org compatible endpoint, the last resort source
type NewsAPIFetcher struct {
	client    *http.Client
	cfg       config.NewsAPIConfig
	userAgent string
	cleaner   *Cleaner
	workers   int
	now       func() time.Time
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Content     string    `json:"content"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// NewNewsAPIFetcher creates the fetcher, it does nothing when no API key is configured
func NewNewsAPIFetcher(cfg config.NewsAPIConfig, timeout time.Duration, userAgent string, cleaner *Cleaner) *NewsAPIFetcher {
	if cleaner == nil {
		cleaner = NewCleaner(300)
	}
	return &NewsAPIFetcher{
		client:    &http.Client{Timeout: timeout},
		cfg:       cfg,
		userAgent: userAgent,
		cleaner:   cleaner,
		workers:   3,
		now:       time.Now,
	}
}

// Enabled reports whether the API key is set
func (f *NewsAPIFetcher) Enabled() bool { return f.cfg.APIKey != "" }

// FetchAll runs every search term and merges results, dropping repeated urls
func (f *NewsAPIFetcher) FetchAll(ctx context.Context) []domain.Article {
	if !f.Enabled() {
		return []domain.Article{}
	}

	var mu sync.Mutex
	seen := map[string]bool{}
	perTerm := make([][]domain.Article, len(f.cfg.Terms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for i, term := range f.cfg.Terms {
		g.Go(func() error {
			articles, err := f.Search(gctx, term)
			if err != nil {
				metrics.SourceErrors.WithLabelValues(string(domain.SourceAPI)).Inc()
				log.Printf("[WARN] news api search %q failed: %v", term, err)
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			for _, a := range articles {
				if seen[a.URL] {
					continue
				}
				seen[a.URL] = true
				perTerm[i] = append(perTerm[i], a)
			}
			return nil
		})
	}
	_ = g.Wait()

	res := []domain.Article{}
	for _, articles := range perTerm {
		res = append(res, articles...)
	}
	metrics.ArticlesFetched.WithLabelValues(string(domain.SourceAPI)).Add(float64(len(res)))
	return res
}

// Search queries one term over the trailing window
func (f *NewsAPIFetcher) Search(ctx context.Context, term string) ([]domain.Article, error) {
	q := url.Values{}
	q.Set("q", term)
	q.Set("from", f.now().Add(-f.cfg.Window).Format("2006-01-02"))
	q.Set("language", f.cfg.Language)
	q.Set("sortBy", "relevancy")
	q.Set("pageSize", strconv.Itoa(f.cfg.PageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.BaseURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	setRequestHeaders(req, f.userAgent, acceptJSON)
	req.Header.Set("X-Api-Key", f.cfg.APIKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || body.Status != "ok" {
		return nil, fmt.Errorf("news api error %d %s: %s", resp.StatusCode, body.Code, body.Message)
	}

	res := make([]domain.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		title := strings.TrimSpace(a.Title)
		if title == "" || a.URL == "" || title == "[Removed]" {
			continue
		}
		summary := a.Description
		if summary == "" {
			summary = a.Content
		}
		source := a.Source.Name
		if source == "" {
			source = SourceName(a.URL)
		}
		res = append(res, domain.Article{
			Title:       title,
			URL:         a.URL,
			Summary:     f.cleaner.Clean(summary),
			PublishedAt: a.PublishedAt,
			Source:      source,
			SourceType:  domain.SourceAPI,
			Credibility: f.cfg.Credibility,
		})
	}
	return res, nil
}
