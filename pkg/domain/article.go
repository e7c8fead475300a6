package domain

import "time"

// SourceType identifies which fetcher produced an article
type SourceType string

const (
	SourceRSS      SourceType = "rss"
	SourceScraping SourceType = "scraping"
	SourceAPI      SourceType = "api"
)

// Article is a normalized news entry produced by one aggregation run
type Article struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Summary     string     `json:"summary"`
	PublishedAt time.Time  `json:"published_at,omitzero"` // zero if the source gave no date
	Source      string     `json:"source"`
	SourceType  SourceType `json:"source_type"`
	Credibility float64    `json:"credibility"`
	Score       float64    `json:"score"`
	Locale      bool       `json:"locale,omitempty"` // mentions a locale-priority term
	SummaryEN   string     `json:"summary_en,omitempty"`
	SummarySL   string     `json:"summary_sl,omitempty"`
}

// NewsDay is the cached selection of articles for one calendar date
type NewsDay struct {
	Date     string    `json:"date"` // YYYY-MM-DD
	Articles []Article `json:"articles"`
	CachedAt time.Time `json:"cached_at"`
}

// DateKey formats t as the NewsDay key
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
