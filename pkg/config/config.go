package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"required,default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"required,default=file:alpcontent.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	LLM     LLMConfig     `yaml:"llm" json:"llm" jsonschema:"description=LLM providers and fallback order"`
	History HistoryConfig `yaml:"history" json:"history" jsonschema:"description=Historical event generation"`
	News    NewsConfig    `yaml:"news" json:"news" jsonschema:"description=News aggregation"`
}

// ProviderConfig describes one OpenAI-compatible chat completion backend
type ProviderConfig struct {
	Name         string  `yaml:"name" json:"name" jsonschema:"required,description=Provider name used in priority lists"`
	APIKey       string  `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	BaseURL      string  `yaml:"base_url" json:"base_url" jsonschema:"description=OpenAI-compatible API base URL"`
	Model        string  `yaml:"model" json:"model" jsonschema:"description=Model name"`
	Temperature  float64 `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Default temperature"`
	MaxTokens    int     `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Default max tokens"`
	CostPerToken float64 `yaml:"cost_per_token" json:"cost_per_token" jsonschema:"description=Approximate cost per token in USD"`
	JSONMode     *bool   `yaml:"json_mode" json:"json_mode,omitempty" jsonschema:"description=Request json_object response format (default true)"`
}

// LLMConfig holds provider definitions and retry settings
type LLMConfig struct {
	Timeout       time.Duration       `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Per-request timeout"`
	MaxRetries    int                 `yaml:"max_retries" json:"max_retries" jsonschema:"default=3,description=Attempts per provider call"`
	RetryDelay    time.Duration       `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=1s,description=Initial backoff delay"`
	MaxRetryDelay time.Duration       `yaml:"max_retry_delay" json:"max_retry_delay" jsonschema:"default=8s,description=Maximum backoff delay"`
	Providers     []ProviderConfig    `yaml:"providers" json:"providers" jsonschema:"description=Configured providers"`
	Priorities    map[string][]string `yaml:"priorities" json:"priorities" jsonschema:"description=Provider order per use case"`
}

// HistoryConfig holds historical event generation settings
type HistoryConfig struct {
	PromptFile  string        `yaml:"prompt_file" json:"prompt_file" jsonschema:"description=Optional prompt template overriding the embedded one"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Generation temperature"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Generation max tokens"`
	Archive     ArchiveConfig `yaml:"archive" json:"archive" jsonschema:"description=On this day archive crawled into curated events"`
}

// ArchiveConfig configures the crawler of a WordPress "on this day" category
type ArchiveConfig struct {
	URL       string        `yaml:"url" json:"url" jsonschema:"default=https://www.zsa.si/category/na-danasnji-dan/,description=First category page"`
	MaxPages  int           `yaml:"max_pages" json:"max_pages" jsonschema:"default=5,description=Category pages to follow"`
	MaxEvents int           `yaml:"max_events" json:"max_events" jsonschema:"default=50,description=Event pages to scrape per run"`
	Delay     time.Duration `yaml:"delay" json:"delay" jsonschema:"default=2s,description=Pause between requests"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent of the crawler"`
}

// RSSSource is a feed to aggregate
type RSSSource struct {
	Name        string  `yaml:"name" json:"name" jsonschema:"description=Display name (derived from the URL host if empty)"`
	URL         string  `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Credibility float64 `yaml:"credibility" json:"credibility" jsonschema:"minimum=0,maximum=1,description=Source credibility weight"`
}

// ScrapeSource is an HTML page scraped with CSS selectors
type ScrapeSource struct {
	Name            string        `yaml:"name" json:"name" jsonschema:"required,description=Source name"`
	URL             string        `yaml:"url" json:"url" jsonschema:"required,description=Listing page URL"`
	ArticleSelector string        `yaml:"article_selector" json:"article_selector" jsonschema:"required,description=Selector of one article element"`
	TitleSelector   string        `yaml:"title_selector" json:"title_selector" jsonschema:"description=Title selector inside the article"`
	URLSelector     string        `yaml:"url_selector" json:"url_selector" jsonschema:"description=Link selector inside the article"`
	SummarySelector string        `yaml:"summary_selector" json:"summary_selector" jsonschema:"description=Summary selector inside the article"`
	DateSelector    string        `yaml:"date_selector" json:"date_selector" jsonschema:"description=Date selector inside the article"`
	Credibility     float64       `yaml:"credibility" json:"credibility" jsonschema:"minimum=0,maximum=1,description=Source credibility weight"`
	MinInterval     time.Duration `yaml:"min_interval" json:"min_interval" jsonschema:"default=2s,description=Minimum interval between requests"`
}

// NewsAPIConfig configures the generic news search backfill
type NewsAPIConfig struct {
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=News API key, backfill disabled if empty"`
	BaseURL     string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://newsapi.org/v2/everything,description=Search endpoint"`
	Terms       []string      `yaml:"terms" json:"terms" jsonschema:"description=Search terms"`
	Window      time.Duration `yaml:"window" json:"window" jsonschema:"default=168h,description=Trailing search window"`
	PageSize    int           `yaml:"page_size" json:"page_size" jsonschema:"default=5,description=Results per term"`
	Language    string        `yaml:"language" json:"language" jsonschema:"default=en,description=Result language"`
	Credibility float64       `yaml:"credibility" json:"credibility" jsonschema:"default=0.3,description=Credibility weight of api results"`
}

// ScoringConfig holds relevancy scoring tables
type ScoringConfig struct {
	Keywords    map[string]float64 `yaml:"keywords" json:"keywords" jsonschema:"description=Climbing keyword weights"`
	LocaleTerms []string           `yaml:"locale_terms" json:"locale_terms" jsonschema:"description=Locale priority terms"`
	LocaleBoost float64            `yaml:"locale_boost" json:"locale_boost" jsonschema:"default=2.0,description=Boost for locale articles"`
	SourceBonus map[string]float64 `yaml:"source_bonus" json:"source_bonus" jsonschema:"description=Bonus per source type (rss, scraping, api)"`
	FreshBonus  float64            `yaml:"fresh_bonus" json:"fresh_bonus" jsonschema:"default=3,description=Bonus for articles younger than 24h"`
	RecentBonus float64            `yaml:"recent_bonus" json:"recent_bonus" jsonschema:"default=1,description=Bonus for articles younger than 48h"`
}

// EnrichConfig controls trafilatura enrichment of thin summaries
type EnrichConfig struct {
	Enabled    bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Fetch article pages for thin summaries"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=20s,description=Extraction timeout"`
	MinSummary int           `yaml:"min_summary" json:"min_summary" jsonschema:"default=80,description=Summaries shorter than this are enriched"`
}

// EditorialConfig controls the llm summary and translation of the selected articles
type EditorialConfig struct {
	Enabled     bool    `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Summarize and translate selected articles with the llm"`
	Temperature float64 `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Summary temperature"`
	MaxTokens   int     `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Summary max tokens"`
}

// NewsConfig holds news aggregation settings
type NewsConfig struct {
	Timeout             time.Duration   `yaml:"timeout" json:"timeout" jsonschema:"default=20s,description=Per-request timeout"`
	MaxWorkers          int             `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Concurrent fetch workers"`
	MaxArticles         int             `yaml:"max_articles" json:"max_articles" jsonschema:"default=3,description=Articles selected per day"`
	MaxLocale           int             `yaml:"max_locale" json:"max_locale" jsonschema:"default=2,description=Max locale articles in the selection"`
	SummaryLength       int             `yaml:"summary_length" json:"summary_length" jsonschema:"default=300,description=Summary truncation length"`
	MinSummaryLength    int             `yaml:"min_summary_length" json:"min_summary_length" jsonschema:"default=20,description=RSS entries with shorter summaries are dropped"`
	SimilarityThreshold float64         `yaml:"similarity_threshold" json:"similarity_threshold" jsonschema:"default=0.8,description=Title Jaccard threshold for duplicates"`
	BackfillBelow       int             `yaml:"backfill_below" json:"backfill_below" jsonschema:"default=10,description=Query the news api when specialized sources return fewer articles"`
	CacheRetentionDays  int             `yaml:"cache_retention_days" json:"cache_retention_days" jsonschema:"default=30,description=Days of cached news to keep"`
	UserAgent           string          `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for feed and page requests"`
	RSS                 []RSSSource     `yaml:"rss" json:"rss" jsonschema:"description=RSS sources"`
	Scraping            []ScrapeSource  `yaml:"scraping" json:"scraping" jsonschema:"description=Scraped sources"`
	NewsAPI             NewsAPIConfig   `yaml:"news_api" json:"news_api" jsonschema:"description=News API backfill"`
	Scoring             ScoringConfig   `yaml:"scoring" json:"scoring" jsonschema:"description=Relevancy scoring"`
	Enrich              EnrichConfig    `yaml:"enrich" json:"enrich" jsonschema:"description=Summary enrichment"`
	Editorial           EditorialConfig `yaml:"editorial" json:"editorial" jsonschema:"description=LLM summary and Slovenian translation"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	if err := Verify(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}
	return &cfg, nil
}

// Default returns a config with all defaults applied, used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	names := map[string]bool{}
	for i, p := range cfg.LLM.Providers {
		if p.Name == "" {
			return fmt.Errorf("llm.providers[%d].name is required", i)
		}
		if names[p.Name] {
			return fmt.Errorf("llm provider %q defined twice", p.Name)
		}
		names[p.Name] = true
		if p.Temperature < 0 || p.Temperature > 2 {
			return fmt.Errorf("llm provider %q: temperature must be between 0 and 2", p.Name)
		}
	}
	if cfg.LLM.MaxRetries < 1 {
		return fmt.Errorf("llm.max_retries must be at least 1")
	}

	n := cfg.News
	if n.MaxLocale > n.MaxArticles {
		return fmt.Errorf("news.max_locale (%d) exceeds news.max_articles (%d)", n.MaxLocale, n.MaxArticles)
	}
	if n.SimilarityThreshold <= 0 || n.SimilarityThreshold > 1 {
		return fmt.Errorf("news.similarity_threshold must be in (0, 1]")
	}
	for _, s := range n.RSS {
		if s.Credibility < 0 || s.Credibility > 1 {
			return fmt.Errorf("rss source %q: credibility must be between 0 and 1", s.URL)
		}
	}
	for _, s := range n.Scraping {
		if s.ArticleSelector == "" {
			return fmt.Errorf("scraping source %q: article_selector is required", s.Name)
		}
		if s.Credibility < 0 || s.Credibility > 1 {
			return fmt.Errorf("scraping source %q: credibility must be between 0 and 1", s.Name)
		}
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetNewsConfig returns news aggregation configuration
func (c *Config) GetNewsConfig() NewsConfig {
	return c.News
}
