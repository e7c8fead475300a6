package config

import (
	"os"
	"time"
)

// known provider endpoints, filled in when a provider omits them
var knownProviders = map[string]ProviderConfig{
	"moonshot": {
		Name: "moonshot", BaseURL: "https://api.moonshot.ai/v1", Model: "kimi-k2-0711-preview",
		Temperature: 0.3, MaxTokens: 2000, CostPerToken: 0.00001,
	},
	"deepseek": {
		Name: "deepseek", BaseURL: "https://api.deepseek.com/v1", Model: "deepseek-chat",
		Temperature: 0.5, MaxTokens: 2000, CostPerToken: 0.000001,
	},
}

// DefaultRSSSources are the club's specialized feeds
var DefaultRSSSources = []RSSSource{
	{Name: "PZS", URL: "https://www.pzs.si/rss.php", Credibility: 0.9},
	{Name: "Planet Mountain", URL: "https://www.planetmountain.com/rss/rss.xml", Credibility: 0.9},
	{Name: "Gripped", URL: "https://gripped.com/feed/", Credibility: 0.8},
}

// DefaultKeywords weights climbing-domain terms found in title and summary
var DefaultKeywords = map[string]float64{
	"alpinism":       2,
	"sport climbing": 2,
	"first ascent":   2,
	"mountaineering": 1.5,
	"alpine":         1.5,
	"expedition":     1,
	"climbing":       1,
	"bouldering":     1,
	"summit":         1,
	"ifsc":           1,
	"route":          0.5,
	"gear":           1,
	"equipment":      1,
}

// DefaultLocaleTerms flag articles about the club's home climbers and places
var DefaultLocaleTerms = []string{
	"slovenia", "slovenian", "slovenija", "janja garnbret", "luka lindič", "domen škofic",
	"mina markovič", "triglav", "julian alps", "pzs",
}

// DefaultNewsAPITerms are the topical backfill searches
var DefaultNewsAPITerms = []string{
	"rock climbing", "mountaineering", "alpine climbing", "climbing competition", "Alex Honnold",
	"Adam Ondra", "Janja Garnbret", "climbing equipment", "IFSC climbing", "Olympic climbing",
}

func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:alpcontent.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	c.applyLLMDefaults()

	if c.History.Temperature == 0 {
		c.History.Temperature = 0.3
	}
	if c.History.MaxTokens == 0 {
		c.History.MaxTokens = 2000
	}
	c.applyArchiveDefaults()

	c.applyNewsDefaults()
}

func (c *Config) applyLLMDefaults() {
	l := &c.LLM
	if l.Timeout == 0 {
		l.Timeout = 30 * time.Second
	}
	if l.MaxRetries == 0 {
		l.MaxRetries = 3
	}
	if l.RetryDelay == 0 {
		l.RetryDelay = time.Second
	}
	if l.MaxRetryDelay == 0 {
		l.MaxRetryDelay = 8 * time.Second
	}

	if len(l.Providers) == 0 {
		l.Providers = []ProviderConfig{
			{Name: "moonshot", APIKey: os.Getenv("MOONSHOT_API_KEY")},
			{Name: "deepseek", APIKey: os.Getenv("DEEPSEEK_API_KEY")},
		}
	}
	for i := range l.Providers {
		p := &l.Providers[i]
		known, ok := knownProviders[p.Name]
		if !ok {
			known = ProviderConfig{Temperature: 0.3, MaxTokens: 2000}
		}
		if p.BaseURL == "" {
			p.BaseURL = known.BaseURL
		}
		if p.Model == "" {
			p.Model = known.Model
		}
		if p.Temperature == 0 {
			p.Temperature = known.Temperature
		}
		if p.MaxTokens == 0 {
			p.MaxTokens = known.MaxTokens
		}
		if p.CostPerToken == 0 {
			p.CostPerToken = known.CostPerToken
		}
	}

	if len(l.Priorities) == 0 {
		l.Priorities = map[string][]string{
			"historical": {"moonshot", "deepseek"},
			"news":       {"deepseek", "moonshot"},
		}
	}
}

func (c *Config) applyArchiveDefaults() {
	a := &c.History.Archive
	if a.URL == "" {
		a.URL = "https://www.zsa.si/category/na-danasnji-dan/"
	}
	if a.MaxPages == 0 {
		a.MaxPages = 5
	}
	if a.MaxEvents == 0 {
		a.MaxEvents = 50
	}
	if a.Delay == 0 {
		a.Delay = 2 * time.Second
	}
	if a.Timeout == 0 {
		a.Timeout = 15 * time.Second
	}
	if a.UserAgent == "" {
		a.UserAgent = "SlovenianMountaineeringClub-HistoryBot/1.0"
	}
}

func (c *Config) applyNewsDefaults() {
	n := &c.News
	if n.Timeout == 0 {
		n.Timeout = 20 * time.Second
	}
	if n.MaxWorkers == 0 {
		n.MaxWorkers = 5
	}
	if n.MaxArticles == 0 {
		n.MaxArticles = 3
	}
	if n.MaxLocale == 0 {
		n.MaxLocale = 2
	}
	if n.SummaryLength == 0 {
		n.SummaryLength = 300
	}
	if n.MinSummaryLength == 0 {
		n.MinSummaryLength = 20
	}
	if n.SimilarityThreshold == 0 {
		n.SimilarityThreshold = 0.8
	}
	if n.BackfillBelow == 0 {
		n.BackfillBelow = 10
	}
	if n.CacheRetentionDays == 0 {
		n.CacheRetentionDays = 30
	}
	if n.UserAgent == "" {
		n.UserAgent = "SlovenianMountaineeringClub-NewsBot/1.0"
	}
	if len(n.RSS) == 0 {
		n.RSS = append([]RSSSource(nil), DefaultRSSSources...)
	}
	for i := range n.RSS {
		if n.RSS[i].Credibility == 0 {
			n.RSS[i].Credibility = 0.8
		}
	}
	for i := range n.Scraping {
		if n.Scraping[i].Credibility == 0 {
			n.Scraping[i].Credibility = 0.7
		}
		if n.Scraping[i].MinInterval == 0 {
			n.Scraping[i].MinInterval = 2 * time.Second
		}
	}

	api := &n.NewsAPI
	if api.BaseURL == "" {
		api.BaseURL = "https://newsapi.org/v2/everything"
	}
	if len(api.Terms) == 0 {
		api.Terms = append([]string(nil), DefaultNewsAPITerms...)
	}
	if api.Window == 0 {
		api.Window = 7 * 24 * time.Hour
	}
	if api.PageSize == 0 {
		api.PageSize = 5
	}
	if api.Language == "" {
		api.Language = "en"
	}
	if api.Credibility == 0 {
		api.Credibility = 0.3
	}

	s := &n.Scoring
	if len(s.Keywords) == 0 {
		s.Keywords = make(map[string]float64, len(DefaultKeywords))
		for k, v := range DefaultKeywords {
			s.Keywords[k] = v
		}
	}
	if len(s.LocaleTerms) == 0 {
		s.LocaleTerms = append([]string(nil), DefaultLocaleTerms...)
	}
	if s.LocaleBoost == 0 {
		s.LocaleBoost = 2.0
	}
	if len(s.SourceBonus) == 0 {
		s.SourceBonus = map[string]float64{"rss": 2.0, "scraping": 1.5, "api": 0}
	}
	if s.FreshBonus == 0 {
		s.FreshBonus = 3
	}
	if s.RecentBonus == 0 {
		s.RecentBonus = 1
	}

	if n.Enrich.Timeout == 0 {
		n.Enrich.Timeout = 20 * time.Second
	}
	if n.Enrich.MinSummary == 0 {
		n.Enrich.MinSummary = 80
	}

	if n.Editorial.Temperature == 0 {
		n.Editorial.Temperature = 0.3
	}
	if n.Editorial.MaxTokens == 0 {
		n.Editorial.MaxTokens = 500
	}
}
