package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		t.Setenv("TEST_MOONSHOT_KEY", "secret-key")
		cfg, err := Load(writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
llm:
  max_retries: 2
  providers:
    - name: moonshot
      api_key: ${TEST_MOONSHOT_KEY}
    - name: local
      base_url: http://localhost:11434/v1
      model: llama3
  priorities:
    historical: [local, moonshot]
news:
  max_articles: 5
  rss:
    - url: https://example.com/feed.xml
      credibility: 0.6
  scraping:
    - name: club
      url: https://example.com/news
      article_selector: article
      title_selector: h2
`))
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 2, cfg.LLM.MaxRetries)
		require.Len(t, cfg.LLM.Providers, 2)
		assert.Equal(t, "secret-key", cfg.LLM.Providers[0].APIKey)
		assert.Equal(t, "https://api.moonshot.ai/v1", cfg.LLM.Providers[0].BaseURL)
		assert.Equal(t, "kimi-k2-0711-preview", cfg.LLM.Providers[0].Model)
		assert.InDelta(t, 0.00001, cfg.LLM.Providers[0].CostPerToken, 1e-12)
		assert.Equal(t, "llama3", cfg.LLM.Providers[1].Model)
		assert.InDelta(t, 0.3, cfg.LLM.Providers[1].Temperature, 1e-9)
		assert.Equal(t, []string{"local", "moonshot"}, cfg.LLM.Priorities["historical"])

		assert.Equal(t, 5, cfg.News.MaxArticles)
		require.Len(t, cfg.News.RSS, 1)
		assert.InDelta(t, 0.6, cfg.News.RSS[0].Credibility, 1e-9)
		require.Len(t, cfg.News.Scraping, 1)
		assert.Equal(t, 2*time.Second, cfg.News.Scraping[0].MinInterval)
		assert.InDelta(t, 0.7, cfg.News.Scraping[0].Credibility, 1e-9)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
		assert.Equal(t, 3, cfg.LLM.MaxRetries)
		assert.Equal(t, time.Second, cfg.LLM.RetryDelay)
		require.Len(t, cfg.LLM.Providers, 2)
		assert.Equal(t, "moonshot", cfg.LLM.Providers[0].Name)
		assert.Equal(t, "deepseek", cfg.LLM.Providers[1].Name)
		assert.Equal(t, []string{"moonshot", "deepseek"}, cfg.LLM.Priorities["historical"])
		assert.Equal(t, []string{"deepseek", "moonshot"}, cfg.LLM.Priorities["news"])

		assert.Equal(t, 3, cfg.News.MaxArticles)
		assert.Equal(t, 2, cfg.News.MaxLocale)
		assert.Equal(t, 300, cfg.News.SummaryLength)
		assert.InDelta(t, 0.8, cfg.News.SimilarityThreshold, 1e-9)
		assert.Equal(t, 30, cfg.News.CacheRetentionDays)
		assert.Len(t, cfg.News.RSS, len(DefaultRSSSources))
		assert.Equal(t, 7*24*time.Hour, cfg.News.NewsAPI.Window)
		assert.Equal(t, 5, cfg.News.NewsAPI.PageSize)
		assert.InDelta(t, 2.0, cfg.News.Scoring.LocaleBoost, 1e-9)
		assert.InDelta(t, 2.0, cfg.News.Scoring.Keywords["alpinism"], 1e-9)
		assert.Contains(t, cfg.News.Scoring.LocaleTerms, "janja garnbret")
		assert.False(t, cfg.News.Editorial.Enabled)
		assert.Equal(t, 500, cfg.News.Editorial.MaxTokens)

		assert.Equal(t, "https://www.zsa.si/category/na-danasnji-dan/", cfg.History.Archive.URL)
		assert.Equal(t, 5, cfg.History.Archive.MaxPages)
		assert.Equal(t, 50, cfg.History.Archive.MaxEvents)
		assert.Equal(t, 2*time.Second, cfg.History.Archive.Delay)
		assert.Equal(t, "SlovenianMountaineeringClub-HistoryBot/1.0", cfg.History.Archive.UserAgent)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [bad"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{name: "valid defaults", modify: func(*Config) {}},
		{name: "short server timeout", modify: func(c *Config) { c.Server.Timeout = time.Millisecond }, errMsg: "server timeout"},
		{name: "duplicate provider", modify: func(c *Config) {
			c.LLM.Providers = append(c.LLM.Providers, ProviderConfig{Name: "moonshot"})
		}, errMsg: "defined twice"},
		{name: "provider without name", modify: func(c *Config) {
			c.LLM.Providers = append(c.LLM.Providers, ProviderConfig{})
		}, errMsg: "name is required"},
		{name: "bad temperature", modify: func(c *Config) { c.LLM.Providers[0].Temperature = 3 }, errMsg: "temperature"},
		{name: "locale cap above selection", modify: func(c *Config) { c.News.MaxLocale = 4 }, errMsg: "max_locale"},
		{name: "bad similarity", modify: func(c *Config) { c.News.SimilarityThreshold = 1.5 }, errMsg: "similarity_threshold"},
		{name: "bad credibility", modify: func(c *Config) { c.News.RSS[0].Credibility = 2 }, errMsg: "credibility"},
		{name: "scraper without selector", modify: func(c *Config) {
			c.News.Scraping = []ScrapeSource{{Name: "x", URL: "http://x"}}
		}, errMsg: "article_selector"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := validate(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfigGetters(t *testing.T) {
	cfg := Default()
	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":8080", listen)
	assert.Equal(t, 30*time.Second, timeout)
	assert.Equal(t, cfg.LLM.MaxRetries, cfg.GetLLMConfig().MaxRetries)
	assert.Equal(t, cfg.News.MaxArticles, cfg.GetNewsConfig().MaxArticles)
}
