package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		missing []string
	}{
		{name: "defaults pass", modify: func(*Config) {}},
		{name: "empty listen", modify: func(c *Config) { c.Server.Listen = "" }, missing: []string{"server.listen"}},
		{name: "rss without url", modify: func(c *Config) {
			c.News.RSS = append(c.News.RSS, RSSSource{Name: "broken"})
		}, missing: []string{"news.rss[3].url"}},
		{name: "scraper without url and selector", modify: func(c *Config) {
			c.News.Scraping = []ScrapeSource{{Name: "club"}}
		}, missing: []string{"news.scraping[0].article_selector", "news.scraping[0].url"}},
		{name: "provider without name", modify: func(c *Config) {
			c.LLM.Providers[1].Name = ""
		}, missing: []string{"llm.providers[1].name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := Verify(cfg)
			if len(tt.missing) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, m := range tt.missing {
				assert.Contains(t, err.Error(), m)
			}
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"llm"`)
	assert.Contains(t, string(data), `"news"`)
	assert.Contains(t, string(data), "Feed URL")
}
