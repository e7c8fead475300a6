package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdtriglav/alpcontent/pkg/config"
	"github.com/pdtriglav/alpcontent/pkg/domain"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
	<title>Climbing News</title>
	<link>http://example.com</link>
	<description>Test Description</description>
	<item>
		<title> Janja Garnbret wins in Koper </title>
		<link>http://example.com/garnbret</link>
		<description><![CDATA[<p>Slovenian climber Janja Garnbret took another lead world cup title.</p><p>The post Janja Garnbret wins appeared first on Climbing News.</p>]]></description>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
	</item>
	<item>
		<title>Content only</title>
		<link>http://example.com/content</link>
		<content:encoded><![CDATA[<p>New alpine route opened on the north face of Triglav.</p>]]></content:encoded>
	</item>
	<item>
		<title>Too short</title>
		<link>http://example.com/short</link>
		<description>Tiny text</description>
	</item>
	<item>
		<title></title>
		<link>http://example.com/untitled</link>
		<description>An entry without a title is useless for the homepage.</description>
	</item>
	<item>
		<title>No link</title>
		<description>An entry without a link cannot be shown on the homepage.</description>
	</item>
</channel>
</rss>`

func rssFetcher(sources ...config.RSSSource) *RSSFetcher {
	return NewRSSFetcher(RSSParams{Sources: sources, Timeout: 5 * time.Second, UserAgent: "test-agent", MinSummary: 20})
}

func TestRSSFetcher_FetchSource(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testRSS))
	}))
	defer ts.Close()

	f := rssFetcher()
	articles := f.FetchSource(context.Background(), config.RSSSource{Name: "Climbing", URL: ts.URL, Credibility: 0.9})
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "Janja Garnbret wins in Koper", first.Title)
	assert.Equal(t, "http://example.com/garnbret", first.URL)
	assert.Equal(t, "Slovenian climber Janja Garnbret took another lead world cup title.", first.Summary)
	assert.Equal(t, "Climbing", first.Source)
	assert.Equal(t, domain.SourceRSS, first.SourceType)
	assert.InDelta(t, 0.9, first.Credibility, 1e-9)
	assert.Equal(t, 2006, first.PublishedAt.Year())

	second := articles[1]
	assert.Equal(t, "New alpine route opened on the north face of Triglav.", second.Summary)
	assert.True(t, second.PublishedAt.IsZero(), "missing date stays unknown")
}

func TestRSSFetcher_BadFeeds(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "empty feed", handler: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>Empty</title></channel></rss>`))
		}},
		{name: "garbled", handler: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`this is <not> a feed`))
		}},
		{name: "server error", handler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			articles := rssFetcher().FetchSource(context.Background(), config.RSSSource{URL: ts.URL})
			assert.NotNil(t, articles)
			assert.Empty(t, articles)
		})
	}
}

func TestRSSFetcher_FetchAll(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testRSS))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer bad.Close()

	f := rssFetcher(
		config.RSSSource{Name: "bad", URL: bad.URL, Credibility: 0.5},
		config.RSSSource{Name: "good", URL: good.URL, Credibility: 0.9},
	)
	articles := f.FetchAll(context.Background())
	require.Len(t, articles, 2)
	for _, a := range articles {
		assert.Equal(t, "good", a.Source)
	}
}

func TestSourceName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"https://www.planetmountain.com/rss/rss.xml", "planetmountain"},
		{"https://gripped.com/feed/", "gripped"},
		{"https://www.pzs.si/rss.php", "pzs"},
		{"http://localhost:8080/feed", "localhost"},
		{"::bad", "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SourceName(tt.in), tt.in)
	}
}
