package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Winter on Triglav</title></head>
<body>
	<nav><a href="/">Home</a> <a href="/news">News</a></nav>
	<article>
		<h1>Winter ascent of the Triglav north face</h1>
		<p>Two members of the club climbed the Slovenian route on the north face of Triglav in full winter conditions last weekend.</p>
		<p>The team started from the Aljažev dom hut before dawn and reached the summit in eleven hours, descending by the Tominšek path.</p>
		<p>Conditions were demanding with fresh snow on the upper slabs and strong wind on the summit ridge.</p>
	</article>
	<footer>Copyright club</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		statusCode  int
		wantContent string
		wantErr     string
	}{
		{name: "article text", body: articlePage, statusCode: http.StatusOK, wantContent: "Slovenian route on the north face"},
		{name: "server error", body: "error", statusCode: http.StatusInternalServerError, wantErr: "unexpected status code 500"},
		{name: "not found", body: "not found", statusCode: http.StatusNotFound, wantErr: "unexpected status code 404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			text, err := NewExtractor(5*time.Second, "test-agent").Extract(context.Background(), ts.URL+"/article")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, text, tt.wantContent)
		})
	}
}

func TestExtractor_InvalidURL(t *testing.T) {
	e := NewExtractor(time.Second, "")
	for _, u := range []string{"not a url", "/relative/path", "://missing"} {
		_, err := e.Extract(context.Background(), u)
		require.Error(t, err, u)
	}
}

func TestExtractor_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(articlePage))
	}))
	defer ts.Close()

	_, err := NewExtractor(50*time.Millisecond, "").Extract(context.Background(), ts.URL)
	require.Error(t, err)
}
