package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdtriglav/alpcontent/pkg/config"
)

func completionHandler(t *testing.T, content string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: content}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func testGateway(url string) *OpenAIGateway {
	return NewOpenAIGateway(
		config.ProviderConfig{Name: "test", APIKey: "test-key", BaseURL: url + "/v1", Model: "test-model", Temperature: 0.3, MaxTokens: 100},
		RetryConfig{Attempts: 3, Delay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Timeout: 5 * time.Second},
	)
}

func TestOpenAIGateway_ChatCompletion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Payload
	}{
		{name: "plain json", content: `{"title": "Everest", "year": 1953}`, want: Payload{"title": "Everest", "year": float64(1953)}},
		{name: "fenced json", content: "```json\n{\"title\": \"Eiger\"}\n```", want: Payload{"title": "Eiger"}},
		{name: "prose around json", content: "Here you go:\n{\"title\": \"K2\"}\nEnjoy", want: Payload{"title": "K2"}},
		{name: "wrapped string response", content: `{"response": "{\"title\": \"Annapurna\"}", "status": "success"}`,
			want: Payload{"title": "Annapurna"}},
		{name: "wrapped object response", content: `{"response": {"title": "Nanga Parbat"}, "status": "success"}`,
			want: Payload{"title": "Nanga Parbat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(completionHandler(t, tt.content))
			defer ts.Close()

			res, err := testGateway(ts.URL).ChatCompletion(context.Background(), []Message{UserMessage("hi")}, Options{JSON: true})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestOpenAIGateway_RequestShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.InDelta(t, 0.7, req.Temperature, 1e-6)
		assert.Equal(t, 100, req.MaxTokens)
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, req.ResponseFormat.Type)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		completionHandler(t, `{"ok": true}`)(w, r)
	}))
	defer ts.Close()

	msgs := []Message{SystemMessage("sys"), UserMessage("user")}
	_, err := testGateway(ts.URL).ChatCompletion(context.Background(), msgs, Options{JSON: true, Temperature: 0.7})
	require.NoError(t, err)
}

func TestOpenAIGateway_PlainText(t *testing.T) {
	ts := httptest.NewServer(completionHandler(t, "just text"))
	defer ts.Close()

	res, err := testGateway(ts.URL).ChatCompletion(context.Background(), []Message{UserMessage("hi")}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "just text", res.String("content"))
}

func TestOpenAIGateway_Retries(t *testing.T) {
	t.Run("server error then success", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			completionHandler(t, `{"title": "Matterhorn"}`)(w, r)
		}))
		defer ts.Close()

		res, err := testGateway(ts.URL).ChatCompletion(context.Background(), []Message{UserMessage("hi")}, Options{JSON: true})
		require.NoError(t, err)
		assert.Equal(t, "Matterhorn", res.String("title"))
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("malformed body retried and exhausted", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			completionHandler(t, "not json at all")(w, r)
		}))
		defer ts.Close()

		_, err := testGateway(ts.URL).ChatCompletion(context.Background(), []Message{UserMessage("hi")}, Options{JSON: true})
		require.Error(t, err)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("unauthorized is not retried", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": {"message": "bad key", "type": "auth"}}`))
		}))
		defer ts.Close()

		_, err := testGateway(ts.URL).ChatCompletion(context.Background(), []Message{UserMessage("hi")}, Options{JSON: true})
		require.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("canceled context", func(t *testing.T) {
		ts := httptest.NewServer(completionHandler(t, `{"a": 1}`))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := testGateway(ts.URL).ChatCompletion(ctx, []Message{UserMessage("hi")}, Options{JSON: true})
		require.Error(t, err)
	})
}

func TestOpenAIGateway_NotConfigured(t *testing.T) {
	g := NewOpenAIGateway(config.ProviderConfig{Name: "empty", BaseURL: "http://localhost:1/v1"}, RetryConfig{Attempts: 3})
	assert.False(t, g.Configured())

	_, err := g.ChatCompletion(context.Background(), []Message{UserMessage("hi")}, Options{})
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, g.TestConnection(context.Background()))
}

func TestOpenAIGateway_TestConnection(t *testing.T) {
	t.Run("echo ok", func(t *testing.T) {
		ts := httptest.NewServer(completionHandler(t, `{"status": "ok", "message": "test successful"}`))
		defer ts.Close()
		assert.True(t, testGateway(ts.URL).TestConnection(context.Background()))
	})

	t.Run("unexpected echo", func(t *testing.T) {
		ts := httptest.NewServer(completionHandler(t, `{"status": "nope"}`))
		defer ts.Close()
		assert.False(t, testGateway(ts.URL).TestConnection(context.Background()))
	})

	t.Run("server down", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()
		assert.False(t, testGateway(ts.URL).TestConnection(context.Background()))
	})
}

func TestOpenAIGateway_Accessors(t *testing.T) {
	g := NewOpenAIGateway(config.ProviderConfig{Name: "moonshot", APIKey: "k", BaseURL: "http://x/v1", CostPerToken: 0.00001}, RetryConfig{})
	assert.Equal(t, "moonshot", g.Name())
	assert.True(t, g.Configured())
	assert.InDelta(t, 0.00001, g.CostPerToken(), 1e-12)
	assert.Equal(t, "First Ascent of Mount Everest", g.FallbackContent(UseCaseHistorical).String("title"))
	assert.Equal(t, "Mountaineering News Unavailable", g.FallbackContent(UseCaseNews).String("title"))
}
