package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/sashabaranov/go-openai"

	"github.com/pdtriglav/alpcontent/pkg/config"
	"github.com/pdtriglav/alpcontent/pkg/metrics"
)

// RetryConfig controls per call retries of a gateway
type RetryConfig struct {
	Attempts int
	Delay    time.Duration
	MaxDelay time.Duration
	Timeout  time.Duration // per attempt
}

// OpenAIGateway talks to any OpenAI-compatible chat completion endpoint (Moonshot, DeepSeek, OpenAI, Ollama)
type OpenAIGateway struct {
	client *openai.Client
	cfg    config.ProviderConfig
	retry  RetryConfig
}

// NewOpenAIGateway creates a gateway for one configured provider
func NewOpenAIGateway(cfg config.ProviderConfig, retry RetryConfig) *OpenAIGateway {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if retry.Attempts < 1 {
		retry.Attempts = 1
	}
	if retry.Timeout == 0 {
		retry.Timeout = 30 * time.Second
	}
	clientConfig.HTTPClient = &http.Client{Timeout: retry.Timeout}

	return &OpenAIGateway{client: openai.NewClientWithConfig(clientConfig), cfg: cfg, retry: retry}
}

// Name returns provider name
func (g *OpenAIGateway) Name() string { return g.cfg.Name }

// Configured reports whether credentials and endpoint are present
func (g *OpenAIGateway) Configured() bool { return g.cfg.APIKey != "" && g.cfg.BaseURL != "" }

// CostPerToken returns approximate cost per token
func (g *OpenAIGateway) CostPerToken() float64 { return g.cfg.CostPerToken }

// FallbackContent returns static content for the use case
func (g *OpenAIGateway) FallbackContent(useCase UseCase) Payload { return DefaultFallback(useCase) }

// ChatCompletion sends messages with exponential backoff retries on timeouts, 5xx/429 responses and
// malformed bodies. Client errors and missing credentials fail immediately.
func (g *OpenAIGateway) ChatCompletion(ctx context.Context, msgs []Message, opts Options) (Payload, error) {
	if !g.Configured() {
		return nil, fmt.Errorf("%s: %w", g.cfg.Name, ErrNotConfigured)
	}

	req := g.makeRequest(msgs, opts)
	started := time.Now()
	defer func() { metrics.ProviderLatency.WithLabelValues(g.cfg.Name).Observe(time.Since(started).Seconds()) }()

	var result Payload
	var fatalErr error
	attempt := 0
	retrier := repeater.NewBackoff(g.retry.Attempts, g.retry.Delay, repeater.WithMaxDelay(g.retry.MaxDelay))
	err := retrier.Do(ctx, func() error {
		attempt++
		payload, err := g.complete(ctx, req, opts.JSON)
		if err == nil {
			result = payload
			return nil
		}
		if !isRetryable(ctx, err) {
			fatalErr = err
			return nil // stop retrying, reported below
		}
		log.Printf("[DEBUG] %s attempt %d/%d failed: %v", g.cfg.Name, attempt, g.retry.Attempts, err)
		return err
	})

	switch {
	case fatalErr != nil:
		metrics.ProviderCalls.WithLabelValues(g.cfg.Name, "error").Inc()
		return nil, fmt.Errorf("%s chat completion: %w", g.cfg.Name, fatalErr)
	case err != nil:
		metrics.ProviderCalls.WithLabelValues(g.cfg.Name, "error").Inc()
		return nil, fmt.Errorf("%s chat completion failed after %d attempts: %w", g.cfg.Name, attempt, err)
	}
	metrics.ProviderCalls.WithLabelValues(g.cfg.Name, "ok").Inc()
	return result, nil
}

// TestConnection performs a minimal round trip and expects the echo payload
func (g *OpenAIGateway) TestConnection(ctx context.Context) bool {
	if !g.Configured() {
		return false
	}
	msgs := []Message{
		SystemMessage("You are a test assistant. Respond with valid JSON."),
		UserMessage(`Respond with JSON: {"status": "ok", "message": "test successful"}`),
	}
	resp, err := g.complete(ctx, g.makeRequest(msgs, Options{JSON: true, MaxTokens: 50}), true)
	if err != nil {
		log.Printf("[WARN] %s connection test failed: %v", g.cfg.Name, err)
		return false
	}
	return resp.String("status") == "ok"
}

func (g *OpenAIGateway) makeRequest(msgs []Message, opts Options) openai.ChatCompletionRequest {
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = g.cfg.Temperature
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = g.cfg.MaxTokens
	}

	req := openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(msgs)),
	}
	for _, m := range msgs {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	// add JSON response format unless the provider is known not to support it
	if opts.JSON && (g.cfg.JSONMode == nil || *g.cfg.JSONMode) {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}
	return req
}

func (g *OpenAIGateway) complete(ctx context.Context, req openai.ChatCompletionRequest, asJSON bool) (Payload, error) {
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", errMalformed)
	}

	content := resp.Choices[0].Message.Content
	if !asJSON {
		return Payload{"content": content}, nil
	}
	return parsePayload(content)
}

// isRetryable reports whether a failed attempt may succeed when repeated
func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, ErrNotConfigured) {
		return false
	}
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}
	if status == 0 {
		return true // transport error, timeout or malformed body
	}
	return status >= 500 || status == http.StatusTooManyRequests || status == http.StatusRequestTimeout
}
