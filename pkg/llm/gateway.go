// Package llm wraps OpenAI-compatible chat completion backends behind a common gateway
// and chains them with per use case priority and static fallback content.
package llm

import (
	"context"
	"errors"
	"strings"
)

//go:generate moq -out mocks/gateway.go -pkg mocks -skip-ensure -fmt goimports . Gateway

// ErrNotConfigured is returned by a gateway without credentials, it is never retried
var ErrNotConfigured = errors.New("provider not configured")

// UseCase names a consumer context which determines provider order
type UseCase string

const (
	UseCaseHistorical UseCase = "historical"
	UseCaseNews       UseCase = "news"
)

// Message is a single chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SystemMessage makes a system role message
func SystemMessage(content string) Message { return Message{Role: "system", Content: content} }

// UserMessage makes a user role message
func UserMessage(content string) Message { return Message{Role: "user", Content: content} }

// Options tune a single completion call, zero values mean provider defaults
type Options struct {
	Temperature float64
	MaxTokens   int
	JSON        bool // request and parse a JSON object
}

// Payload is a structured completion result
type Payload map[string]any

// String returns a trimmed string field or empty string
func (p Payload) String(key string) string {
	if v, ok := p[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// Gateway is a uniform interface over one LLM backend
type Gateway interface {
	Name() string
	Configured() bool
	ChatCompletion(ctx context.Context, msgs []Message, opts Options) (Payload, error)
	TestConnection(ctx context.Context) bool
	FallbackContent(useCase UseCase) Payload
	CostPerToken() float64
}
