package news

import (
	"context"
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/llm"
)

// TranslationFailed is the Slovenian summary stored when the llm could not summarize an article
const TranslationFailed = "(Prevajanje ni uspelo)"

const editorialSystem = "You are a helpful assistant for a mountaineering website. Respond with valid JSON."

const editorialPrompt = `Analyze the following article title and summary:
Title: %s
Summary: %s

Your task is to:
1. Write a concise, engaging 2-sentence summary in English.
2. Provide a professional Slovenian translation of that summary.

Your response MUST be a JSON object with two keys: "summary_en" and "summary_sl".`

// Completer is the llm manager used for editorial summaries
type Completer interface {
	ChatCompletionWithFallback(ctx context.Context, msgs []llm.Message, useCase llm.UseCase, opts llm.Options) llm.Result
}

// summarize adds an English summary and its Slovenian translation to every article.
// An article the llm could not handle keeps its own summary in English and a failure note in Slovenian.
func (a *Aggregator) summarize(ctx context.Context, articles []domain.Article) []domain.Article {
	if a.editor == nil {
		return articles
	}
	opts := llm.Options{Temperature: a.cfg.Editorial.Temperature, MaxTokens: a.cfg.Editorial.MaxTokens, JSON: true}
	for i, art := range articles {
		if ctx.Err() != nil {
			articles[i].SummaryEN, articles[i].SummarySL = art.Summary, TranslationFailed
			continue
		}
		msgs := []llm.Message{
			llm.SystemMessage(editorialSystem),
			llm.UserMessage(fmt.Sprintf(editorialPrompt, art.Title, art.Summary)),
		}
		res := a.editor.ChatCompletionWithFallback(ctx, msgs, llm.UseCaseNews, opts)
		en, sl := res.Payload.String("summary_en"), res.Payload.String("summary_sl")
		if res.UsedFallback() || en == "" || sl == "" {
			log.Printf("[WARN] no editorial summary for %q, provider %s", art.Title, res.Provider)
			en, sl = art.Summary, TranslationFailed
		}
		articles[i].SummaryEN, articles[i].SummarySL = en, sl
	}
	return articles
}
