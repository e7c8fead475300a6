package news

import (
	"sort"
	"strings"
	"time"

	"github.com/pdtriglav/alpcontent/pkg/config"
	"github.com/pdtriglav/alpcontent/pkg/domain"
)

type keywordWeight struct {
	term   string
	weight float64
}

// Scorer computes relevance scores. Every component is non-negative, so the score never drops
// when a keyword or locale term is added to the text.
type Scorer struct {
	keywords    []keywordWeight
	localeTerms []string
	localeBoost float64
	sourceBonus map[domain.SourceType]float64
	freshBonus  float64 // younger than 24h
	recentBonus float64 // younger than 48h
	now         func() time.Time
}

// NewScorer makes a scorer from the scoring tables
func NewScorer(cfg config.ScoringConfig) *Scorer {
	s := &Scorer{
		localeBoost: nonNegative(cfg.LocaleBoost),
		sourceBonus: map[domain.SourceType]float64{},
		freshBonus:  nonNegative(cfg.FreshBonus),
		recentBonus: nonNegative(cfg.RecentBonus),
		now:         time.Now,
	}
	for term, w := range cfg.Keywords {
		if w <= 0 || strings.TrimSpace(term) == "" {
			continue
		}
		s.keywords = append(s.keywords, keywordWeight{term: strings.ToLower(term), weight: w})
	}
	sort.Slice(s.keywords, func(i, j int) bool { return s.keywords[i].term < s.keywords[j].term })

	for _, term := range cfg.LocaleTerms {
		if term = strings.ToLower(strings.TrimSpace(term)); term != "" {
			s.localeTerms = append(s.localeTerms, term)
		}
	}
	for st, bonus := range cfg.SourceBonus {
		s.sourceBonus[domain.SourceType(st)] = nonNegative(bonus)
	}
	return s
}

// Score returns the relevance score of one article and whether it mentions a locale term
func (s *Scorer) Score(a domain.Article) (score float64, locale bool) {
	text := strings.ToLower(a.Title + " " + a.Summary)

	score = 2*clamp01(a.Credibility) + s.sourceBonus[a.SourceType]
	for _, kw := range s.keywords {
		if strings.Contains(text, kw.term) {
			score += kw.weight
		}
	}
	for _, term := range s.localeTerms {
		if strings.Contains(text, term) {
			locale = true
			score += s.localeBoost
			break
		}
	}

	if !a.PublishedAt.IsZero() {
		switch age := s.now().Sub(a.PublishedAt); {
		case age < 24*time.Hour:
			score += s.freshBonus
		case age < 48*time.Hour:
			score += s.recentBonus
		}
	}
	return score, locale
}

// ScoreRelevancy returns a copy of articles with Score and Locale set
func (s *Scorer) ScoreRelevancy(articles []domain.Article) []domain.Article {
	res := make([]domain.Article, len(articles))
	for i, a := range articles {
		a.Score, a.Locale = s.Score(a)
		res[i] = a
	}
	return res
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
