package news

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/pdtriglav/alpcontent/pkg/domain"
)

// Deduplicate sorts articles by score and drops every article whose title is at least threshold
// similar (word Jaccard) to a title already kept, so the best scored copy of a story survives.
// Running it on its own output returns the same list.
func Deduplicate(articles []domain.Article, threshold float64) []domain.Article {
	sorted := slices.Clone(articles)
	slices.SortStableFunc(sorted, func(a, b domain.Article) int { return cmp.Compare(b.Score, a.Score) })

	res := make([]domain.Article, 0, len(sorted))
	kept := make([]map[string]struct{}, 0, len(sorted))
	for _, a := range sorted {
		tokens := titleTokens(a.Title)
		duplicate := false
		for _, k := range kept {
			if jaccard(tokens, k) >= threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		kept = append(kept, tokens)
		res = append(res, a)
	}
	return res
}

// TitleSimilarity is the word level Jaccard similarity of two titles
func TitleSimilarity(a, b string) float64 {
	return jaccard(titleTokens(a), titleTokens(b))
}

func titleTokens(title string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	res := make(map[string]struct{}, len(words))
	for _, w := range words {
		res[w] = struct{}{}
	}
	return res
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	return float64(inter) / float64(len(a)+len(b)-inter)
}
