package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdtriglav/alpcontent/pkg/domain"
)

func TestDeduplicate_KeepsBestScored(t *testing.T) {
	s := testScorer()
	articles := s.ScoreRelevancy([]domain.Article{
		{Title: "Janja Garnbret wins Olympic gold in Paris!", URL: "https://api.example.com/1", SourceType: domain.SourceAPI,
			Credibility: 0.3, PublishedAt: testNow},
		{Title: "Janja Garnbret wins Olympic gold in Paris", URL: "https://rss.example.com/1", SourceType: domain.SourceRSS,
			Credibility: 0.9, PublishedAt: testNow},
		{Title: "Bouldering festival in Fontainebleau", URL: "https://rss.example.com/2", SourceType: domain.SourceRSS,
			Credibility: 0.9, PublishedAt: testNow},
	})
	require.GreaterOrEqual(t, TitleSimilarity(articles[0].Title, articles[1].Title), 0.8)

	res := Deduplicate(articles, 0.8)
	require.Len(t, res, 2)
	assert.Equal(t, "https://rss.example.com/1", res[0].URL)
	assert.Equal(t, domain.SourceRSS, res[0].SourceType)
	assert.Equal(t, "https://rss.example.com/2", res[1].URL)
}

func TestDeduplicate_Threshold(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		wantCount int
	}{
		{name: "exactly 0.8 is duplicate", a: "alpha beta gamma delta epsilon", b: "alpha beta gamma delta", wantCount: 1},
		{name: "below threshold kept", a: "alpha beta gamma delta epsilon", b: "alpha beta gamma zeta", wantCount: 2},
		{name: "case and punctuation ignored", a: "Ondra Sends Silence!", b: "ondra sends silence", wantCount: 1},
		{name: "different stories", a: "Everest permits rise", b: "New via ferrata in Dolomites", wantCount: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Deduplicate([]domain.Article{{Title: tt.a, Score: 2}, {Title: tt.b, Score: 1}}, 0.8)
			assert.Len(t, res, tt.wantCount)
			assert.Equal(t, tt.a, res[0].Title)
		})
	}
}

func TestDeduplicate_Idempotent(t *testing.T) {
	articles := []domain.Article{
		{Title: "Storm on Mont Blanc", Score: 3},
		{Title: "Storm on Mont Blanc massif", Score: 5},
		{Title: "Rescue on the Matterhorn", Score: 4},
		{Title: "Rescue on Matterhorn", Score: 4},
		{Title: "Gear review: new harnesses", Score: 1},
		{Title: "Same score tie", Score: 1},
	}
	once := Deduplicate(articles, 0.8)
	twice := Deduplicate(once, 0.8)
	assert.Equal(t, once, twice)

	for i := 1; i < len(once); i++ {
		assert.GreaterOrEqual(t, once[i-1].Score, once[i].Score)
	}
}

func TestDeduplicate_Empty(t *testing.T) {
	assert.Empty(t, Deduplicate(nil, 0.8))
	assert.InDelta(t, 0.0, TitleSimilarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, TitleSimilarity("K2 winter", "winter K2"), 1e-9)
}
