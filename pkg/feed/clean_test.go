package feed

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCleaner_Clean(t *testing.T) {
	c := NewCleaner(300)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "strip tags", in: "<p>Janja <b>Garnbret</b> wins again</p>", want: "Janja Garnbret wins again"},
		{name: "paragraphs separated", in: "<p>First part.</p><p>Second part.</p>", want: "First part. Second part."},
		{name: "entities", in: "Ropes &amp; harnesses &#8211; a review", want: "Ropes & harnesses – a review"},
		{name: "appeared first on footer", in: "<p>Great climb on the Eiger.</p><p>The post Eiger North Face appeared first on Gripped Magazine.</p>",
			want: "Great climb on the Eiger."},
		{name: "continue reading", in: "New route in the Julian Alps. Continue reading <a href='x'>here</a>", want: "New route in the Julian Alps."},
		{name: "read more link", in: "Bouldering world cup results. Read more »", want: "Bouldering world cup results."},
		{name: "bracket ellipsis", in: "Expedition reached camp three [&hellip;]", want: "Expedition reached camp three"},
		{name: "whitespace", in: "  many \n\n\t spaces  ", want: "many spaces"},
		{name: "script removed", in: "<script>alert(1)</script>Safe text", want: "Safe text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Clean(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		assert.Equal(t, "Short.", Truncate("Short.", 300))
	})

	t.Run("sentence boundary", func(t *testing.T) {
		text := strings.Repeat("a", 200) + ". " + strings.Repeat("b", 200)
		got := Truncate(text, 300)
		assert.Equal(t, strings.Repeat("a", 200)+".", got)
	})

	t.Run("word boundary when sentence too early", func(t *testing.T) {
		text := "Hi. " + strings.Repeat("word ", 100)
		got := Truncate(text, 50)
		assert.True(t, strings.HasSuffix(got, "word..."), got)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), 53)
	})

	t.Run("multibyte runes", func(t *testing.T) {
		text := strings.Repeat("č", 400)
		got := Truncate(text, 300)
		assert.Equal(t, 303, utf8.RuneCountInString(got))
		assert.True(t, utf8.ValidString(got))
	})
}
