package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		maxLength int
		want      string
	}{
		{
			name:      "Plain short text unchanged",
			content:   "Just a plain sentence.",
			maxLength: 160,
			want:      "Just a plain sentence.",
		},
		{
			name:      "Strips markdown syntax",
			content:   "# Title\n\nSome **bold** text with a [link](https://example.com) and `code`.\n\n> quote line\n- item one",
			maxLength: 160,
			want:      "Title Some bold text with a link and code. quote line item one",
		},
		{
			name:      "Drops fenced code blocks entirely",
			content:   "Before\n\n```go\nfunc main() {}\n```\n\nAfter",
			maxLength: 160,
			want:      "Before After",
		},
		{
			name:      "Keeps link text without url",
			content:   "Read [the docs](https://go.dev/doc) first",
			maxLength: 160,
			want:      "Read the docs first",
		},
		{
			name:      "Collapses newlines into spaces",
			content:   "line one\n\n\nline two",
			maxLength: 160,
			want:      "line one line two",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Excerpt(tt.content, tt.maxLength)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExcerpt_Truncates(t *testing.T) {
	content := strings.Repeat("word ", 100)

	got := Excerpt(content, 50)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), 53)
	assert.NotContains(t, got, "\n")
}

func TestExcerpt_DefaultLength(t *testing.T) {
	content := strings.Repeat("word ", 100)

	got := Excerpt(content, 0)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), DefaultExcerptLength+3)
}

func TestTruncateAtWord(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{
			name:      "Within bound unchanged",
			input:     "hello world",
			maxLength: 20,
			want:      "hello world",
		},
		{
			name:      "Cuts back to word boundary",
			input:     "hello world foo bar",
			maxLength: 13,
			want:      "hello world...",
		},
		{
			name:      "No space inside bound",
			input:     "abcdefghijklmnop",
			maxLength: 5,
			want:      "abcde...",
		},
		{
			name:      "Multibyte runes stay intact",
			input:     "xin chào các bạn thân mến",
			maxLength: 10,
			want:      "xin chào...",
		},
		{
			name:      "Empty string",
			input:     "",
			maxLength: 10,
			want:      "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateAtWord(tt.input, tt.maxLength)
			assert.Equal(t, tt.want, got)
		})
	}
}
