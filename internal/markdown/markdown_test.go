package markdown

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		src  string
		want template.HTML
	}{
		{src: "plain", want: "plain"},
		{src: "**bold**", want: "<strong>bold</strong>"},
		{src: "[site](https://example.com)", want: `<a href="https://example.com">site</a>`},
		{src: "~~gone~~", want: "<del>gone</del>"},
		{src: "one\n\ntwo", want: "<p>one</p>\n<p>two</p>"},
	}

	for _, tt := range tests {
		got, err := Render(tt.src)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "source %q", tt.src)
	}
}

func TestRenderHighlightsCode(t *testing.T) {
	got, err := Render("```go\nfunc main() {}\n```")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(got), `class="chroma"`), "got %s", got)
}
