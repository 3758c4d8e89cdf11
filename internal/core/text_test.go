package core

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   template.HTML
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "&lt;b&gt; &amp; co", want: "<b> & co"},
		{in: "<em>Ann</em> <strong>Lee</strong>", want: "Ann Lee"},
		{in: "<p>\n  spaced\n</p>", want: "spaced"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PlainText(tt.in), "input %q", tt.in)
	}
}
