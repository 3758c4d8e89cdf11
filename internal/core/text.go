package core

import (
	"html/template"
	"strings"

	"golang.org/x/net/html"
)

// PlainText returns the text of an HTML fragment with tags dropped and
// entities decoded.
func PlainText(fragment template.HTML) string {
	if !strings.ContainsAny(string(fragment), "<&") {
		return string(fragment)
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(string(fragment)))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
