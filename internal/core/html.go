package core

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

const DefaultTitle = "Datatable"

// TailwindScript is the script tag that provides the utility classes the
// table markup uses.
const TailwindScript = `<script src="https://cdn.tailwindcss.com"></script>`

type ShellData struct {
	Title string
	Head  template.HTML
	Body  template.HTML
}

var shellTemplate = template.Must(template.New("shell").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
{{- if .Title}}
    <title>{{.Title}}</title>
{{- end}}
{{- if .Head}}
    {{.Head}}
{{- end}}
  </head>
  <body>
    <div id="app">{{.Body}}</div>
  </body>
</html>
`))

// RenderHTMLShell wraps bodyHTML in a full document. When headHTML already
// carries a <title>, title is dropped.
func RenderHTMLShell(bodyHTML template.HTML, title string, headHTML template.HTML) (string, error) {
	if bodyHTML == "" {
		return "", fmt.Errorf("missing page body")
	}

	if title == "" {
		title = DefaultTitle
	}
	if strings.Contains(strings.ToLower(string(headHTML)), "<title") {
		title = ""
	}

	var buf bytes.Buffer
	if err := shellTemplate.Execute(&buf, ShellData{
		Title: title,
		Head:  headHTML,
		Body:  bodyHTML,
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
