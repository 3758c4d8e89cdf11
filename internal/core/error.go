package core

import (
	"html/template"
	"net/http"
)

type ErrorData struct {
	Status  int
	Message string
	IsDev   bool
}

func (d ErrorData) Title() string {
	if text := http.StatusText(d.Status); text != "" {
		return text
	}
	return "Error"
}

// ErrorTemplate is served when a page loader or a table render pass fails.
// Details are shown only in dev mode.
var ErrorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Status}} {{.Title}} | ` + DefaultTitle + `</title>
    ` + string(TailwindScript) + `
</head>
<body>
    <div class="container mx-auto p-4 mt-4">
        <h1 class="text-2xl font-bold text-red-600">{{.Status}} {{.Title}}</h1>
        <p class="mt-2">The table on this page could not be rendered.</p>
        {{- if .IsDev}}
        <p class="mt-4 text-sm text-gray-600">Render error (shown because DATATABLE_DEV is set):</p>
        <pre class="border p-4 mt-2 bg-gray-100 whitespace-pre-wrap">{{.Message}}</pre>
        {{- else}}
        <p class="mt-4 text-sm text-gray-600">Check the server log for the failing column or row.</p>
        {{- end}}
        <p class="mt-4"><a class="text-blue-600 underline" href="/">Back to the table</a></p>
    </div>
</body>
</html>`))
