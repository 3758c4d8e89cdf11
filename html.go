package datatable

import (
	"bytes"
	"html/template"
	"io"
)

var tableTemplate = template.Must(template.New("datatable").Parse(`<div class="overflow-x-auto">
  <table class="min-w-full bg-white">
    <thead>
      <tr class="bg-gray-200 text-left">
{{- range .Header}}
        <th class="border p-4">{{.Label}}</th>
{{- end}}
      </tr>
    </thead>
    <tbody>
{{- range .Rows}}
      <tr class="border p-4 hover:bg-gray-100" data-key="{{.Key}}">
{{- range .Cells}}
        <td class="border p-4">{{.Content}}</td>
{{- end}}
      </tr>
{{- end}}
    </tbody>
  </table>
</div>
`))

// WriteHTML writes the table markup to w.
func (t *Table) WriteHTML(w io.Writer) error {
	return tableTemplate.Execute(w, t)
}

// HTML returns the table markup.
func (t *Table) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.WriteHTML(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
