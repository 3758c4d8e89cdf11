// Package example is the demo host page: a User record, a small static
// dataset and the columns that present it.
package example

import (
	"html/template"
	"strings"

	"github.com/3-lines-studio/datatable"
)

const Heading = "Reusable table component"

type User struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Age   int    `json:"age" yaml:"age"`
}

func (u User) RowKey() string {
	return datatable.Key(u.ID)
}

var Users = []User{
	{ID: 1, Name: "John Doe", Email: "john@example.com", Age: 28},
	{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Age: 34},
	{ID: 3, Name: "Alice Johnson", Email: "alice@example.com", Age: 23},
}

var UserColumns = []datatable.Column[User]{
	{Key: "name", Header: "Name"},
	{Key: "email", Header: "Email"},
	{Key: "age", Header: "Age"},
}

var pageTemplate = template.Must(template.New("page").Parse(`<div class="container mx-auto p-4 mt-4">
  <h1 class="text-3xl text-center text-blue-400 font-bold underline mb-5">{{.Heading}}</h1>
  {{.Table}}
</div>
`))

// Page renders users into the demo page body.
func Page(users []User, opts ...datatable.Option) (template.HTML, error) {
	table, err := datatable.Render(users, UserColumns, opts...)
	if err != nil {
		return "", err
	}

	tableHTML, err := table.HTML()
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := pageTemplate.Execute(&buf, map[string]any{
		"Heading": Heading,
		"Table":   tableHTML,
	}); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
