package example

import (
	"html/template"
	"net/http"

	"github.com/3-lines-studio/datatable"
	"github.com/3-lines-studio/datatable/internal/site"
)

const description = template.HTML(`<meta name="description" content="Users rendered with the datatable component">`)

// Routes mounts the users page at "/".
func Routes(users []User, title string, opts ...datatable.Option) []site.Route {
	if title == "" {
		title = Heading
	}

	return []site.Route{
		site.Page("/", func(*http.Request) (template.HTML, error) {
			return Page(users, opts...)
		},
			site.WithTitle(title),
			site.WithHead(description),
			site.WithTailwind(),
			site.WithExportPaths("/"),
		),
	}
}
