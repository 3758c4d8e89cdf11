package types

import (
	"html/template"
	"net/http"
)

// ContentLoader produces the body of a page for one request.
type ContentLoader func(*http.Request) (template.HTML, error)

type PageConfig struct {
	Title       string
	Head        template.HTML
	Loader      ContentLoader
	ExportPaths []string
}

type PageOption func(*PageConfig)

func WithTitle(title string) PageOption {
	return func(c *PageConfig) {
		c.Title = title
	}
}

// WithHead appends markup to the document head.
func WithHead(head template.HTML) PageOption {
	return func(c *PageConfig) {
		c.Head += head
	}
}

// WithExportPaths lists the request paths written by an export. Routes
// without it export their own pattern when that is a concrete path.
func WithExportPaths(paths ...string) PageOption {
	return func(c *PageConfig) {
		c.ExportPaths = append(c.ExportPaths, paths...)
	}
}
