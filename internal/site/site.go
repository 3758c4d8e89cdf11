// Package site mounts rendered pages on an HTTP router.
package site

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/3-lines-studio/datatable/internal/adapters/env"
	httpadapter "github.com/3-lines-studio/datatable/internal/adapters/http"
	"github.com/3-lines-studio/datatable/internal/core"
	"github.com/3-lines-studio/datatable/internal/types"
)

type PageOption = types.PageOption

type ContentLoader = types.ContentLoader

type Route struct {
	Pattern string
	Loader  ContentLoader
	Options []PageOption
}

type App struct {
	routes []Route
	isDev  bool
	logger *slog.Logger
}

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

type AppOption func(*App)

func WithLogger(logger *slog.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithDev overrides the mode read from DATATABLE_DEV.
func WithDev(dev bool) AppOption {
	return func(a *App) {
		a.isDev = dev
	}
}

func New(routes []Route, opts ...AppOption) *App {
	app := &App{
		routes: routes,
		isDev:  env.DetectMode() == env.ModeDev,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

func Page(pattern string, loader ContentLoader, opts ...PageOption) Route {
	return Route{
		Pattern: pattern,
		Loader:  loader,
		Options: opts,
	}
}

func WithTitle(title string) PageOption {
	return types.WithTitle(title)
}

func WithHead(head template.HTML) PageOption {
	return types.WithHead(head)
}

func WithExportPaths(paths ...string) PageOption {
	return types.WithExportPaths(paths...)
}

// Wrap registers every page on api and returns it.
func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("site: nil router passed to Wrap; use app.Handler()")
	}

	for _, route := range a.routes {
		handler := httpadapter.NewPageHandler(buildPageConfig(route), a.isDev, a.logger)
		if core.ValidateExportPath(route.Pattern) == nil {
			handler = exactPath(route.Pattern, handler)
		}
		api.Handle(route.Pattern, handler)
	}

	return api
}

// exactPath answers 404 for any path other than pattern.
func exactPath(pattern string, next http.Handler) http.Handler {
	want := core.NormalizePath(pattern)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if core.NormalizePath(r.URL.Path) != want {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *App) Handler() http.Handler {
	return a.Wrap(http.NewServeMux())
}

func buildPageConfig(route Route) types.PageConfig {
	config := types.PageConfig{Loader: route.Loader}
	for _, opt := range route.Options {
		opt(&config)
	}
	return config
}

// WithTailwind loads the utility classes used by the table markup.
func WithTailwind() PageOption {
	return types.WithHead(core.TailwindScript)
}
