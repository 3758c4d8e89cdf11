package http

import (
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/3-lines-studio/datatable/internal/types"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestHandlerWithLoader(t *testing.T) {
	t.Run("page with loader succeeds", func(t *testing.T) {
		handler := NewPageHandler(
			types.PageConfig{
				Title: "Users",
				Loader: func(*http.Request) (template.HTML, error) {
					return "<table></table>", nil
				},
			},
			false,
			quietLogger,
		)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Errorf("Expected HTML content type, got %s", ct)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `<div id="app"><table></table></div>`) {
			t.Errorf("Expected body in app root, got %s", body)
		}
		if !strings.Contains(body, "<title>Users</title>") {
			t.Errorf("Expected title, got %s", body)
		}
	})

	t.Run("loader receives the request", func(t *testing.T) {
		var gotPath string
		handler := NewPageHandler(
			types.PageConfig{
				Loader: func(r *http.Request) (template.HTML, error) {
					gotPath = r.URL.Path
					return "ok", nil
				},
			},
			false,
			nil,
		)

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users", nil))

		if gotPath != "/users" {
			t.Errorf("Expected /users, got %q", gotPath)
		}
	})
}

func TestHandlerErrors(t *testing.T) {
	failing := func(*http.Request) (template.HTML, error) {
		return "", errors.New("unknown column: \"phone\"")
	}

	t.Run("loader error in dev mode shows message", func(t *testing.T) {
		handler := NewPageHandler(types.PageConfig{Loader: failing}, true, quietLogger)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "unknown column: &#34;phone&#34;") {
			t.Errorf("Expected escaped error message, got %s", rec.Body.String())
		}
	})

	t.Run("loader error in prod mode hides message", func(t *testing.T) {
		handler := NewPageHandler(types.PageConfig{Loader: failing}, false, quietLogger)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "phone") {
			t.Error("Expected error details to be hidden")
		}
	})

	t.Run("nil loader returns 500", func(t *testing.T) {
		handler := NewPageHandler(types.PageConfig{}, true, quietLogger)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", rec.Code)
		}
	})

	t.Run("empty body returns 500", func(t *testing.T) {
		handler := NewPageHandler(types.PageConfig{
			Loader: func(*http.Request) (template.HTML, error) { return "", nil },
		}, true, quietLogger)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", rec.Code)
		}
	})
}
