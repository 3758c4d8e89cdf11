package http

import (
	"bytes"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"time"

	"github.com/3-lines-studio/datatable/internal/core"
	"github.com/3-lines-studio/datatable/internal/types"
)

type PageHandler struct {
	config types.PageConfig
	isDev  bool
	logger *slog.Logger
}

func NewPageHandler(config types.PageConfig, isDev bool, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		config: config,
		isDev:  isDev,
		logger: logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()

	page, err := RenderPage(h.config, req)
	if err != nil {
		h.logger.Error("page render failed", "path", req.URL.Path, "error", err)
		h.serveError(w, err)
		return
	}

	h.logger.Debug("page render timing", "path", req.URL.Path, "duration", time.Since(start))
	h.serveHTML(w, page)
}

// RenderPage runs the page loader for req and wraps the result in the
// document shell.
func RenderPage(config types.PageConfig, req *http.Request) (string, error) {
	if config.Loader == nil {
		return "", fmt.Errorf("page has no content loader")
	}

	body, err := config.Loader(req)
	if err != nil {
		return "", fmt.Errorf("failed to load page content: %w", err)
	}

	return core.RenderHTMLShell(body, config.Title, config.Head)
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

func (h *PageHandler) serveError(w http.ResponseWriter, err error) {
	data := core.ErrorData{
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
