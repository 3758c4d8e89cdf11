package site

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/3-lines-studio/datatable/internal/adapters/fs"
	httpadapter "github.com/3-lines-studio/datatable/internal/adapters/http"
	"github.com/3-lines-studio/datatable/internal/core"
)

const exportTimeout = 30 * time.Second

// ExportedPage is one file written by Export.
type ExportedPage struct {
	Path string
	File string
}

// Export renders every exportable page and writes it below dir.
// Routes whose pattern holds parameters are skipped unless they list
// concrete paths with WithExportPaths.
func (a *App) Export(ctx context.Context, fsys fs.FileSystem, dir string) ([]ExportedPage, error) {
	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	var pages []ExportedPage
	for _, route := range a.routes {
		config := buildPageConfig(route)

		paths := config.ExportPaths
		if len(paths) == 0 {
			if core.ValidateExportPath(route.Pattern) != nil {
				a.logger.Debug("skipping route without concrete path", "pattern", route.Pattern)
				continue
			}
			paths = []string{route.Pattern}
		}

		for _, p := range paths {
			if err := core.ValidateExportPath(p); err != nil {
				return pages, fmt.Errorf("invalid export path %q: %w", p, err)
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, p, nil)
			if err != nil {
				return pages, fmt.Errorf("failed to build request for %s: %w", p, err)
			}

			page, err := httpadapter.RenderPage(config, req)
			if err != nil {
				return pages, fmt.Errorf("failed to render %s: %w", p, err)
			}

			file := filepath.Join(dir, filepath.FromSlash(core.ExportFile(p)))
			if err := fsys.MkdirAll(filepath.Dir(file), 0o755); err != nil {
				return pages, fmt.Errorf("failed to create directory for %s: %w", file, err)
			}
			if err := fsys.WriteFile(file, []byte(page), 0o644); err != nil {
				return pages, fmt.Errorf("failed to write %s: %w", file, err)
			}

			pages = append(pages, ExportedPage{Path: core.NormalizePath(p), File: file})
		}
	}

	return pages, nil
}
