package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// ValidateExportPath checks that p is a concrete request path that can be
// written to disk.
func ValidateExportPath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.ContainsAny(p, "?#") {
		return fmt.Errorf("path cannot contain query string or fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.ContainsAny(p, "*{}") {
		return fmt.Errorf("path cannot contain wildcards or parameters")
	}

	return nil
}

// ExportFile maps a request path to the file that holds its HTML:
// "/" -> "index.html", "/users" -> "users/index.html".
func ExportFile(requestPath string) string {
	p := NormalizePath(requestPath)
	if p == "/" {
		return "index.html"
	}
	return path.Join(strings.TrimPrefix(p, "/"), "index.html")
}
