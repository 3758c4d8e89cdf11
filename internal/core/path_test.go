package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/", NormalizePath(""))
	assert.Equal(t, "/", NormalizePath("/"))
	assert.Equal(t, "/users", NormalizePath("users/"))
	assert.Equal(t, "/users/active", NormalizePath("/users/active/"))
}

func TestValidateExportPath(t *testing.T) {
	valid := []string{"/", "/users", "/users/active"}
	for _, p := range valid {
		assert.NoError(t, ValidateExportPath(p), p)
	}

	invalid := []string{"", "users", "/users?page=2", "/a#b", "/../etc", "/files/*", "/users/{id}", "/{$}"}
	for _, p := range invalid {
		assert.Error(t, ValidateExportPath(p), p)
	}
}

func TestExportFile(t *testing.T) {
	assert.Equal(t, "index.html", ExportFile("/"))
	assert.Equal(t, "users/index.html", ExportFile("/users"))
	assert.Equal(t, "users/active/index.html", ExportFile("/users/active/"))
}
