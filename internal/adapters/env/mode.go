package env

import (
	"os"
	"strconv"
)

type Mode int

const (
	ModeProd Mode = iota
	ModeDev
)

// DetectMode reads DATATABLE_DEV. Dev mode shows error details on pages.
func DetectMode() Mode {
	if dev, err := strconv.ParseBool(os.Getenv("DATATABLE_DEV")); err == nil && dev {
		return ModeDev
	}
	return ModeProd
}

// Port returns PORT, or fallback when it is unset.
func Port(fallback string) string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return fallback
}

// ConfigPath returns DATATABLE_CONFIG.
func ConfigPath() string {
	return os.Getenv("DATATABLE_CONFIG")
}
