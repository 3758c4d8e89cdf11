// Package config holds the settings of the demo command.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/3-lines-studio/datatable/internal/adapters/env"
)

type Config struct {
	Addr        string `toml:"addr"`
	Title       string `toml:"title"`
	Data        string `toml:"data"`
	Dev         bool   `toml:"dev"`
	Placeholder string `toml:"placeholder"`
	ExportDir   string `toml:"export_dir"`
}

func Default() Config {
	return Config{
		Addr:      ":" + env.Port("8080"),
		Dev:       env.DetectMode() == env.ModeDev,
		ExportDir: "dist",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}
