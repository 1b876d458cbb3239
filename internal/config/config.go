package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Config is the read-only tool configuration. Its fields back template
// placeholders in help article strings.
type Config struct {
	// Executable overrides the binary name shown in usage lines.
	Executable string `json:"executable,omitempty"`
	// DocsDir is the default destination for generated Markdown docs.
	DocsDir string `json:"docsDir,omitempty"`
}

const fileName = "config.json"

// Load reads config.json from the helpctl config dir. A missing file is
// not an error; defaults apply.
func Load() (Config, error) {
	var cfg Config
	dir, err := Dir()
	if err == nil {
		b, rerr := os.ReadFile(filepath.Join(dir, fileName))
		switch {
		case rerr == nil:
			if jerr := json.Unmarshal(b, &cfg); jerr != nil {
				return Config{}, fmt.Errorf("parse %s: %w", fileName, jerr)
			}
		case !errors.Is(rerr, fs.ErrNotExist):
			return Config{}, rerr
		}
	}
	if strings.TrimSpace(cfg.Executable) == "" {
		cfg.Executable = filepath.Base(os.Args[0])
	}
	if strings.TrimSpace(cfg.DocsDir) == "" {
		cfg.DocsDir = "docs"
	}
	return cfg, nil
}

// Save writes cfg to the helpctl config dir, creating it if needed.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, fileName), append(b, '\n'), 0o644)
}

// Vars exposes config fields to {{name}} template placeholders.
func (c Config) Vars() map[string]string {
	return map[string]string{
		"executable": c.Executable,
		"docsDir":    c.DocsDir,
	}
}
