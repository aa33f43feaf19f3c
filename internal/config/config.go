// Package config holds the shared settings for both tools: defaults, an
// optional TOML config file, and per-tool CLI flag parsing. Flags override
// the file, which overrides the defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config carries the settings injected into the scanner, the stripping
// pipeline, and the index generator. The recognized extensions, the backup
// exclusion directory, and the listing filenames are configuration rather
// than package globals so tests can run with custom sets.
type Config struct {
	Root       string   `toml:"root"`
	Quality    int      `toml:"quality"`
	Extensions []string `toml:"extensions"`
	BackupDir  string   `toml:"backup_dir"`
	IndexFile  string   `toml:"index_file"`
	ScriptFile string   `toml:"script_file"`

	// Runtime flags, never read from the config file.
	DryRun      bool `toml:"-"`
	Backup      bool `toml:"-"`
	Recursive   bool `toml:"-"`
	NoOverwrite bool `toml:"-"`
}

// Default returns the built-in settings, matching the photo-site layout.
func Default() Config {
	return Config{
		Root:       "photos",
		Quality:    95,
		Extensions: []string{".jpg", ".jpeg", ".png", ".webp", ".tif", ".tiff"},
		BackupDir:  ".originals",
		IndexFile:  "index.json",
		ScriptFile: "index.js",
	}
}

// Load decodes a TOML config file over cfg. Missing keys keep their current
// values.
func Load(configFile string, cfg *Config) error {
	if _, err := toml.DecodeFile(configFile, cfg); err != nil {
		return fmt.Errorf("error in parsing config file: %w", err)
	}
	return nil
}

// ExtensionSet returns the recognized extensions as a lowercase lookup set.
func (c *Config) ExtensionSet() map[string]bool {
	set := make(map[string]bool, len(c.Extensions))
	for _, ext := range c.Extensions {
		set[strings.ToLower(ext)] = true
	}
	return set
}

// ValidateRoot checks that the root exists and is a directory. Both tools
// treat a bad root as a fatal configuration error.
func (c *Config) ValidateRoot() error {
	fi, err := os.Stat(c.Root)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("root not found or not a directory: %s", c.Root)
	}
	return nil
}
