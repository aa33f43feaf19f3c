package config

import (
	"flag"
	"fmt"
	"os"
)

// defaultConfigFile is only loaded when it exists; both tools run fine
// without one.
const defaultConfigFile = "phototool.toml"

// ParseStripFlags builds the stripper configuration from defaults, the
// optional config file, and args (normally os.Args[1:]).
func ParseStripFlags(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("stripmeta", flag.ContinueOnError)
	configFile := fs.String("config", defaultConfigFile, "Path to a TOML configuration file")
	root := fs.String("root", "", "Path to photos root (default: photos)")
	quality := fs.Int("quality", cfg.Quality, "JPEG quality when re-saving")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Don't write changes; just print what would happen")
	fs.BoolVar(&cfg.Backup, "backup", false, "Save original files under the backup folder in each album")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := loadIfPresent(*configFile, &cfg); err != nil {
		return cfg, err
	}
	if *root != "" {
		cfg.Root = *root
	}
	// An explicit flag beats the config file even when it repeats the default.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "quality" {
			cfg.Quality = *quality
		}
	})
	if cfg.Quality < 1 || cfg.Quality > 100 {
		return cfg, fmt.Errorf("quality must be between 1 and 100, got %d", cfg.Quality)
	}
	return cfg, nil
}

// ParseIndexFlags builds the index generator configuration from defaults,
// the optional config file, and args.
func ParseIndexFlags(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("albumindex", flag.ContinueOnError)
	configFile := fs.String("config", defaultConfigFile, "Path to a TOML configuration file")
	root := fs.String("root", "", "Root directory that contains album folders (default: photos)")
	fs.BoolVar(&cfg.Recursive, "recursive", false, "Recurse into nested album folders")
	fs.BoolVar(&cfg.NoOverwrite, "no-overwrite", false, "Skip albums that already contain an index")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview changes without writing files")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := loadIfPresent(*configFile, &cfg); err != nil {
		return cfg, err
	}
	if *root != "" {
		cfg.Root = *root
	}
	return cfg, nil
}

// loadIfPresent applies the config file when it exists. A missing file is
// only an error when the user pointed at a non-default path explicitly.
func loadIfPresent(configFile string, cfg *Config) error {
	if _, err := os.Stat(configFile); err != nil {
		if configFile == defaultConfigFile {
			return nil
		}
		return err
	}
	return Load(configFile, cfg)
}
