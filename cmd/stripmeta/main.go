// Command stripmeta removes EXIF and other embedded metadata from images
// under the photos directory, in place. ICC color profiles are kept, EXIF
// orientation is baked into the pixels before the tag is dropped, and each
// file is replaced atomically.
//
// Exit codes: 1 on a bad root directory, 2 when any file failed, 0 otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/rbuysse/phototool/internal/config"
	"github.com/rbuysse/phototool/internal/strip"
)

func main() {
	cfg, err := config.ParseStripFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "stripmeta: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateRoot(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stripping metadata from images in: %s\n", cfg.Root)
	if cfg.DryRun {
		fmt.Println("DRY RUN MODE: No files will be modified")
	}
	if cfg.Backup {
		fmt.Printf("BACKUP MODE: Saving originals under %s/\n", cfg.BackupDir)
	}
	fmt.Println()

	pipeline := strip.Pipeline{
		Extensions: cfg.ExtensionSet(),
		BackupDir:  cfg.BackupDir,
		Quality:    cfg.Quality,
		DryRun:     cfg.DryRun,
		Backup:     cfg.Backup,
	}

	stats, err := pipeline.Run(cfg.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stripmeta: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("\nProcessed: %d, stripped: %d, already clean: %d, errors: %d\n",
		stats.Total, stats.Stripped, stats.Clean, stats.Errors)
	if cfg.DryRun {
		fmt.Println("Dry run only. No files were modified.")
	}
	if stats.Errors > 0 {
		os.Exit(2)
	}
}
