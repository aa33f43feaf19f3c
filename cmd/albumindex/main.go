// Command albumindex generates the per-album index files. For each album
// folder under the photos root it writes an index.json with the naturally
// sorted image filenames, plus an index.js fallback for local file://
// previews where fetch() is blocked.
//
// Exit codes: 1 on a bad root directory, 0 otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/rbuysse/phototool/internal/album"
	"github.com/rbuysse/phototool/internal/config"
)

func main() {
	cfg, err := config.ParseIndexFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "albumindex: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateRoot(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	generator := album.Generator{
		Scanner: &album.Scanner{
			Extensions: cfg.ExtensionSet(),
			ExcludeDir: cfg.BackupDir,
			IndexFile:  cfg.IndexFile,
		},
		ScriptFile:  cfg.ScriptFile,
		Recursive:   cfg.Recursive,
		NoOverwrite: cfg.NoOverwrite,
		DryRun:      cfg.DryRun,
	}

	stats, err := generator.Run(cfg.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "albumindex: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nIndexed albums: %d, total images listed: %d\n", stats.Albums, stats.Files)
	if stats.Skipped > 0 {
		fmt.Printf("Skipped albums: %d\n", stats.Skipped)
	}
	if cfg.DryRun {
		fmt.Println("Dry run only. No files were written.")
	}
}
