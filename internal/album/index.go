package album

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Generator regenerates per-album listings. Each qualifying album gets an
// index.json (JSON array of filenames) and an index.js fallback for local
// file:// previews where fetch() is blocked.
type Generator struct {
	Scanner     *Scanner
	ScriptFile  string // JS fallback filename, e.g. "index.js"
	Recursive   bool
	NoOverwrite bool
	DryRun      bool
	Out         io.Writer // one line per album; defaults to os.Stdout
}

// Stats aggregates counters across one generator run.
type Stats struct {
	Albums  int // albums with a listing written (or would-write under dry-run)
	Files   int // total filenames listed
	Skipped int // albums skipped by --no-overwrite
}

// Run scans root and writes listings for every album with at least one
// qualifying file. Albums with zero qualifying files are skipped silently.
func (g *Generator) Run(root string) (Stats, error) {
	var stats Stats
	out := g.out()

	albums, err := g.Scanner.Albums(root, g.Recursive)
	if err != nil {
		return stats, err
	}
	if len(albums) == 0 {
		fmt.Fprintln(out, "No album folders found.")
		return stats, nil
	}

	for _, dir := range albums {
		indexPath := filepath.Join(dir, g.Scanner.IndexFile)
		if g.NoOverwrite {
			if _, err := os.Stat(indexPath); err == nil {
				fmt.Fprintf(out, "Skip (exists): %s\n", indexPath)
				stats.Skipped++
				continue
			}
		}

		files, err := g.Scanner.ListFiles(dir)
		if err != nil {
			return stats, err
		}
		if len(files) == 0 {
			// nothing to index
			continue
		}

		if g.DryRun {
			fmt.Fprintf(out, "[DRY] %s: %d files\n", indexPath, len(files))
		} else {
			if err := g.writeIndex(dir, files); err != nil {
				return stats, err
			}
			fmt.Fprintf(out, "Wrote %s (%d entries)\n", indexPath, len(files))
			fmt.Fprintf(out, "Wrote %s (JS fallback)\n", filepath.Join(dir, g.ScriptFile))
		}
		stats.Albums++
		stats.Files += len(files)
	}

	return stats, nil
}

// writeIndex persists index.json (2-space indent, trailing newline) and the
// index.js global-assignment fallback for one album.
func (g *Generator) writeIndex(dir string, files []string) error {
	indexJSON, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return err
	}
	indexJSON = append(indexJSON, '\n')

	indexPath := filepath.Join(dir, g.Scanner.IndexFile)
	if err := os.WriteFile(indexPath, indexJSON, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", indexPath, err)
	}

	compact, err := json.Marshal(files)
	if err != nil {
		return err
	}
	script := "window.ALBUM_FILES = " + string(compact) + ";\n"

	scriptPath := filepath.Join(dir, g.ScriptFile)
	if err := os.WriteFile(scriptPath, []byte(script), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", scriptPath, err)
	}
	return nil
}

func (g *Generator) out() io.Writer {
	if g.Out != nil {
		return g.Out
	}
	return os.Stdout
}
