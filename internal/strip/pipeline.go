package strip

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rbuysse/phototool/internal/imagemeta"
)

// Status classifies the outcome of processing one file.
type Status int

const (
	StatusStripped     Status = iota // metadata removed, file replaced
	StatusAlreadyClean               // JPEG with no EXIF; nothing written
	StatusError                      // decode/encode/I-O failure; batch continues
)

// Result is the per-file outcome. Errors are values here, not aborts: the
// caller aggregates them and keeps going.
type Result struct {
	Path    string
	Status  Status
	Message string
	Err     error
}

// Stats aggregates per-file results across one run.
type Stats struct {
	Total    int
	Stripped int
	Clean    int
	Errors   int
}

func (s *Stats) record(r Result) {
	s.Total++
	switch r.Status {
	case StatusStripped:
		s.Stripped++
	case StatusAlreadyClean:
		s.Clean++
	case StatusError:
		s.Errors++
	}
}

// Pipeline processes image files sequentially: open, inspect, normalize
// orientation, re-encode per policy, optionally back up, atomically replace.
// Files are independent; a failure on one never stops the batch.
type Pipeline struct {
	Extensions map[string]bool // lowercase extensions with leading dot
	BackupDir  string          // exclusion directory name, pruned from the walk
	Quality    int             // JPEG quality for re-encoding
	DryRun     bool
	Backup     bool
	Out        io.Writer // one line per file; defaults to os.Stdout
}

// Run walks root recursively, processes every candidate image, and returns
// aggregate stats. Directories named BackupDir are pruned so backups are
// never re-processed.
func (p *Pipeline) Run(root string) (Stats, error) {
	var stats Stats
	out := p.out()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == p.BackupDir {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !p.Extensions[ext] {
			return nil
		}

		result := p.ProcessFile(path)
		stats.record(result)
		if result.Status == StatusError {
			fmt.Fprintf(out, "ERROR processing %s: %v\n", result.Path, result.Err)
		} else {
			fmt.Fprintln(out, result.Message)
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("error walking %s: %w", root, err)
	}
	return stats, nil
}

// ProcessFile runs the full pipeline on one file and reports the outcome.
func (p *Pipeline) ProcessFile(path string) Result {
	fi, err := os.Stat(path)
	if err != nil {
		return errResult(path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errResult(path, err)
	}

	info, err := imagemeta.Inspect(data)
	if err != nil {
		return errResult(path, err)
	}

	// A JPEG with no EXIF has been processed before (or never had metadata);
	// skipping avoids compounding lossy re-encodes on every run. Other
	// formats get no such short-circuit and are always re-encoded.
	if info.Format == imagemeta.FormatJPEG && !info.HasExif {
		return Result{
			Path:    path,
			Status:  StatusAlreadyClean,
			Message: fmt.Sprintf("Already clean (no EXIF): %s", path),
		}
	}

	policy, ok := PolicyFor(info.Format, p.Quality)
	if !ok {
		return errResult(path, fmt.Errorf("no encode policy for %s", info.Format))
	}

	if p.DryRun {
		return Result{
			Path:    path,
			Status:  StatusStripped,
			Message: fmt.Sprintf("[DRY] would strip metadata: %s", path),
		}
	}

	img, err := imagemeta.Decode(data, info.Format)
	if err != nil {
		return errResult(path, fmt.Errorf("decode failed: %w", err))
	}

	// Bake the orientation into the pixels before the tag disappears.
	img = imagemeta.NormalizeOrientation(img, info.Orientation)

	encoded, err := imagemeta.Encode(img, info.Format, policy.Quality)
	if err != nil {
		return errResult(path, fmt.Errorf("encode failed: %w", err))
	}

	if policy.ReattachICC && info.ICCProfile != nil {
		switch info.Format {
		case imagemeta.FormatJPEG:
			encoded, err = imagemeta.AttachICCJPEG(encoded, info.ICCProfile)
		case imagemeta.FormatPNG:
			encoded, err = imagemeta.AttachICCPNG(encoded, info.ICCProfile)
		}
		if err != nil {
			return errResult(path, fmt.Errorf("cannot reattach ICC profile: %w", err))
		}
	}

	if p.Backup {
		bm := BackupManager{DirName: p.BackupDir}
		if _, err := bm.Preserve(path, data, fi.Mode()); err != nil {
			return errResult(path, err)
		}
	}

	if err := replaceAtomic(path, encoded, fi.Mode()); err != nil {
		return errResult(path, err)
	}

	return Result{
		Path:    path,
		Status:  StatusStripped,
		Message: fmt.Sprintf("Stripped metadata: %s", path),
	}
}

func errResult(path string, err error) Result {
	return Result{Path: path, Status: StatusError, Err: err}
}

func (p *Pipeline) out() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}
