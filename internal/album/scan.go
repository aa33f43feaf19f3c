// Package album lists image files per album directory and writes the
// per-album index files consumed by the photo site.
package album

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner finds album directories and the image files inside them. The
// extension set, excluded directory name, and listing filename are injected
// so tests can run with custom values.
type Scanner struct {
	Extensions map[string]bool // lowercase extensions with leading dot
	ExcludeDir string          // directory name pruned from every traversal
	IndexFile  string          // listing filename, excluded from results
}

// Albums returns the album directories under root: immediate subdirectories
// by default, or every descendant directory when recursive is set. The root
// itself is not an album. Directories named ExcludeDir are pruned along with
// their contents.
func (s *Scanner) Albums(root string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		var albums []string
		for _, entry := range entries {
			if entry.IsDir() && entry.Name() != s.ExcludeDir {
				albums = append(albums, filepath.Join(root, entry.Name()))
			}
		}
		return albums, nil
	}

	var albums []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == s.ExcludeDir {
			return filepath.SkipDir
		}
		if path != root {
			albums = append(albums, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return albums, nil
}

// ListFiles returns the image filenames in one album directory in natural
// order. Subdirectories, the listing file itself, and files with
// unrecognized extensions are excluded.
func (s *Scanner) ListFiles(albumDir string) ([]string, error) {
	entries, err := os.ReadDir(albumDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == s.IndexFile {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if s.Extensions[ext] {
			files = append(files, name)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return NaturalLess(files[i], files[j])
	})
	return files, nil
}
