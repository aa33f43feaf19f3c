package album

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testGenerator(out *bytes.Buffer) *Generator {
	return &Generator{
		Scanner:    testScanner(),
		ScriptFile: "index.js",
		Out:        out,
	}
}

func TestGeneratorWritesIndexAndScript(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "summer/img10.jpg", "summer/img2.jpg", "summer/notes.txt")

	var out bytes.Buffer
	stats, err := testGenerator(&out).Run(root)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if stats.Albums != 1 || stats.Files != 2 {
		t.Errorf("expected 1 album with 2 files, got %+v", stats)
	}

	indexData, err := os.ReadFile(filepath.Join(root, "summer", "index.json"))
	if err != nil {
		t.Fatalf("index.json not written: %v", err)
	}
	wantIndex := "[\n  \"img2.jpg\",\n  \"img10.jpg\"\n]\n"
	if string(indexData) != wantIndex {
		t.Errorf("index.json content:\n%q\nwant:\n%q", indexData, wantIndex)
	}

	scriptData, err := os.ReadFile(filepath.Join(root, "summer", "index.js"))
	if err != nil {
		t.Fatalf("index.js not written: %v", err)
	}
	wantScript := "window.ALBUM_FILES = [\"img2.jpg\",\"img10.jpg\"];\n"
	if string(scriptData) != wantScript {
		t.Errorf("index.js content:\n%q\nwant:\n%q", scriptData, wantScript)
	}
}

func TestGeneratorSkipsEmptyAlbums(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "empty/notes.txt")

	var out bytes.Buffer
	stats, err := testGenerator(&out).Run(root)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if stats.Albums != 0 {
		t.Errorf("expected no indexed albums, got %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(root, "empty", "index.json")); err == nil {
		t.Error("index.json written for album with no qualifying files")
	}
}

func TestGeneratorNoOverwrite(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "summer/a.jpg")

	existing := []byte("[\n  \"stale.jpg\"\n]\n")
	indexPath := filepath.Join(root, "summer", "index.json")
	if err := os.WriteFile(indexPath, existing, 0644); err != nil {
		t.Fatalf("failed to write existing index: %v", err)
	}

	var out bytes.Buffer
	g := testGenerator(&out)
	g.NoOverwrite = true
	stats, err := g.Run(root)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if stats.Skipped != 1 || stats.Albums != 0 {
		t.Errorf("expected album skipped, got %+v", stats)
	}
	if !strings.Contains(out.String(), "Skip (exists)") {
		t.Errorf("expected skip report, got output: %s", out.String())
	}

	after, err := os.ReadFile(indexPath)
	if err != nil {
		t.Fatalf("failed to re-read index: %v", err)
	}
	if !bytes.Equal(after, existing) {
		t.Errorf("existing index modified: %q -> %q", existing, after)
	}
}

func TestGeneratorOverwritesByDefault(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "summer/a.jpg")

	indexPath := filepath.Join(root, "summer", "index.json")
	if err := os.WriteFile(indexPath, []byte("stale"), 0644); err != nil {
		t.Fatalf("failed to write existing index: %v", err)
	}

	var out bytes.Buffer
	if _, err := testGenerator(&out).Run(root); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	after, err := os.ReadFile(indexPath)
	if err != nil {
		t.Fatalf("failed to re-read index: %v", err)
	}
	if string(after) == "stale" {
		t.Error("existing index was not regenerated")
	}
}

func TestGeneratorDryRun(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "summer/a.jpg")

	var out bytes.Buffer
	g := testGenerator(&out)
	g.DryRun = true
	stats, err := g.Run(root)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if stats.Albums != 1 || stats.Files != 1 {
		t.Errorf("dry-run should still count would-write albums, got %+v", stats)
	}
	if !strings.Contains(out.String(), "[DRY]") {
		t.Errorf("expected [DRY] output, got: %s", out.String())
	}
	if _, err := os.Stat(filepath.Join(root, "summer", "index.json")); err == nil {
		t.Error("dry-run wrote index.json")
	}
	if _, err := os.Stat(filepath.Join(root, "summer", "index.js")); err == nil {
		t.Error("dry-run wrote index.js")
	}
}

func TestGeneratorRecursive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "trips/2023/a.jpg", "trips/b.jpg")

	var out bytes.Buffer
	g := testGenerator(&out)
	g.Recursive = true
	stats, err := g.Run(root)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if stats.Albums != 2 {
		t.Errorf("expected 2 indexed albums, got %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(root, "trips", "2023", "index.json")); err != nil {
		t.Errorf("nested album index not written: %v", err)
	}
}
