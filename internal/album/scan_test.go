package album

import (
	"os"
	"path/filepath"
	"testing"
)

func testScanner() *Scanner {
	return &Scanner{
		Extensions: map[string]bool{
			".jpg": true, ".jpeg": true, ".png": true,
			".webp": true, ".tif": true, ".tiff": true,
		},
		ExcludeDir: ".originals",
		IndexFile:  "index.json",
	}
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func TestListFilesFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "photo.jpg", "photo.PNG", "notes.txt", "index.json")

	files, err := testScanner().ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}

	want := []string{"photo.jpg", "photo.PNG"}
	if len(files) != len(want) {
		t.Fatalf("expected %v, got %v", want, files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("expected %v, got %v", want, files)
			break
		}
	}
}

func TestListFilesSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg")
	if err := os.Mkdir(filepath.Join(dir, "nested.jpg"), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	files, err := testScanner().ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(files) != 1 || files[0] != "a.jpg" {
		t.Errorf("expected [a.jpg], got %v", files)
	}
}

func TestAlbumsOneLevel(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "summer/a.jpg", "winter/b.jpg", "summer/nested/c.jpg", ".originals/old.jpg")

	albums, err := testScanner().Albums(root, false)
	if err != nil {
		t.Fatalf("Albums failed: %v", err)
	}

	if len(albums) != 2 {
		t.Fatalf("expected 2 albums, got %v", albums)
	}
	for _, album := range albums {
		name := filepath.Base(album)
		if name != "summer" && name != "winter" {
			t.Errorf("unexpected album %s", album)
		}
	}
}

func TestAlbumsRecursive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "summer/a.jpg", "summer/nested/c.jpg", "summer/.originals/old.jpg", ".originals/sub/x.jpg")

	albums, err := testScanner().Albums(root, true)
	if err != nil {
		t.Fatalf("Albums failed: %v", err)
	}

	if len(albums) != 2 {
		t.Fatalf("expected 2 albums (summer, summer/nested), got %v", albums)
	}
	for _, album := range albums {
		if filepath.Base(album) == ".originals" {
			t.Errorf("exclusion directory listed as album: %s", album)
		}
		if filepath.Base(filepath.Dir(album)) == ".originals" {
			t.Errorf("directory inside exclusion directory listed as album: %s", album)
		}
	}
}
