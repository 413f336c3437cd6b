package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReplaceFileWritesTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "GameUserSettings.ini")

	if err := ReplaceFile(target, []byte("[A]\nx=1\n")); err != nil {
		t.Fatalf("ReplaceFile() error = %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[A]\nx=1\n" {
		t.Fatalf("target = %q", data)
	}
	assertNoTempFiles(t, dir)
}

func TestReplaceFileOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "GameUserSettings.ini")
	if err := os.WriteFile(target, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ReplaceFile(target, []byte("new")); err != nil {
		t.Fatalf("ReplaceFile() error = %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Fatalf("target = %q, want new", data)
	}
	assertNoTempFiles(t, dir)
}

func TestReplaceFileFailedRenameLeavesOriginalUntouched(t *testing.T) {
	dir := t.TempDir()

	// A non-empty directory at the target path makes the final rename
	// fail after the temp file was already written and synced.
	target := filepath.Join(dir, "GameUserSettings.ini")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	original := []byte("[A]\nx=1\n")
	inside := filepath.Join(target, "keep.ini")
	if err := os.WriteFile(inside, original, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ReplaceFile(target, []byte("[A]\nx=2\n")); err == nil {
		t.Fatal("ReplaceFile() over a non-empty directory = nil error")
	}

	data, err := os.ReadFile(inside)
	if err != nil {
		t.Fatalf("original content lost: %v", err)
	}
	if string(data) != string(original) {
		t.Fatalf("original content changed: %q", data)
	}
	assertNoTempFiles(t, dir)
	assertNoTempFiles(t, target)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}
