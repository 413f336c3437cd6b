package pathguard

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/highvelocity/arctuner/internal/domain"
)

func TestCheckAllowsPathsInsideRoot(t *testing.T) {
	dir := t.TempDir()
	g := New(dir)

	if err := g.Check(filepath.Join(dir, "GameUserSettings.ini")); err != nil {
		t.Fatalf("Check(inside) error = %v", err)
	}
	if err := g.Check(dir); err != nil {
		t.Fatalf("Check(root itself) error = %v", err)
	}
}

func TestCheckAllowsNotYetExistingFiles(t *testing.T) {
	dir := t.TempDir()
	g := New(dir)

	if err := g.Check(filepath.Join(dir, "ArcTuner_Backups", "new.ini")); err != nil {
		t.Fatalf("Check(missing file inside root) error = %v", err)
	}
}

func TestCheckRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	g := New(dir)

	err := g.Check(filepath.Join(dir, "..", "escape.ini"))
	var sec *domain.PathSecurityError
	if !errors.As(err, &sec) {
		t.Fatalf("Check(..) error = %v, want *domain.PathSecurityError", err)
	}
}

func TestCheckRejectsSiblingWithRootPrefix(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "data")
	if err := os.Mkdir(root, 0o755); err != nil {
		t.Fatal(err)
	}
	g := New(root)

	// "data-evil" shares the root's string prefix but is a sibling.
	if err := g.Check(filepath.Join(parent, "data-evil", "x.ini")); err == nil {
		t.Fatal("Check(sibling with shared prefix) = nil, want rejection")
	}
}

func TestCheckRejectsEverythingWithoutRoots(t *testing.T) {
	g := New()
	var sec *domain.PathSecurityError
	if err := g.Check(filepath.Join(t.TempDir(), "x.ini")); !errors.As(err, &sec) {
		t.Fatalf("Check() error = %v, want *domain.PathSecurityError", err)
	}
}

func TestCheckRejectsSymlinkEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs elevation on windows")
	}
	root := t.TempDir()
	outside := t.TempDir()
	link := filepath.Join(root, "link")
	if err := os.Symlink(outside, link); err != nil {
		t.Fatal(err)
	}

	g := New(root)
	if err := g.Check(filepath.Join(link, "x.ini")); err == nil {
		t.Fatal("Check(symlink escape) = nil, want rejection")
	}
}

func TestAllowExtendsRoots(t *testing.T) {
	root := t.TempDir()
	extra := t.TempDir()
	g := New(root)

	if err := g.Check(filepath.Join(extra, "x.ini")); err == nil {
		t.Fatal("Check(extra before Allow) = nil, want rejection")
	}
	g.Allow(extra)
	if err := g.Check(filepath.Join(extra, "x.ini")); err != nil {
		t.Fatalf("Check(extra after Allow) error = %v", err)
	}
	if len(g.Roots()) != 2 {
		t.Fatalf("Roots() = %v, want 2 entries", g.Roots())
	}
}
