// Package pathguard is the system's only security boundary: every path
// the store, backup and profile managers touch must fall inside an
// allow-listed set of directory roots after `..` segments and symlinks
// are resolved. Resolution failure is rejection, never "allow".
package pathguard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/highvelocity/arctuner/internal/domain"
)

// Guard checks candidate paths against allowed roots.
type Guard struct {
	roots []string
}

// New builds a guard. Roots that cannot be resolved are kept in their
// cleaned absolute form so a later symlink swap cannot widen the list.
func New(roots ...string) *Guard {
	g := &Guard{}
	for _, r := range roots {
		g.Allow(r)
	}
	return g
}

// Allow adds a directory root, e.g. for a file the user picked through
// an explicit open action.
func (g *Guard) Allow(root string) {
	if root == "" {
		return
	}
	resolved, err := resolve(root)
	if err != nil {
		abs, absErr := filepath.Abs(root)
		if absErr != nil {
			return
		}
		resolved = filepath.Clean(abs)
	}
	g.roots = append(g.roots, resolved)
}

// Roots returns the current allow list.
func (g *Guard) Roots() []string {
	return append([]string(nil), g.roots...)
}

// Check returns nil when path resolves inside an allowed root, and a
// *domain.PathSecurityError otherwise.
func (g *Guard) Check(path string) error {
	if len(g.roots) == 0 {
		return &domain.PathSecurityError{Path: path, Reason: "no allowed roots configured"}
	}
	resolved, err := resolve(path)
	if err != nil {
		return &domain.PathSecurityError{Path: path, Reason: fmt.Sprintf("cannot resolve: %v", err)}
	}
	for _, root := range g.roots {
		if resolved == root || strings.HasPrefix(resolved, root+string(filepath.Separator)) {
			return nil
		}
	}
	return &domain.PathSecurityError{Path: path, Reason: "outside allowed directories"}
}

// resolve makes path absolute and expands symlinks. The target may not
// exist yet (a file about to be written), so symlinks are evaluated on
// the deepest existing ancestor and the remainder re-joined.
func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	abs = filepath.Clean(abs)

	existing := abs
	var tail []string
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			break
		}
		tail = append([]string{filepath.Base(existing)}, tail...)
		existing = parent
	}

	real, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{real}, tail...)...), nil
}
