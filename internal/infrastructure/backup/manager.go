// Package backup snapshots the config file before destructive writes.
// Backups are straight byte copies, never parse/re-serialize, so a
// snapshot is bit-identical to what was on disk.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/highvelocity/arctuner/internal/domain"
	"github.com/highvelocity/arctuner/internal/infrastructure/pathguard"
	"github.com/highvelocity/arctuner/internal/pkg/filesystem"
	"github.com/highvelocity/arctuner/internal/ports"
)

// timestampLayout sorts lexicographically in chronological order.
const timestampLayout = "20060102_150405"

// Manager owns one directory of timestamped backup files.
type Manager struct {
	dir   string
	guard *pathguard.Guard
	now   func() time.Time
}

// NewManager returns a manager rooted at dir. The directory is created
// on first write, not here.
func NewManager(dir string, guard *pathguard.Guard) *Manager {
	return &Manager{dir: dir, guard: guard, now: time.Now}
}

// Dir returns the backup directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Create snapshots the file at source into the backup directory.
func (m *Manager) Create(source string) (domain.BackupRecord, error) {
	return m.CreateTagged(source, "")
}

// CreateTagged snapshots with an extra tag in the filename, e.g.
// "pre_restore".
func (m *Manager) CreateTagged(source, tag string) (domain.BackupRecord, error) {
	if err := m.guard.Check(source); err != nil {
		return domain.BackupRecord{}, err
	}
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return domain.BackupRecord{}, fmt.Errorf("create backup dir: %w", err)
	}

	name := m.backupName(filepath.Base(source), tag)
	dest := filepath.Join(m.dir, name)
	if err := copyFile(source, dest); err != nil {
		return domain.BackupRecord{}, fmt.Errorf("create backup: %w", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		return domain.BackupRecord{}, fmt.Errorf("stat backup: %w", err)
	}
	return domain.BackupRecord{Name: name, Path: dest, Created: m.now(), Size: info.Size()}, nil
}

// List returns backups newest-first. The timestamped names make
// lexicographic order chronological.
func (m *Manager) List() ([]domain.BackupRecord, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list backups: %w", err)
	}

	var out []domain.BackupRecord
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".ini") || !strings.Contains(e.Name(), "_") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, domain.BackupRecord{
			Name:    e.Name(),
			Path:    filepath.Join(m.dir, e.Name()),
			Created: createdFromName(e.Name(), info.ModTime()),
			Size:    info.Size(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

// Restore copies a backup over target using the same temp-write-rename
// discipline as a save. It does not snapshot the pre-restore state;
// callers wanting that snapshot first.
func (m *Manager) Restore(rec domain.BackupRecord, target string) error {
	if err := m.guard.Check(rec.Path); err != nil {
		return err
	}
	if err := m.guard.Check(target); err != nil {
		return err
	}

	data, err := os.ReadFile(rec.Path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	return filesystem.ReplaceFile(target, data)
}

// Delete removes a backup file.
func (m *Manager) Delete(rec domain.BackupRecord) error {
	if err := m.guard.Check(rec.Path); err != nil {
		return err
	}
	if err := os.Remove(rec.Path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %s: %w", rec.Name, domain.ErrNotFound)
		}
		return fmt.Errorf("delete backup: %w", err)
	}
	return nil
}

// backupName builds "<stem>_<timestamp>[_tag]<ext>", bumping a numeric
// suffix on a same-second collision.
func (m *Manager) backupName(original, tag string) string {
	ext := filepath.Ext(original)
	stem := strings.TrimSuffix(original, ext)
	ts := m.now().Format(timestampLayout)
	suffix := ""
	if tag != "" {
		suffix = "_" + tag
	}

	name := fmt.Sprintf("%s_%s%s%s", stem, ts, suffix, ext)
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(m.dir, name)); os.IsNotExist(err) {
			return name
		}
		name = fmt.Sprintf("%s_%s%s_%d%s", stem, ts, suffix, n, ext)
	}
}

func createdFromName(name string, fallback time.Time) time.Time {
	parts := strings.Split(strings.TrimSuffix(name, filepath.Ext(name)), "_")
	for i := 0; i+1 < len(parts); i++ {
		if t, err := time.ParseInLocation(timestampLayout, parts[i]+"_"+parts[i+1], time.Local); err == nil {
			return t
		}
	}
	return fallback
}

func copyFile(source, dest string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	return out.Close()
}

var _ ports.BackupStore = (*Manager)(nil)
