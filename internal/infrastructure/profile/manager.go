// Package profile persists named settings snapshots as YAML records,
// one file per profile, in a fixed directory next to the config file.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/highvelocity/arctuner/internal/catalog"
	"github.com/highvelocity/arctuner/internal/domain"
	"github.com/highvelocity/arctuner/internal/infrastructure/pathguard"
	"github.com/highvelocity/arctuner/internal/pkg/filesystem"
	"github.com/highvelocity/arctuner/internal/ports"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Manager owns one directory of profile records.
type Manager struct {
	dir     string
	guard   *pathguard.Guard
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewManager returns a manager rooted at dir.
func NewManager(dir string, guard *pathguard.Guard, cat *catalog.Catalog) *Manager {
	return &Manager{dir: dir, guard: guard, catalog: cat, now: time.Now}
}

// Dir returns the profile directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Save writes a named profile. The name is sanitized to a safe filename
// before any path is formed; the guard rejects anything that still
// escapes the profile directory.
func (m *Manager) Save(name string, settings map[string]string) (domain.Profile, error) {
	path, err := m.recordPath(name)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return domain.Profile{}, fmt.Errorf("create profile dir: %w", err)
	}

	p := domain.Profile{
		Name:     name,
		Created:  m.now().Truncate(time.Second),
		Settings: settings,
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("encode profile: %w", err)
	}
	if err := filesystem.ReplaceFile(path, data); err != nil {
		return domain.Profile{}, fmt.Errorf("write profile: %w", err)
	}
	return p, nil
}

// Load reads a named profile. Keys unknown to the catalog are returned
// separately as warnings; known keys load normally.
func (m *Manager) Load(name string) (domain.Profile, []string, error) {
	path, err := m.recordPath(name)
	if err != nil {
		return domain.Profile{}, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Profile{}, nil, fmt.Errorf("profile %q: %w", name, domain.ErrNotFound)
		}
		return domain.Profile{}, nil, fmt.Errorf("read profile: %w", err)
	}

	var p domain.Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return domain.Profile{}, nil, &domain.DecodeError{Path: path, Err: err}
	}
	if p.Name == "" {
		p.Name = name
	}

	var unknown []string
	known := make(map[string]string, len(p.Settings))
	for key, value := range p.Settings {
		if _, ok := m.catalog.Lookup(key); !ok {
			unknown = append(unknown, key)
			continue
		}
		known[key] = value
	}
	sort.Strings(unknown)
	p.Settings = known
	return p, unknown, nil
}

// List returns all readable profiles sorted by name. Records that fail
// to decode are skipped.
func (m *Manager) List() ([]domain.Profile, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	var out []domain.Profile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(m.dir, e.Name()))
		if err != nil {
			continue
		}
		var p domain.Profile
		if err := yaml.Unmarshal(data, &p); err != nil {
			continue
		}
		if p.Name == "" {
			p.Name = strings.TrimSuffix(e.Name(), ".yaml")
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes a named profile.
func (m *Manager) Delete(name string) error {
	path, err := m.recordPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("profile %q: %w", name, domain.ErrNotFound)
		}
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func (m *Manager) recordPath(name string) (string, error) {
	safe := SanitizeName(name)
	if safe == "" {
		return "", &domain.ValidationError{Key: "profile name", Value: name, Constraint: "must contain at least one letter, digit, '-' or '_'"}
	}
	path := filepath.Join(m.dir, safe+".yaml")
	if err := m.guard.Check(path); err != nil {
		return "", err
	}
	return path, nil
}

// SanitizeName maps a display name to a safe filename stem: path
// separators, traversal sequences and any other suspect characters
// become underscores.
func SanitizeName(name string) string {
	safe := unsafeNameChars.ReplaceAllString(strings.TrimSpace(name), "_")
	if strings.Trim(safe, "_") == "" {
		return ""
	}
	return safe
}

var _ ports.ProfileStore = (*Manager)(nil)
