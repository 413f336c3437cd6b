// Package paths locates the ARC Raiders configuration file on disk. On
// Windows it is a fixed join under %LOCALAPPDATA%; on Linux the game
// runs under Proton, so resolution walks Steam's install roots, its
// library manifest, and the per-app compatibility prefix.
package paths

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/highvelocity/arctuner/internal/domain"
	"github.com/highvelocity/arctuner/internal/ports"
)

const (
	// steamAppID identifies ARC Raiders in Steam's compatdata tree.
	steamAppID = "1808800"

	configFileName = "GameUserSettings.ini"
	backupDirName  = "ArcTuner_Backups"
	profileDirName = "ArcTuner_Profiles"
	historyDirName = "ArcTuner_History"
)

// gameRelPath is the path from a Windows user-data root (LOCALAPPDATA or
// the emulated one inside a Proton prefix) down to the config file.
var gameRelPath = []string{"PioneerGame", "Saved", "Config", "WindowsClient", configFileName}

// steamRootCandidates are probed in order relative to the home
// directory; the flatpak sandbox location comes last.
var steamRootCandidates = []string{
	".steam/steam",
	".steam/root",
	".local/share/Steam",
	".var/app/com.valvesoftware.Steam/.local/share/Steam",
}

// Resolver computes and memoizes the config file location. The cache is
// an explicit field, dropped only by Reset.
type Resolver struct {
	platform Platform

	resolved   bool
	configPath string
	configErr  error
}

// NewResolver builds a resolver for the given platform context.
func NewResolver(p Platform) *Resolver {
	return &Resolver{platform: p}
}

// ConfigPath returns the config file location. The first call resolves;
// later calls return the memoized result until Reset.
func (r *Resolver) ConfigPath() (string, error) {
	if !r.resolved {
		r.configPath, r.configErr = r.resolve()
		r.resolved = true
	}
	return r.configPath, r.configErr
}

// BackupDir returns the backup directory, a fixed-name sibling of the
// config file.
func (r *Resolver) BackupDir() (string, error) {
	return r.sibling(backupDirName)
}

// ProfileDir returns the profile directory, a fixed-name sibling of the
// config file.
func (r *Resolver) ProfileDir() (string, error) {
	return r.sibling(profileDirName)
}

// HistoryDir returns the change-history directory, a fixed-name sibling
// of the config file.
func (r *Resolver) HistoryDir() (string, error) {
	return r.sibling(historyDirName)
}

// Reset drops the memoized resolution.
func (r *Resolver) Reset() {
	r.resolved = false
	r.configPath = ""
	r.configErr = nil
}

func (r *Resolver) sibling(name string) (string, error) {
	cfg, err := r.ConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(cfg), name), nil
}

// BackupDirFor returns the backup directory for an explicitly chosen
// config path.
func BackupDirFor(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), backupDirName)
}

// ProfileDirFor returns the profile directory for an explicitly chosen
// config path.
func ProfileDirFor(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), profileDirName)
}

// HistoryDirFor returns the history directory for an explicitly chosen
// config path.
func HistoryDirFor(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), historyDirName)
}

func (r *Resolver) resolve() (string, error) {
	switch r.platform.OS {
	case "windows":
		return r.resolveWindows()
	case "linux":
		return r.resolveProton()
	default:
		return "", fmt.Errorf("unsupported platform %s: %w", r.platform.OS, domain.ErrNotFound)
	}
}

func (r *Resolver) resolveWindows() (string, error) {
	localAppData := r.platform.Getenv("LOCALAPPDATA")
	if localAppData == "" {
		return "", fmt.Errorf("LOCALAPPDATA not set: %w", domain.ErrNotFound)
	}
	path := filepath.Join(append([]string{localAppData}, gameRelPath...)...)
	if !r.platform.Exists(path) {
		return "", fmt.Errorf("config file missing at %s: %w", path, domain.ErrNotFound)
	}
	return path, nil
}

// resolveProton walks: Steam root -> libraryfolders.vdf -> per-library
// compatdata prefix. Every missing intermediate degrades to NotFound so
// the caller can prompt for a manual path instead of failing hard.
func (r *Resolver) resolveProton() (string, error) {
	root, ok := r.steamRoot()
	if !ok {
		return "", fmt.Errorf("no Steam installation found: %w", domain.ErrNotFound)
	}

	for _, library := range r.libraries(root) {
		prefix := filepath.Join(library, "steamapps", "compatdata", steamAppID, "pfx")
		if !r.platform.Exists(prefix) {
			continue
		}
		userData := filepath.Join(prefix, "drive_c", "users", "steamuser", "AppData", "Local")
		path := filepath.Join(append([]string{userData}, gameRelPath...)...)
		if !r.platform.Exists(path) {
			return "", fmt.Errorf("prefix %s has no config file: %w", prefix, domain.ErrNotFound)
		}
		return path, nil
	}
	return "", fmt.Errorf("no Steam library holds a prefix for app %s: %w", steamAppID, domain.ErrNotFound)
}

func (r *Resolver) steamRoot() (string, bool) {
	for _, rel := range steamRootCandidates {
		candidate := filepath.Join(r.platform.Home, filepath.FromSlash(rel))
		if r.platform.Exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// libraries returns the primary root plus every "path" entry of its
// library manifest, in discovery order, deduplicated.
func (r *Resolver) libraries(root string) []string {
	out := []string{root}
	seen := map[string]bool{root: true}

	manifest := filepath.Join(root, "steamapps", "libraryfolders.vdf")
	data, err := r.platform.ReadFile(manifest)
	if err != nil {
		return out
	}

	for _, p := range ExtractVDFPaths(bytes.NewReader(data)) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

var _ ports.PathResolver = (*Resolver)(nil)
