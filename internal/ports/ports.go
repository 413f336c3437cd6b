// Package ports defines the interfaces between the application core and
// the infrastructure adapters (filesystem stores, path resolution,
// history persistence), keeping the core testable with stubs.
package ports

import "github.com/highvelocity/arctuner/internal/domain"

// Logger is the minimal leveled logging surface services depend on.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

// PathResolver locates the game config file and its sibling backup and
// profile directories for the current platform.
type PathResolver interface {
	// ConfigPath returns the config file location, or domain.ErrNotFound
	// when no step of the resolution chain produced an existing path.
	ConfigPath() (string, error)
	BackupDir() (string, error)
	ProfileDir() (string, error)
	// Reset drops memoized results so the next call resolves again.
	Reset()
}

// ConfigStore owns the live in-memory document and its disk lifecycle.
type ConfigStore interface {
	Load(path string) error
	Get(key string) (string, error)
	Set(key string, value interface{}) error
	Apply(settings map[string]string) error
	Save(path string) error
	ResetToDefaults() error
	Document() *domain.ConfigDocument
	Path() string
	Warnings() []string
}

// BackupStore snapshots and restores byte copies of the config file.
type BackupStore interface {
	Create(source string) (domain.BackupRecord, error)
	CreateTagged(source, tag string) (domain.BackupRecord, error)
	List() ([]domain.BackupRecord, error)
	Restore(rec domain.BackupRecord, target string) error
	Delete(rec domain.BackupRecord) error
}

// ProfileStore persists named settings snapshots.
type ProfileStore interface {
	Save(name string, settings map[string]string) (domain.Profile, error)
	// Load returns the profile plus any keys unknown to the catalog,
	// which callers surface as warnings rather than failures.
	Load(name string) (domain.Profile, []string, error)
	List() ([]domain.Profile, error)
	Delete(name string) error
}

// HistoryStore records an audit trail of mutations.
type HistoryStore interface {
	Record(rec domain.ChangeRecord) error
	Recent(limit int) ([]domain.ChangeRecord, error)
	Close() error
}
