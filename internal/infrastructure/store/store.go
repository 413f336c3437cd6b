// Package store owns the live in-memory configuration document. All
// reads and writes of individual settings go through the catalog's
// validation; all disk traffic goes through the path guard and lands via
// atomic replace.
package store

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/highvelocity/arctuner/internal/catalog"
	"github.com/highvelocity/arctuner/internal/domain"
	"github.com/highvelocity/arctuner/internal/infrastructure/gameini"
	"github.com/highvelocity/arctuner/internal/infrastructure/pathguard"
	"github.com/highvelocity/arctuner/internal/pkg/filesystem"
	"github.com/highvelocity/arctuner/internal/ports"
)

// Store is the configuration store. It starts with an empty document
// until Load replaces it.
type Store struct {
	catalog *catalog.Catalog
	guard   *pathguard.Guard
	backups ports.BackupStore
	log     ports.Logger

	doc      *domain.ConfigDocument
	path     string
	warnings []string
}

// New builds a store around the given catalog, guard and backup store.
func New(cat *catalog.Catalog, guard *pathguard.Guard, backups ports.BackupStore, log ports.Logger) *Store {
	return &Store{
		catalog: cat,
		guard:   guard,
		backups: backups,
		log:     log,
		doc:     domain.NewDocument(),
	}
}

// Load reads and parses the config file at path, replacing the live
// document. Codec warnings are retained for Warnings().
func (s *Store) Load(path string) error {
	if err := s.guard.Check(path); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config file %s: %w", path, domain.ErrNotFound)
		}
		return fmt.Errorf("read config: %w", err)
	}

	doc, warnings, err := gameini.Parse(data)
	if err != nil {
		var dec *domain.DecodeError
		if errors.As(err, &dec) && dec.Path == "" {
			dec.Path = path
		}
		return err
	}

	s.doc = doc
	s.path = path
	s.warnings = warnings
	for _, w := range warnings {
		s.log.Warn("config parse warning", map[string]interface{}{"path": path, "warning": w})
	}
	return nil
}

// Bind points the store at a config file that does not exist yet, so
// the first Save knows where to write. The document stays as-is.
func (s *Store) Bind(path string) {
	s.path = path
}

// Get returns the canonical value for a catalog key: the document value
// when set and convertible, otherwise the catalog default. A raw value
// that fails conversion records a warning instead of erroring.
func (s *Store) Get(key string) (string, error) {
	def, ok := s.catalog.Lookup(key)
	if !ok {
		return "", fmt.Errorf("setting %q: %w", key, domain.ErrNotFound)
	}
	raw, set := s.doc.Get(def.Section, def.StorageKey())
	if !set {
		return def.Default, nil
	}
	canonical, err := catalog.CanonicalValue(def, raw)
	if err != nil {
		s.warnings = append(s.warnings, fmt.Sprintf("setting %s holds unusable value %q, using default", key, raw))
		s.log.Warn("unusable stored value", map[string]interface{}{"key": key, "value": raw})
		return def.Default, nil
	}
	return canonical, nil
}

// GetBool reads a boolean-kind setting.
func (s *Store) GetBool(key string) (bool, error) {
	v, err := s.Get(key)
	if err != nil {
		return false, err
	}
	return v == "True", nil
}

// GetNumber reads a number-kind setting.
func (s *Store) GetNumber(key string) (float64, error) {
	v, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("setting %q is not numeric: %w", key, err)
	}
	return n, nil
}

// Set validates value against the key's definition and writes its
// canonical form into the document, creating the section when absent.
// On validation failure the document is untouched.
func (s *Store) Set(key string, value interface{}) error {
	def, ok := s.catalog.Lookup(key)
	if !ok {
		return fmt.Errorf("setting %q: %w", key, domain.ErrNotFound)
	}
	canonical, err := catalog.CanonicalValue(def, coerce(value))
	if err != nil {
		return err
	}
	s.doc.Set(def.Section, def.StorageKey(), canonical)
	s.log.Debug("setting updated", map[string]interface{}{"key": key, "value": canonical})
	return nil
}

// Apply sets every entry of a preset or profile, all-or-nothing: the
// whole map is validated first and nothing is written unless every
// entry passes. Unknown keys are reported in the returned error.
func (s *Store) Apply(settings map[string]string) error {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	type pending struct {
		def   domain.SettingDefinition
		value string
	}
	var errs []error
	staged := make([]pending, 0, len(keys))
	for _, key := range keys {
		def, ok := s.catalog.Lookup(key)
		if !ok {
			errs = append(errs, fmt.Errorf("setting %q: %w", key, domain.ErrNotFound))
			continue
		}
		canonical, err := catalog.CanonicalValue(def, settings[key])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		staged = append(staged, pending{def: def, value: canonical})
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for _, p := range staged {
		s.doc.Set(p.def.Section, p.def.StorageKey(), p.value)
	}
	return nil
}

// Save serializes the document to path. An existing file is snapshotted
// by the backup store first; a failed snapshot aborts the save. The new
// content lands via temp-write plus rename.
func (s *Store) Save(path string) error {
	if err := s.guard.Check(path); err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := s.backups.Create(path); err != nil {
			return fmt.Errorf("backup before save: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config: %w", err)
	}

	if err := filesystem.ReplaceFile(path, gameini.Serialize(s.doc)); err != nil {
		return err
	}
	s.path = path
	s.log.Info("config saved", map[string]interface{}{"path": path})
	return nil
}

// ResetToDefaults writes every catalog default into the document.
func (s *Store) ResetToDefaults() error {
	for _, def := range s.catalog.All() {
		s.doc.Set(def.Section, def.StorageKey(), def.Default)
	}
	return nil
}

// Document returns a deep copy of the live document.
func (s *Store) Document() *domain.ConfigDocument {
	return s.doc.Clone()
}

// Path returns the file the document was loaded from or saved to last.
func (s *Store) Path() string {
	return s.path
}

// Warnings returns parse and conversion warnings collected so far.
func (s *Store) Warnings() []string {
	return append([]string(nil), s.warnings...)
}

func coerce(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

var _ ports.ConfigStore = (*Store)(nil)
