// Package tuner orchestrates the configuration store, backup and
// profile managers, and the history trail behind the CLI surface. It
// enforces the ordering rules: snapshot before overwrite, validate all
// before apply.
package tuner

import (
	"fmt"

	"github.com/highvelocity/arctuner/internal/catalog"
	"github.com/highvelocity/arctuner/internal/domain"
	"github.com/highvelocity/arctuner/internal/ports"
)

// Service wires the core operations the presentation layer calls.
type Service struct {
	Store    ports.ConfigStore
	Backups  ports.BackupStore
	Profiles ports.ProfileStore
	History  ports.HistoryStore
	Catalog  *catalog.Catalog
	Logger   ports.Logger
}

// Set validates and writes one setting into the live document.
func (s *Service) Set(key, value string) error {
	old, err := s.Store.Get(key)
	if err != nil {
		return err
	}
	if err := s.Store.Set(key, value); err != nil {
		return err
	}
	newValue, _ := s.Store.Get(key)
	s.record(domain.ChangeRecord{Action: domain.ActionSet, Key: key, OldValue: old, NewValue: newValue})
	return nil
}

// SaveConfig persists the live document to the file it was loaded from.
func (s *Service) SaveConfig() error {
	path := s.Store.Path()
	if path == "" {
		return fmt.Errorf("no config loaded: %w", domain.ErrNotFound)
	}
	if err := s.Store.Save(path); err != nil {
		return err
	}
	s.record(domain.ChangeRecord{Action: domain.ActionSave, Path: path})
	return nil
}

// ApplyPreset applies a built-in preset, all-or-nothing.
func (s *Service) ApplyPreset(name string) error {
	preset, ok := s.Catalog.Preset(name)
	if !ok {
		return fmt.Errorf("preset %q: %w", name, domain.ErrNotFound)
	}
	if err := s.Store.Apply(preset.Settings); err != nil {
		return err
	}
	s.record(domain.ChangeRecord{Action: domain.ActionApplyPreset, Key: name})
	return nil
}

// ApplyProfile loads a saved profile and applies it, all-or-nothing.
// Keys unknown to the catalog are returned as warnings, not applied.
func (s *Service) ApplyProfile(name string) ([]string, error) {
	p, unknown, err := s.Profiles.Load(name)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Apply(p.Settings); err != nil {
		return unknown, err
	}
	s.record(domain.ChangeRecord{Action: domain.ActionApplyProfile, Key: name})
	return unknown, nil
}

// SaveProfile snapshots the currently-set catalog keys under a name.
// Unset keys are omitted so reapplying the profile does not invent
// values the file never had.
func (s *Service) SaveProfile(name string) (domain.Profile, error) {
	doc := s.Store.Document()
	settings := make(map[string]string)
	for _, def := range s.Catalog.All() {
		if raw, ok := doc.Get(def.Section, def.StorageKey()); ok {
			settings[def.Key] = raw
		}
	}
	return s.Profiles.Save(name, settings)
}

// CreateBackup snapshots the config file on explicit user request.
func (s *Service) CreateBackup() (domain.BackupRecord, error) {
	path := s.Store.Path()
	if path == "" {
		return domain.BackupRecord{}, fmt.Errorf("no config loaded: %w", domain.ErrNotFound)
	}
	return s.Backups.Create(path)
}

// RestoreBackup finds a backup by filename, snapshots the current file,
// restores the backup over it, and reloads the document.
func (s *Service) RestoreBackup(name string) error {
	path := s.Store.Path()
	if path == "" {
		return fmt.Errorf("no config loaded: %w", domain.ErrNotFound)
	}

	records, err := s.Backups.List()
	if err != nil {
		return err
	}
	var rec *domain.BackupRecord
	for i := range records {
		if records[i].Name == name {
			rec = &records[i]
			break
		}
	}
	if rec == nil {
		return fmt.Errorf("backup %q: %w", name, domain.ErrNotFound)
	}

	if _, err := s.Backups.CreateTagged(path, "pre_restore"); err != nil {
		return fmt.Errorf("snapshot before restore: %w", err)
	}
	if err := s.Backups.Restore(*rec, path); err != nil {
		return err
	}
	if err := s.Store.Load(path); err != nil {
		return err
	}
	s.record(domain.ChangeRecord{Action: domain.ActionRestore, Key: name, Path: path})
	return nil
}

// ResetDefaults writes every catalog default into the live document.
func (s *Service) ResetDefaults() error {
	if err := s.Store.ResetToDefaults(); err != nil {
		return err
	}
	s.record(domain.ChangeRecord{Action: domain.ActionReset})
	return nil
}

// record writes a history entry; history failures are logged and never
// fail the operation they describe.
func (s *Service) record(rec domain.ChangeRecord) {
	if s.History == nil {
		return
	}
	if rec.Path == "" {
		rec.Path = s.Store.Path()
	}
	if err := s.History.Record(rec); err != nil && s.Logger != nil {
		s.Logger.Warn("history record failed", map[string]interface{}{"action": rec.Action, "error": err.Error()})
	}
}
