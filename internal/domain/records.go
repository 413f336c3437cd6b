package domain

import "time"

// Preset is a built-in, immutable bundle of setting values.
type Preset struct {
	Name        string
	Description string
	Settings    map[string]string
}

// Profile is a user-created, named bundle of setting values persisted
// outside the live config file.
type Profile struct {
	Name     string            `yaml:"name"`
	Created  time.Time         `yaml:"created"`
	Settings map[string]string `yaml:"settings"`
}

// BackupRecord points at one timestamped byte copy of the config file.
type BackupRecord struct {
	Name    string
	Path    string
	Created time.Time
	Size    int64
}

// ChangeRecord is one audit entry describing a mutation that went
// through the store.
type ChangeRecord struct {
	ID        string
	Timestamp time.Time
	Action    string
	Key       string
	OldValue  string
	NewValue  string
	Path      string
}

// Change actions recorded in the history store.
const (
	ActionSet          = "set"
	ActionApplyPreset  = "apply-preset"
	ActionApplyProfile = "apply-profile"
	ActionSave         = "save"
	ActionRestore      = "restore"
	ActionReset        = "reset"
)
