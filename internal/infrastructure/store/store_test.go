package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/highvelocity/arctuner/internal/catalog"
	"github.com/highvelocity/arctuner/internal/domain"
	"github.com/highvelocity/arctuner/internal/infrastructure/backup"
	"github.com/highvelocity/arctuner/internal/infrastructure/pathguard"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

type failingBackups struct{}

func (failingBackups) Create(string) (domain.BackupRecord, error) {
	return domain.BackupRecord{}, errors.New("disk full")
}
func (failingBackups) CreateTagged(string, string) (domain.BackupRecord, error) {
	return domain.BackupRecord{}, errors.New("disk full")
}
func (failingBackups) List() ([]domain.BackupRecord, error)      { return nil, nil }
func (failingBackups) Restore(domain.BackupRecord, string) error { return errors.New("disk full") }
func (failingBackups) Delete(domain.BackupRecord) error          { return errors.New("disk full") }

func newTestStore(t *testing.T) (*Store, string, *backup.Manager) {
	t.Helper()
	dir := t.TempDir()
	guard := pathguard.New(dir)
	backups := backup.NewManager(filepath.Join(dir, "ArcTuner_Backups"), guard)
	s := New(catalog.Default(), guard, backups, nopLogger{})
	return s, dir, backups
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "GameUserSettings.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGetReturnsDefaultWhenUnset(t *testing.T) {
	s, _, _ := newTestStore(t)

	v, err := s.Get("DLSSMode")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if v != "Quality" {
		t.Fatalf("Get(DLSSMode) = %q, want Quality", v)
	}

	on, err := s.GetBool("bSmoothFrameRate")
	if err != nil || !on {
		t.Fatalf("GetBool(bSmoothFrameRate) = %v, %v; want true", on, err)
	}

	n, err := s.GetNumber("FrameRateLimit")
	if err != nil || n != 0 {
		t.Fatalf("GetNumber(FrameRateLimit) = %v, %v; want 0", n, err)
	}
}

func TestGetUnknownKey(t *testing.T) {
	s, _, _ := newTestStore(t)
	if _, err := s.Get("NoSuchSetting"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestSetThenGet(t *testing.T) {
	s, _, _ := newTestStore(t)

	if err := s.Set("FrameRateLimit", 120); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	v, err := s.Get("FrameRateLimit")
	if err != nil || v != "120" {
		t.Fatalf("Get() = %q, %v; want 120", v, err)
	}

	if err := s.Set("bUseVSync", true); err != nil {
		t.Fatalf("Set(bool) error = %v", err)
	}
	v, _ = s.Get("bUseVSync")
	if v != "True" {
		t.Fatalf("Get(bUseVSync) = %q, want True", v)
	}
}

func TestSetRejectsInvalidAndKeepsDocument(t *testing.T) {
	s, _, _ := newTestStore(t)

	var verr *domain.ValidationError
	if err := s.Set("DLSSMode", "Extreme"); !errors.As(err, &verr) {
		t.Fatalf("Set(invalid) error = %v, want *domain.ValidationError", err)
	}
	v, _ := s.Get("DLSSMode")
	if v != "Quality" {
		t.Fatalf("document changed on failed Set: Get = %q", v)
	}
}

func TestApplyAllOrNothing(t *testing.T) {
	s, _, _ := newTestStore(t)

	err := s.Apply(map[string]string{
		"DLSSMode":         "Performance",
		"sg.ShadowQuality": "9",
	})
	if err == nil {
		t.Fatal("Apply() with an invalid entry = nil error")
	}
	if v, _ := s.Get("DLSSMode"); v != "Quality" {
		t.Fatalf("valid entry applied despite batch failure: Get = %q", v)
	}
}

func TestApplyReportsUnknownKeys(t *testing.T) {
	s, _, _ := newTestStore(t)

	err := s.Apply(map[string]string{"NoSuchSetting": "1", "bUseVSync": "true"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Apply() error = %v, want ErrNotFound in chain", err)
	}
	if !strings.Contains(err.Error(), "NoSuchSetting") {
		t.Fatalf("Apply() error %q does not name the unknown key", err)
	}
	if v, _ := s.Get("bUseVSync"); v != "False" {
		t.Fatalf("valid entry applied despite batch failure: Get = %q", v)
	}
}

func TestApplySucceeds(t *testing.T) {
	s, _, _ := newTestStore(t)

	err := s.Apply(map[string]string{
		"DLSSMode":         "Performance",
		"sg.ShadowQuality": "2",
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if v, _ := s.Get("DLSSMode"); v != "Performance" {
		t.Fatalf("Get(DLSSMode) = %q", v)
	}
	if v, _ := s.Get("sg.ShadowQuality"); v != "2" {
		t.Fatalf("Get(sg.ShadowQuality) = %q", v)
	}
}

func TestLoadReadsValuesAndWarnings(t *testing.T) {
	s, dir, _ := newTestStore(t)
	path := writeConfig(t, dir, "[/Script/EmbarkUserSettings.EmbarkGameUserSettings]\nDLSSMode=Balanced\nstray line\n")

	if err := s.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v, _ := s.Get("DLSSMode"); v != "Balanced" {
		t.Fatalf("Get(DLSSMode) = %q, want Balanced", v)
	}
	if len(s.Warnings()) != 1 {
		t.Fatalf("Warnings() = %v, want one stray-line warning", s.Warnings())
	}
	if s.Path() != path {
		t.Fatalf("Path() = %q, want %q", s.Path(), path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, dir, _ := newTestStore(t)
	err := s.Load(filepath.Join(dir, "GameUserSettings.ini"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Load(missing) error = %v, want ErrNotFound", err)
	}
}

func TestLoadRejectsPathOutsideRoots(t *testing.T) {
	s, _, _ := newTestStore(t)
	outside := filepath.Join(t.TempDir(), "GameUserSettings.ini")
	if err := os.WriteFile(outside, []byte("[A]\nx=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var sec *domain.PathSecurityError
	if err := s.Load(outside); !errors.As(err, &sec) {
		t.Fatalf("Load(outside) error = %v, want *domain.PathSecurityError", err)
	}
}

func TestGetFallsBackOnUnusableStoredValue(t *testing.T) {
	s, dir, _ := newTestStore(t)
	path := writeConfig(t, dir, "[/Script/EmbarkUserSettings.EmbarkGameUserSettings]\nDLSSMode=garbage\n")

	if err := s.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	v, err := s.Get("DLSSMode")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if v != "Quality" {
		t.Fatalf("Get() = %q, want the default Quality", v)
	}
	if len(s.Warnings()) == 0 {
		t.Fatal("unusable value produced no warning")
	}
}

func TestSaveBacksUpExistingFileFirst(t *testing.T) {
	s, dir, backups := newTestStore(t)
	original := "[/Script/EmbarkUserSettings.EmbarkGameUserSettings]\nDLSSMode=Quality\n"
	path := writeConfig(t, dir, original)

	if err := s.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := s.Set("DLSSMode", "Performance"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	records, err := backups.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("backups after save = %d, want 1", len(records))
	}
	snapshot, err := os.ReadFile(records[0].Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(snapshot) != original {
		t.Fatalf("backup content = %q, want pre-save content %q", snapshot, original)
	}

	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(saved), "DLSSMode=Performance") {
		t.Fatalf("saved file missing new value:\n%s", saved)
	}
}

func TestSaveAbortsWhenBackupFails(t *testing.T) {
	dir := t.TempDir()
	guard := pathguard.New(dir)
	s := New(catalog.Default(), guard, failingBackups{}, nopLogger{})
	original := "[/Script/EmbarkUserSettings.EmbarkGameUserSettings]\nDLSSMode=Quality\n"
	path := writeConfig(t, dir, original)

	if err := s.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := s.Set("DLSSMode", "Performance"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Save(path); err == nil {
		t.Fatal("Save() with failing backup store = nil error")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != original {
		t.Fatalf("file changed despite aborted save:\n%s", after)
	}
}

func TestSaveSkipsBackupForNewFile(t *testing.T) {
	dir := t.TempDir()
	guard := pathguard.New(dir)
	s := New(catalog.Default(), guard, failingBackups{}, nopLogger{})
	path := filepath.Join(dir, "GameUserSettings.ini")

	s.Bind(path)
	if err := s.Set("bUseVSync", "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	// the failing backup store must never be consulted for a first save
	if err := s.Save(path); err != nil {
		t.Fatalf("Save(new file) error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}

func TestSaveIsByteStable(t *testing.T) {
	s, dir, _ := newTestStore(t)
	original := "; header\n[/Script/EmbarkUserSettings.EmbarkGameUserSettings]\nDLSSMode=Balanced\n\n[ScalabilityGroups]\nsg.ShadowQuality=2\n"
	path := writeConfig(t, dir, original)

	if err := s.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != original {
		t.Fatalf("unmodified save changed bytes:\ngot  %q\nwant %q", after, original)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s, dir, _ := newTestStore(t)
	path := writeConfig(t, dir, "[ScalabilityGroups]\nsg.ShadowQuality=3\n")

	if err := s.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

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

func TestSaveRejectsPathOutsideRoots(t *testing.T) {
	s, _, _ := newTestStore(t)
	outside := filepath.Join(t.TempDir(), "GameUserSettings.ini")

	var sec *domain.PathSecurityError
	if err := s.Save(outside); !errors.As(err, &sec) {
		t.Fatalf("Save(outside) error = %v, want *domain.PathSecurityError", err)
	}
	if _, err := os.Stat(outside); !os.IsNotExist(err) {
		t.Fatal("rejected save still touched the filesystem")
	}
}

func TestResetToDefaults(t *testing.T) {
	s, _, _ := newTestStore(t)

	if err := s.Set("DLSSMode", "Performance"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.ResetToDefaults(); err != nil {
		t.Fatalf("ResetToDefaults() error = %v", err)
	}
	if v, _ := s.Get("DLSSMode"); v != "Quality" {
		t.Fatalf("Get(DLSSMode) after reset = %q, want Quality", v)
	}

	doc := s.Document()
	if _, ok := doc.Get("ScalabilityGroups", "sg.ShadowQuality"); !ok {
		t.Fatal("reset did not materialize scalability defaults")
	}
}

func TestDocumentReturnsIndependentCopy(t *testing.T) {
	s, _, _ := newTestStore(t)
	if err := s.Set("bUseVSync", "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	doc := s.Document()
	doc.Set("/Script/EmbarkUserSettings.EmbarkGameUserSettings", "bUseVSync", "False")

	if v, _ := s.Get("bUseVSync"); v != "True" {
		t.Fatal("mutating the Document() copy leaked into the store")
	}
}
