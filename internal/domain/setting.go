package domain

// SettingKind classifies how a setting's raw text value is interpreted
// and validated.
type SettingKind int

const (
	// KindBoolean is a True/False toggle.
	KindBoolean SettingKind = iota
	// KindNumber is an integer or float constrained by Min/Max.
	KindNumber
	// KindChoice is a value from a fixed option set.
	KindChoice
	// KindFreeChoice is a suggested option set that also accepts any
	// non-empty value.
	KindFreeChoice
)

func (k SettingKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindChoice:
		return "choice"
	case KindFreeChoice:
		return "free-choice"
	default:
		return "unknown"
	}
}

// ImpactLevel ranks how strongly a setting affects frame rate.
type ImpactLevel int

const (
	ImpactLow ImpactLevel = iota
	ImpactMedium
	ImpactHigh
	ImpactVeryHigh
)

func (i ImpactLevel) String() string {
	switch i {
	case ImpactLow:
		return "Low"
	case ImpactMedium:
		return "Medium"
	case ImpactHigh:
		return "High"
	case ImpactVeryHigh:
		return "Very High"
	default:
		return "Unknown"
	}
}

// ChoiceOption is one allowed value of a choice setting. The engine
// stores Value; Label is the human reading of it. A plain option has an
// empty Label.
type ChoiceOption struct {
	Value string
	Label string
}

// Display returns the label, falling back to the stored value.
func (o ChoiceOption) Display() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// SettingDefinition describes one known configuration key: where it
// lives in the file, how it validates, and how a UI should present it.
// Definitions are immutable once the catalog is built.
type SettingDefinition struct {
	// Key uniquely identifies the setting within the catalog.
	Key string
	// FileKey is the key written into the config file. Empty means Key.
	// Distinct only where two sections carry the same file key.
	FileKey string
	// Section is the config file section owning the key.
	Section string

	Kind    SettingKind
	Options []ChoiceOption
	Min     float64
	Max     float64
	Default string

	DisplayName string
	Description string
	Impact      ImpactLevel
	Category    string
}

// StorageKey returns the key as written into the config file.
func (d SettingDefinition) StorageKey() string {
	if d.FileKey != "" {
		return d.FileKey
	}
	return d.Key
}
