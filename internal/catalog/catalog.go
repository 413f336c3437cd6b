// Package catalog holds the static registry of every known ARC Raiders
// setting: where each key lives in the config file, how it validates,
// and the metadata a presentation layer needs to render it. The catalog
// is compiled-in data and read-only for the life of the process.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/highvelocity/arctuner/internal/domain"
)

// Catalog indexes setting definitions and built-in presets.
type Catalog struct {
	defs        []domain.SettingDefinition
	index       map[string]domain.SettingDefinition
	categories  []string
	presets     []domain.Preset
	presetIndex map[string]domain.Preset
}

// New builds a catalog from definitions and presets. Duplicate setting
// keys or preset names are rejected.
func New(defs []domain.SettingDefinition, presets []domain.Preset) (*Catalog, error) {
	c := &Catalog{
		index:       make(map[string]domain.SettingDefinition, len(defs)),
		presetIndex: make(map[string]domain.Preset, len(presets)),
	}
	seenCat := make(map[string]bool)
	for _, d := range defs {
		if _, dup := c.index[d.Key]; dup {
			return nil, fmt.Errorf("duplicate setting key %q", d.Key)
		}
		c.index[d.Key] = d
		c.defs = append(c.defs, d)
		if !seenCat[d.Category] {
			seenCat[d.Category] = true
			c.categories = append(c.categories, d.Category)
		}
	}
	for _, p := range presets {
		if _, dup := c.presetIndex[p.Name]; dup {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		c.presetIndex[p.Name] = p
		c.presets = append(c.presets, p)
	}
	return c, nil
}

// Default returns the compiled-in ARC Raiders catalog.
func Default() *Catalog {
	c, err := New(Definitions(), Presets())
	if err != nil {
		// compiled-in data; a duplicate is a programming error
		panic(err)
	}
	return c
}

// Lookup finds a definition by catalog key.
func (c *Catalog) Lookup(key string) (domain.SettingDefinition, bool) {
	d, ok := c.index[key]
	return d, ok
}

// All returns every definition in declaration order.
func (c *Catalog) All() []domain.SettingDefinition {
	return c.defs
}

// Categories returns category names in first-seen order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// ByCategory returns definitions belonging to one UI category.
func (c *Catalog) ByCategory(category string) []domain.SettingDefinition {
	var out []domain.SettingDefinition
	for _, d := range c.defs {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// DefaultValue returns the catalog default for a key.
func (c *Catalog) DefaultValue(key string) (string, error) {
	d, ok := c.index[key]
	if !ok {
		return "", fmt.Errorf("setting %q: %w", key, domain.ErrNotFound)
	}
	return d.Default, nil
}

// Preset finds a built-in preset by name.
func (c *Catalog) Preset(name string) (domain.Preset, bool) {
	p, ok := c.presetIndex[name]
	return p, ok
}

// Presets returns all built-in presets in declaration order.
func (c *Catalog) Presets() []domain.Preset {
	return c.presets
}

// Canonicalize validates a raw value against the key's definition and
// returns its canonical text form. Choice labels resolve to their
// internal value before validation.
func (c *Catalog) Canonicalize(key, value string) (string, error) {
	d, ok := c.index[key]
	if !ok {
		return "", fmt.Errorf("setting %q: %w", key, domain.ErrNotFound)
	}
	return CanonicalValue(d, value)
}

// Validate reports whether a value is acceptable for a key.
func (c *Catalog) Validate(key, value string) error {
	_, err := c.Canonicalize(key, value)
	return err
}

// CanonicalValue converts a raw value to the canonical text form for
// one definition, or returns a *domain.ValidationError.
func CanonicalValue(d domain.SettingDefinition, value string) (string, error) {
	value = strings.TrimSpace(value)
	switch d.Kind {
	case domain.KindBoolean:
		switch strings.ToLower(value) {
		case "true", "1":
			return "True", nil
		case "false", "0":
			return "False", nil
		}
		return "", &domain.ValidationError{Key: d.Key, Value: value, Constraint: "must be True or False"}
	case domain.KindNumber:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", &domain.ValidationError{Key: d.Key, Value: value, Constraint: "must be a number"}
		}
		if n < d.Min || n > d.Max {
			return "", &domain.ValidationError{
				Key:        d.Key,
				Value:      value,
				Constraint: fmt.Sprintf("must be between %s and %s", formatNumber(d.Min), formatNumber(d.Max)),
			}
		}
		return formatNumber(n), nil
	case domain.KindChoice, domain.KindFreeChoice:
		if v, ok := resolveOption(d.Options, value); ok {
			return v, nil
		}
		if d.Kind == domain.KindFreeChoice {
			if value == "" {
				return "", &domain.ValidationError{Key: d.Key, Value: value, Constraint: "must not be empty"}
			}
			return value, nil
		}
		return "", &domain.ValidationError{
			Key:        d.Key,
			Value:      value,
			Constraint: "must be one of " + strings.Join(optionValues(d.Options), ", "),
		}
	default:
		return "", &domain.ValidationError{Key: d.Key, Value: value, Constraint: "unknown setting kind"}
	}
}

func resolveOption(options []domain.ChoiceOption, value string) (string, bool) {
	for _, o := range options {
		if o.Value == value {
			return o.Value, true
		}
	}
	for _, o := range options {
		if strings.EqualFold(o.Value, value) || (o.Label != "" && strings.EqualFold(o.Label, value)) {
			return o.Value, true
		}
	}
	return "", false
}

func optionValues(options []domain.ChoiceOption) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Value
	}
	return out
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
