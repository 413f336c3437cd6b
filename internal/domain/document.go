package domain

// ConfigDocument is the in-memory form of one GameUserSettings-style
// file: sections in first-seen order, each holding key/value entries in
// first-seen order. Comment and blank lines are carried as raw entries
// so an unmodified document serializes back to what was parsed.
type ConfigDocument struct {
	preamble []string
	sections []*Section
	index    map[string]*Section
}

// Section is one [name] block of a ConfigDocument.
type Section struct {
	name    string
	entries []Entry
	keys    map[string]int
}

// Entry is a single line belonging to a section. IsRaw entries are
// comments or blank lines kept only for round-trip output.
type Entry struct {
	Key   string
	Value string
	Raw   string
	IsRaw bool
}

// NewDocument returns an empty document.
func NewDocument() *ConfigDocument {
	return &ConfigDocument{index: make(map[string]*Section)}
}

// AppendPreamble keeps a comment or blank line that appeared before the
// first section header.
func (d *ConfigDocument) AppendPreamble(raw string) {
	d.preamble = append(d.preamble, raw)
}

// Preamble returns lines recorded before the first section.
func (d *ConfigDocument) Preamble() []string {
	return d.preamble
}

// EnsureSection returns the section with the given name, creating it at
// the end of the document when absent. A duplicate header therefore
// merges into the first occurrence.
func (d *ConfigDocument) EnsureSection(name string) *Section {
	if s, ok := d.index[name]; ok {
		return s
	}
	s := &Section{name: name, keys: make(map[string]int)}
	d.sections = append(d.sections, s)
	d.index[name] = s
	return s
}

// Lookup finds a section without creating it.
func (d *ConfigDocument) Lookup(name string) (*Section, bool) {
	s, ok := d.index[name]
	return s, ok
}

// Sections returns section names in first-seen order.
func (d *ConfigDocument) Sections() []string {
	names := make([]string, len(d.sections))
	for i, s := range d.sections {
		names[i] = s.name
	}
	return names
}

// SectionList returns the sections themselves in first-seen order.
func (d *ConfigDocument) SectionList() []*Section {
	return d.sections
}

// Get reads a raw value. The second return distinguishes an unset key
// from one set to the empty string.
func (d *ConfigDocument) Get(section, key string) (string, bool) {
	s, ok := d.index[section]
	if !ok {
		return "", false
	}
	return s.Get(key)
}

// Set writes a raw value, creating the section when needed. A new
// section created by mutation is visually separated from the previous
// one with a blank line.
func (d *ConfigDocument) Set(section, key, value string) {
	s, ok := d.index[section]
	if !ok {
		d.padLastSection()
		s = d.EnsureSection(section)
	}
	s.Set(key, value)
}

// Delete removes a key from a section. Reports whether it was present.
func (d *ConfigDocument) Delete(section, key string) bool {
	s, ok := d.index[section]
	if !ok {
		return false
	}
	return s.Delete(key)
}

// Len returns the number of sections.
func (d *ConfigDocument) Len() int {
	return len(d.sections)
}

// Flatten returns every set key as "key" -> value, with keys qualified
// only by their own name. Later sections never shadow earlier ones.
func (d *ConfigDocument) Flatten() map[string]string {
	out := make(map[string]string)
	for _, s := range d.sections {
		for _, e := range s.entries {
			if e.IsRaw {
				continue
			}
			if _, seen := out[e.Key]; !seen {
				out[e.Key] = e.Value
			}
		}
	}
	return out
}

// Clone deep-copies the document.
func (d *ConfigDocument) Clone() *ConfigDocument {
	out := NewDocument()
	out.preamble = append([]string(nil), d.preamble...)
	for _, s := range d.sections {
		ns := out.EnsureSection(s.name)
		ns.entries = append([]Entry(nil), s.entries...)
		for k, i := range s.keys {
			ns.keys[k] = i
		}
	}
	return out
}

func (d *ConfigDocument) padLastSection() {
	if len(d.sections) == 0 {
		return
	}
	last := d.sections[len(d.sections)-1]
	if n := len(last.entries); n > 0 && last.entries[n-1].IsRaw && last.entries[n-1].Raw == "" {
		return
	}
	last.entries = append(last.entries, Entry{IsRaw: true})
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Entries returns the section's lines in order.
func (s *Section) Entries() []Entry {
	return s.entries
}

// Keys returns set keys in first-seen order.
func (s *Section) Keys() []string {
	var out []string
	for _, e := range s.entries {
		if !e.IsRaw {
			out = append(out, e.Key)
		}
	}
	return out
}

// Get reads a value from the section.
func (s *Section) Get(key string) (string, bool) {
	i, ok := s.keys[key]
	if !ok {
		return "", false
	}
	return s.entries[i].Value, true
}

// Set updates a key in place or appends it at the end of the section.
// A duplicate key keeps its first position; the last value wins.
func (s *Section) Set(key, value string) {
	if i, ok := s.keys[key]; ok {
		s.entries[i].Value = value
		return
	}
	s.keys[key] = len(s.entries)
	s.entries = append(s.entries, Entry{Key: key, Value: value})
}

// Delete removes a key and its line.
func (s *Section) Delete(key string) bool {
	i, ok := s.keys[key]
	if !ok {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.keys, key)
	for k, j := range s.keys {
		if j > i {
			s.keys[k] = j - 1
		}
	}
	return true
}

// AppendRaw keeps a comment or blank line at the current position.
func (s *Section) AppendRaw(raw string) {
	s.entries = append(s.entries, Entry{Raw: raw, IsRaw: true})
}
