// Package gameini reads and writes the Unreal GameUserSettings.ini
// dialect. It is deliberately not a general INI codec: section names may
// contain '/' and '.', duplicate section headers merge into the first
// occurrence, and values are taken verbatim after the first '='.
package gameini

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/highvelocity/arctuner/internal/domain"
)

// Parse decodes file content into a document. Structurally odd input
// never fails the parse; stray lines are dropped and reported as
// warnings. Only content that is not valid text fails, with a
// *domain.DecodeError.
func Parse(data []byte) (*domain.ConfigDocument, []string, error) {
	if !utf8.Valid(data) {
		return nil, nil, &domain.DecodeError{Err: fmt.Errorf("invalid UTF-8")}
	}

	doc := domain.NewDocument()
	var warnings []string
	var current *domain.Section

	for i, line := range splitLines(string(data)) {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			if current != nil {
				current.AppendRaw("")
			} else {
				doc.AppendPreamble("")
			}
		case strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "#"):
			if current != nil {
				current.AppendRaw(line)
			} else {
				doc.AppendPreamble(line)
			}
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			name := trimmed[1 : len(trimmed)-1]
			current = doc.EnsureSection(name)
		case strings.Contains(trimmed, "="):
			if current == nil {
				warnings = append(warnings, fmt.Sprintf("line %d: key/value outside any section dropped", i+1))
				continue
			}
			key, value, _ := strings.Cut(trimmed, "=")
			current.Set(strings.TrimSpace(key), strings.TrimSpace(value))
		default:
			warnings = append(warnings, fmt.Sprintf("line %d: unrecognized line dropped: %q", i+1, trimmed))
		}
	}

	return doc, warnings, nil
}

// Serialize writes the document back out: sections in first-seen order,
// keys in first-seen order, comments and blanks at their original
// positions, LF line endings on every platform.
func Serialize(doc *domain.ConfigDocument) []byte {
	var b strings.Builder
	for _, raw := range doc.Preamble() {
		b.WriteString(raw)
		b.WriteByte('\n')
	}
	for _, sec := range doc.SectionList() {
		b.WriteByte('[')
		b.WriteString(sec.Name())
		b.WriteString("]\n")
		for _, e := range sec.Entries() {
			if e.IsRaw {
				b.WriteString(e.Raw)
			} else {
				b.WriteString(e.Key)
				b.WriteByte('=')
				b.WriteString(e.Value)
			}
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}

// splitLines normalizes CRLF and lone CR to LF and drops the phantom
// element a trailing newline would produce.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
