package paths

import (
	"bufio"
	"io"
	"strings"
)

// ExtractVDFPaths pulls every value keyed "path" (any nesting depth, any
// case) out of a Valve KeyValues manifest such as libraryfolders.vdf,
// in document order. The format is line oriented: a line is either a
// quoted key with a quoted-or-bare value, a key opening a brace block,
// or a lone brace. Anything the scanner does not recognize is skipped;
// unterminated blocks simply end the scan. It never returns an error:
// a malformed manifest yields whatever paths were recognized before and
// after the damage.
func ExtractVDFPaths(r io.Reader) []string {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "{" || line == "}" {
			continue
		}
		if strings.HasPrefix(line, "//") {
			continue
		}
		tokens, ok := tokenizeVDFLine(line)
		if !ok || len(tokens) < 2 {
			continue
		}
		if strings.EqualFold(tokens[0], "path") {
			out = append(out, tokens[1])
		}
	}
	return out
}

// tokenizeVDFLine splits one line into quoted or bare tokens. A quoted
// token honors backslash escapes; an unterminated quote marks the line
// malformed.
func tokenizeVDFLine(line string) ([]string, bool) {
	var tokens []string
	i := 0
	for i < len(line) {
		switch {
		case line[i] == ' ' || line[i] == '\t':
			i++
		case line[i] == '"':
			var b strings.Builder
			i++
			closed := false
			for i < len(line) {
				c := line[i]
				if c == '\\' && i+1 < len(line) {
					b.WriteByte(line[i+1])
					i += 2
					continue
				}
				if c == '"' {
					closed = true
					i++
					break
				}
				b.WriteByte(c)
				i++
			}
			if !closed {
				return nil, false
			}
			tokens = append(tokens, b.String())
		default:
			start := i
			for i < len(line) && line[i] != ' ' && line[i] != '\t' {
				i++
			}
			tokens = append(tokens, line[start:i])
		}
	}
	return tokens, true
}
