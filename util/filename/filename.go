// Package filename sanitizes uploaded file names before they touch disk.
package filename

import (
	"path/filepath"
	"strings"
)

// Sanitize strips directory components and any rune outside a safe
// filename charset. Spaces become underscores. Returns "" when nothing
// safe remains (e.g. "." or ".."), which callers treat as no file.
func Sanitize(name string) string {
	// Both separators: clients may send Windows-style paths.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), ".")
	return out
}

// Ext returns the lowercased extension of name without the leading dot,
// or "" when the name has none.
func Ext(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
