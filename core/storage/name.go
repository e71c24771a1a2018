package storage

import (
	"fmt"
	"path"
	"strings"
)

// MaxNameLength is the longest accepted document name in bytes.
const MaxNameLength = 255

// ValidateName checks that name is a safe, single-segment document name:
// non-empty, at most MaxNameLength bytes, made of ASCII letters, digits,
// '.', '-' and '_', and not starting with '.'.
// The rules keep names inside the store root on every backend.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	case len(name) > MaxNameLength:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, MaxNameLength)
	case name[0] == '.':
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidName, name)
	}

	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return fmt.Errorf("%w: %q contains a forbidden character", ErrInvalidName, name)
		}
	}
	return nil
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '.' || c == '-' || c == '_'
}

// CopyName returns the n-th candidate name for a copy of name:
// "notes.md" -> "notes_copy.md", "notes_copy2.md", ...
func CopyName(name string, n int) string {
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if n <= 1 {
		return stem + "_copy" + ext
	}
	return fmt.Sprintf("%s_copy%d%s", stem, n, ext)
}
