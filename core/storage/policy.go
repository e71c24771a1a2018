package storage

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// NamePolicy restricts which names may be used for new documents.
// An empty policy allows every valid name.
type NamePolicy struct {
	patterns []string
}

// NewNamePolicy compiles glob patterns such as "*.md" or "*.{md,txt}".
// Empty patterns are ignored; "*" alone allows everything.
func NewNamePolicy(patterns ...string) (*NamePolicy, error) {
	p := &NamePolicy{}
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid document name pattern %q", pattern)
		}
		p.patterns = append(p.patterns, pattern)
	}
	return p, nil
}

// Allows reports whether name matches at least one pattern.
func (p *NamePolicy) Allows(name string) bool {
	if p == nil || len(p.patterns) == 0 {
		return true
	}
	for _, pattern := range p.patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Patterns returns the configured patterns.
func (p *NamePolicy) Patterns() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.patterns...)
}
