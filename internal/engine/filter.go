package engine

import "strings"

// Excluder tests slash-normalized relative paths against the configured
// exclusion prefixes. An excluded file is never read or modified.
type Excluder struct {
	prefixes []string
}

func NewExcluder(prefixes []string) *Excluder {
	return &Excluder{prefixes: prefixes}
}

func (e *Excluder) Excluded(relPath string) bool {
	for _, prefix := range e.prefixes {
		if strings.HasPrefix(relPath, prefix) {
			return true
		}
	}
	return false
}
