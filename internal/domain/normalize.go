package domain

import (
	"strings"
)

// NormalizeName prepares a pad or note name for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of spaces into one
//
// Case is preserved.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
