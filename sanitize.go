package dossier

import "strings"

// Sanitize converts an agent display name into a safe filename stem.
// Every character outside [A-Za-z0-9] becomes an underscore.
//
// The mapping is deterministic and idempotent: sanitizing twice yields the
// same result. It is not injective — "J. Doe" and "J- Doe" both sanitize to
// "J__Doe", so distinct names that differ only in non-alphanumeric
// characters collide on photo lookup and output filename.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isAlphanumeric(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isAlphanumeric(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
