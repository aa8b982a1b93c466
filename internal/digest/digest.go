// Package digest provides the stable content digest used to detect drift
// between recorded and current code. The same function is used to annotate
// freshly read ranges and to compare against server-recorded hashes, so it
// must stay deterministic across versions.
package digest

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"unicode"
)

// Hash returns the hex SHA-256 of text with all whitespace removed.
// Stripping whitespace keeps formatting-only edits from registering as
// content drift, matching the hashing done on the recording side.
func Hash(text string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	sum := sha256.Sum256([]byte(stripped))
	return fmt.Sprintf("%x", sum[:])
}
