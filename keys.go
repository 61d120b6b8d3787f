package lounge

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// MaxKeyLength is the longest key the store accepts, in bytes.
const MaxKeyLength = 250

// JoinKey joins parts with the configured delimiter. Empty parts are skipped.
func (c Config) JoinKey(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, c.Delimiter)
}

// RefIndexKey returns the key of the reference index entry for value in
// the named index: prefix + index + delimiter + value. Keys longer than
// MaxKeyLength carry the BLAKE2b-256 digest of value instead of value.
func (c Config) RefIndexKey(index, value string) string {
	key := c.RefIndexKeyPrefix + index + c.Delimiter + value
	if len(key) <= MaxKeyLength {
		return key
	}
	sum := blake2b.Sum256([]byte(value))
	return c.RefIndexKeyPrefix + index + c.Delimiter + hex.EncodeToString(sum[:])
}
