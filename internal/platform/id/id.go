// Package id generates the identifiers used for applications and documents.
//
// An identifier is 16 random bytes carrying UUIDv4 version and variant bits,
// rendered as unpadded lowercase base32 (RFC 4648): 26 characters, usable in
// URLs and as storage keys without escaping.
package id

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// NewID returns a fresh 26-character identifier. It fails only when the
// platform's random source does.
func NewID() (string, error) {
	var raw [16]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	// RFC 4122 variant and version bits for a v4 UUID.
	raw[6] = (raw[6] & 0x0f) | 0x40
	raw[8] = (raw[8] & 0x3f) | 0x80

	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw[:])
	return strings.ToLower(encoded), nil
}
