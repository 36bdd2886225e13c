package id

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// encoding is RFC 4648 base32 without padding, lowercased after encoding.
var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID generates a new URL-safe identifier.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ToLower(encoding.EncodeToString(value[:])), nil
}
