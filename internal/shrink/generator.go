package shrink

import (
	"github.com/jaevor/go-nanoid"
)

// Alphabet contains every character a generated origin may use.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultOriginLength is the length of generated origins unless configured
// otherwise.
const DefaultOriginLength = 8

// OriginGenerator produces random origin candidates.
type OriginGenerator func() string

// NewOriginGenerator creates a generator drawing length characters uniformly
// from Alphabet. A zero length selects DefaultOriginLength. It does not touch
// the store.
func NewOriginGenerator(length int) (OriginGenerator, error) {
	if length == 0 {
		length = DefaultOriginLength
	}

	generate, err := nanoid.CustomASCII(Alphabet, length)
	if err != nil {
		return nil, err
	}

	return OriginGenerator(generate), nil
}
