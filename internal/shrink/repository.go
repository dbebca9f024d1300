package shrink

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no usable record is bound to an origin.
var ErrNotFound = errors.New("origin not found")

// ErrGenerationExhausted is returned when the unique-origin loop gives up.
var ErrGenerationExhausted = errors.New("could not generate a unique origin")

// ErrExpiryNotSet is returned when a record was written but setting its
// expiry failed, leaving a non-expiring record behind.
var ErrExpiryNotSet = errors.New("record stored but expiry was not set")

// Repository defines the store operations for origin records. An origin is
// absent when Fetch returns an empty field map; an error from any call means
// the store itself was unreachable.
type Repository interface {
	// Fetch returns all fields of the record bound to origin.
	Fetch(ctx context.Context, origin string) (map[string]string, error)

	// Put writes target and status as a single atomic multi-field write,
	// overwriting any record already bound to origin.
	Put(ctx context.Context, origin, target string, status int) error

	// ExpireAt sets the store-native expiry on an existing record.
	ExpireAt(ctx context.Context, origin string, at time.Time) error
}
