package shrink_test

import (
	"strings"
	"testing"

	"github.com/JuliusMoehring/shrinkify.app/internal/shrink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOriginGenerator(t *testing.T) {
	t.Run("zero length selects the default", func(t *testing.T) {
		generate, err := shrink.NewOriginGenerator(0)
		require.NoError(t, err)

		assert.Len(t, generate(), shrink.DefaultOriginLength)
	})

	t.Run("generates origins of a custom length", func(t *testing.T) {
		generate, err := shrink.NewOriginGenerator(12)
		require.NoError(t, err)

		assert.Len(t, generate(), 12)
	})

	t.Run("only uses alphanumeric characters", func(t *testing.T) {
		generate, err := shrink.NewOriginGenerator(shrink.DefaultOriginLength)
		require.NoError(t, err)

		for range 1000 {
			for _, c := range generate() {
				assert.True(t, strings.ContainsRune(shrink.Alphabet, c),
					"unexpected character %q", c)
			}
		}
	})

	t.Run("rarely repeats itself", func(t *testing.T) {
		generate, err := shrink.NewOriginGenerator(shrink.DefaultOriginLength)
		require.NoError(t, err)

		seen := make(map[string]struct{})
		for range 1000 {
			seen[generate()] = struct{}{}
		}

		// 1000 draws from a 62^8 space colliding would point at a broken
		// random source.
		assert.Len(t, seen, 1000)
	})

	t.Run("rejects a negative length", func(t *testing.T) {
		_, err := shrink.NewOriginGenerator(-1)

		assert.Error(t, err)
	})
}
