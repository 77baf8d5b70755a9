//go:build unit

package code_test

import (
	"regexp"
	"testing"

	"washclub/internal/domain/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator(t *testing.T) {
	g := code.NewRandomGenerator()
	format := regexp.MustCompile(`^[0-9A-F]{8}$`)

	t.Run("generates uppercase hex of fixed length", func(t *testing.T) {
		for range 50 {
			value, err := g.Generate()
			require.NoError(t, err)
			assert.Regexp(t, format, value)
		}
	})

	t.Run("values vary across calls", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 20 {
			value, err := g.Generate()
			require.NoError(t, err)
			seen[value] = struct{}{}
		}
		assert.Greater(t, len(seen), 1)
	})
}
