package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestLookup(t *testing.T) {
	t.Run("known name", func(t *testing.T) {
		fn, err := sanitizer.Lookup("trim")
		require.NoError(t, err)
		assert.Equal(t, "x", fn(" x "))
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := sanitizer.Lookup("shout")
		require.ErrorIs(t, err, sanitizer.ErrUnknownSanitizer)
		assert.Contains(t, err.Error(), `"shout"`)
	})
}

func TestLookupAll(t *testing.T) {
	fn, err := sanitizer.LookupAll("trim", "lower")
	require.NoError(t, err)
	assert.Equal(t, "karl", fn("  KARL "))

	_, err = sanitizer.LookupAll("trim", "nope")
	assert.ErrorIs(t, err, sanitizer.ErrUnknownSanitizer)
}

func TestNames(t *testing.T) {
	names := sanitizer.Names()
	assert.Contains(t, names, "strip_html")
	assert.IsNonDecreasing(t, names)
}
