package joincode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	code, err := New(Length)
	require.NoError(t, err)
	assert.Len(t, code, Length)

	for _, c := range code {
		assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
	}
}

func TestNew_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := New(Length)
		require.NoError(t, err)
		seen[code] = true
	}
	// 50 draws from a 32^8 space colliding would mean a broken generator.
	assert.Greater(t, len(seen), 45)
}
