package otp

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SixDigits(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := New()
		require.NoError(t, err)
		require.Len(t, code, Length)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestNew_NotConstant(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := New()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 50 draws from 900k values colliding down to a single code is not a thing.
	assert.Greater(t, len(seen), 1)
}
