//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt64ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Int64ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid negative", func(t *testing.T) {
		got, err := Int64ToInt(-5)
		assert.NoError(t, err)
		assert.Equal(t, -5, got)
	})

	t.Run("valid max int64", func(t *testing.T) {
		got, err := Int64ToInt(math.MaxInt64)
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})
}

func TestUint64ToInt64(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := Uint64ToInt64(123)
		assert.NoError(t, err)
		assert.Equal(t, int64(123), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt64(math.MaxUint64)
		assert.Error(t, err)
	})
}

func TestMulInt64(t *testing.T) {
	got, err := MulInt64(1<<20, 8)
	assert.NoError(t, err)
	assert.Equal(t, int64(8<<20), got)

	got, err = MulInt64(0, -1)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), got)

	_, err = MulInt64(math.MaxInt64, 2)
	assert.Error(t, err)

	_, err = MulInt64(-1, 2)
	assert.Error(t, err)
}
