package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSet_SetClearTest(t *testing.T) {
	b := New(128)

	assert.False(t, b.Test(0))
	assert.False(t, b.Test(127))

	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(127)

	assert.True(t, b.Test(0))
	assert.True(t, b.Test(63))
	assert.True(t, b.Test(64))
	assert.True(t, b.Test(127))
	assert.False(t, b.Test(1))

	b.Clear(63)
	assert.False(t, b.Test(63))
	assert.True(t, b.Test(64))
}

func TestBitSet_Reset(t *testing.T) {
	b := New(100)

	for i := uint64(0); i < 100; i++ {
		b.Set(i)
	}
	b.Reset()

	for i := uint64(0); i < 100; i++ {
		assert.False(t, b.Test(i))
	}
}

func TestBitSet_ZeroSize(t *testing.T) {
	// A zero-size set is valid as long as nothing is ever marked.
	b := New(0)
	b.Reset()
}
