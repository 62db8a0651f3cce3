package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestRNG_Reset(t *testing.T) {
	r := NewRNG(7)

	first := make([]uint64, 10)
	for i := range first {
		first[i] = r.Uint64()
	}

	r.Reset()
	for i := range first {
		assert.Equal(t, first[i], r.Uint64())
	}
}
