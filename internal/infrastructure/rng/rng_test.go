//go:build unit

package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rsa_toolkit/internal/infrastructure/rng"
)

func TestSplitMix64Deterministic(t *testing.T) {
	a := rng.NewSplitMix64(42)
	b := rng.NewSplitMix64(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.NextWord(), b.NextWord())
	}
}

func TestSplitMix64DifferentSeeds(t *testing.T) {
	a := rng.NewSplitMix64(1)
	b := rng.NewSplitMix64(2)
	assert.NotEqual(t, a.NextWord(), b.NextWord())
}

func TestUniformDigitRange(t *testing.T) {
	src := rng.NewSplitMix64(7)
	for i := 0; i < 1000; i++ {
		d := rng.UniformDigit(src)
		assert.True(t, d <= 9)
		nz := rng.UniformDigitNonZero(src)
		assert.True(t, nz >= 1 && nz <= 9)
	}
}
