//go:build unit

package primegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsa_toolkit/internal/domain/bignat"
	"rsa_toolkit/internal/domain/primegen"
	"rsa_toolkit/internal/infrastructure/rng"
)

func TestGenerateProducesCorrectDigitCount(t *testing.T) {
	src := rng.NewSplitMix64(12345)
	p, err := primegen.Generate(6, 20, src)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Used())
}

func TestGenerateRejectsInvalidDigitCount(t *testing.T) {
	src := rng.NewSplitMix64(1)
	_, err := primegen.Generate(0, 10, src)
	assert.ErrorIs(t, err, primegen.ErrInvalidDigitCount)
}

func TestGeneratedValueIsOddAndProbablyPrime(t *testing.T) {
	src := rng.NewSplitMix64(999)
	p, err := primegen.Generate(8, 30, src)
	require.NoError(t, err)
	assert.False(t, p.IsEven())

	// Trial division by small primes should never find a factor.
	for _, sp := range []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29} {
		d := bignat.FromUint64(sp)
		if bignat.Eq(p, d) {
			continue
		}
		_, r, err := bignat.DivMod(p, d)
		require.NoError(t, err)
		assert.False(t, r.IsZero(), "generated prime %s divisible by %d", p.String(), sp)
	}

	// Fermat's little theorem: for a witness a in [2, p-1], a^(p-1) mod p
	// must be 1 when p is actually prime.
	pMinus1, err := bignat.Sub(p, bignat.One())
	require.NoError(t, err)
	a := bignat.FromUint64(2 + src.NextWord()%(p.ToUint64()-3))
	result, err := bignat.PowMod(a, pMinus1, p)
	require.NoError(t, err)
	assert.True(t, bignat.Eq(result, bignat.One()),
		"Fermat check failed: %s^(%s-1) mod %s = %s", a.String(), p.String(), p.String(), result.String())
}

func TestGenerateIsRepeatableWithSameSeed(t *testing.T) {
	p1, err := primegen.Generate(10, 15, rng.NewSplitMix64(2024))
	require.NoError(t, err)
	p2, err := primegen.Generate(10, 15, rng.NewSplitMix64(2024))
	require.NoError(t, err)
	assert.True(t, bignat.Eq(p1, p2))
}
