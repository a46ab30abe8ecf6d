//go:build unit

package bignat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsa_toolkit/internal/domain/bignat"
)

func TestPow(t *testing.T) {
	a := mustFrom(t, "2")
	assert.Equal(t, "1024", bignat.Pow(a, 10).String())
	assert.True(t, bignat.Eq(bignat.Pow(a, 0), bignat.One()))
}

func TestPowSpecVector(t *testing.T) {
	two := mustFrom(t, "2")
	assert.Equal(t, "2361183241434822606848", bignat.Pow(two, 71).String())
}

func TestPowMod(t *testing.T) {
	base := mustFrom(t, "4")
	exp := mustFrom(t, "13")
	mod := mustFrom(t, "497")
	got, err := bignat.PowMod(base, exp, mod)
	require.NoError(t, err)
	assert.Equal(t, "445", got.String())

	_, err = bignat.PowMod(base, exp, bignat.Zero())
	assert.ErrorIs(t, err, bignat.ErrDivideByZero)
}
