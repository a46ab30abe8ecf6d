//go:build unit

package bignat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsa_toolkit/internal/domain/bignat"
)

func TestDivModBasic(t *testing.T) {
	x := mustFrom(t, "1000")
	d := mustFrom(t, "7")
	q, r, err := bignat.DivMod(x, d)
	require.NoError(t, err)
	assert.Equal(t, "142", q.String())
	assert.Equal(t, "6", r.String())

	// a == q*d + r
	recon := bignat.Add(bignat.Mul(q, d), r)
	assert.True(t, bignat.Eq(recon, x))
}

func TestDivModByZero(t *testing.T) {
	x := mustFrom(t, "10")
	_, _, err := bignat.DivMod(x, bignat.Zero())
	assert.ErrorIs(t, err, bignat.ErrDivideByZero)
}

func TestDivModLargeNumbers(t *testing.T) {
	x := mustFrom(t, "123456789012345678901234567890123456789")
	d := mustFrom(t, "987654321098765432109876543210")
	q, r, err := bignat.DivMod(x, d)
	require.NoError(t, err)
	recon := bignat.Add(bignat.Mul(q, d), r)
	assert.True(t, bignat.Eq(recon, x))
	assert.True(t, bignat.Lt(r, d))
}

func TestShiftLeftRight(t *testing.T) {
	n := mustFrom(t, "42")
	assert.Equal(t, "4200", bignat.ShiftLeft(n, 2).String())

	shifted, err := bignat.ShiftRight(mustFrom(t, "4200"), 2)
	require.NoError(t, err)
	assert.Equal(t, "42", shifted.String())

	zero, err := bignat.ShiftRight(mustFrom(t, "42"), 2)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = bignat.ShiftRight(mustFrom(t, "42"), 3)
	assert.ErrorIs(t, err, bignat.ErrShiftRightOverflow)
}
