//go:build unit

package bignat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsa_toolkit/internal/domain/bignat"
)

func TestFromString_RoundTrips(t *testing.T) {
	cases := []string{"0", "7", "007", "123456789", "999999999999999999999999999999"}
	for _, c := range cases {
		n, err := bignat.FromString(c)
		require.NoError(t, err)
		want, err := bignat.FromString(n.String())
		require.NoError(t, err)
		assert.True(t, bignat.Eq(n, want))
	}
}

func TestFromString_RejectsBadInput(t *testing.T) {
	_, err := bignat.FromString("")
	assert.ErrorIs(t, err, bignat.ErrEmptyInput)

	_, err = bignat.FromString("-5")
	assert.ErrorIs(t, err, bignat.ErrInvalidDigit)

	_, err = bignat.FromString("12a4")
	assert.ErrorIs(t, err, bignat.ErrInvalidDigit)
}

func TestCompare(t *testing.T) {
	a, _ := bignat.FromString("12345")
	b, _ := bignat.FromString("12399")
	c, _ := bignat.FromString("12345")
	assert.True(t, bignat.Lt(a, b))
	assert.True(t, bignat.Gt(b, a))
	assert.True(t, bignat.Eq(a, c))
}

func TestString_NoLeadingZeros(t *testing.T) {
	n, err := bignat.FromString("00042")
	require.NoError(t, err)
	assert.Equal(t, "42", n.String())
}

func TestIsZero(t *testing.T) {
	assert.True(t, bignat.Zero().IsZero())
	n, _ := bignat.FromString("0000")
	assert.True(t, n.IsZero())
	one := bignat.One()
	assert.False(t, one.IsZero())
}

func TestDigitIsMostSignificantFirst(t *testing.T) {
	n := bignat.FromUint64(123)
	d0, err := n.Digit(0)
	require.NoError(t, err)
	assert.Equal(t, byte(1), d0)

	d2, err := n.Digit(2)
	require.NoError(t, err)
	assert.Equal(t, byte(3), d2)
}

func TestDigitOutOfRange(t *testing.T) {
	n := bignat.FromUint64(123)
	_, err := n.Digit(-1)
	assert.ErrorIs(t, err, bignat.ErrIndexOutOfRange)
	_, err = n.Digit(3)
	assert.ErrorIs(t, err, bignat.ErrIndexOutOfRange)
}
