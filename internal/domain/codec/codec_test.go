//go:build unit

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsa_toolkit/internal/domain/bignat"
	"rsa_toolkit/internal/domain/codec"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := []byte("hello, RSA!")
	n, err := codec.Encode(data)
	require.NoError(t, err)

	back, err := codec.Decode(n)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestEncodeDecodeTopByteNonZero(t *testing.T) {
	data := []byte{0x00, 0x01, 0xFF}
	n, err := codec.Encode(data)
	require.NoError(t, err)

	back, err := codec.Decode(n)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestEncodeRejectsEmpty(t *testing.T) {
	_, err := codec.Encode(nil)
	assert.Error(t, err)
}

func TestDecodeShortTopGroup(t *testing.T) {
	// 12 has only two significant digits; the implicit leading zero of its
	// top group must be filled in rather than rejected as a width mismatch.
	back, err := codec.Decode(bignat.FromUint64(12))
	require.NoError(t, err)
	assert.Equal(t, []byte{12}, back)
}

func TestEncodeDecodeMarkerByteTopGroup(t *testing.T) {
	// A trailing byte whose hundreds digit is zero, such as the 'a' (97)
	// marker byte rsacore appends to every chunk, always yields a short top
	// digit group after trimming.
	data := []byte("Hello world")
	data = append(data, 'a')
	n, err := codec.Encode(data)
	require.NoError(t, err)

	back, err := codec.Decode(n)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestDecodeRejectsZeroValueBigNat(t *testing.T) {
	_, err := codec.Decode(bignat.BigNat{})
	assert.ErrorIs(t, err, codec.ErrWidthMismatch)
}
