// Package codec converts between raw bytes and bignat.BigNat using the same
// fixed-width scheme the original RSA::encode/decode used: every byte
// becomes exactly three decimal digits (000-255). Byte 0 of the input
// occupies the three least significant digit positions, and the last byte
// occupies the most significant ones. The BigNat's own leading-zero
// trimming means the most significant digit group is often short one or
// two digits (whenever the last byte's tens or hundreds digit is zero), so
// Decode recovers the byte count by rounding the digit count up to the
// nearest multiple of three rather than requiring an exact multiple.
package codec

import (
	"errors"
	"fmt"

	"rsa_toolkit/internal/domain/bignat"
)

// digitsPerByte is fixed at 3 because a byte's maximum value, 255, needs
// exactly three decimal digits.
const digitsPerByte = 3

// ErrWidthMismatch is returned by Decode when the BigNat has no digits at
// all, meaning it cannot have come from Encode.
var ErrWidthMismatch = errors.New("codec: BigNat has no digits")

// Encode packs data into a BigNat, three decimal digits per byte, with
// data[0] contributing the least significant digits and the last byte
// contributing the most significant ones.
func Encode(data []byte) (bignat.BigNat, error) {
	if len(data) == 0 {
		return bignat.BigNat{}, fmt.Errorf("codec: %w", bignat.ErrEmptyInput)
	}
	digits := make([]byte, len(data)*digitsPerByte)
	for i, b := range data {
		pos := i * digitsPerByte
		digits[pos] = b % 10
		digits[pos+1] = (b / 10) % 10
		digits[pos+2] = b / 100
	}
	return bignat.FromDigitsLE(digits)
}

// Decode unpacks a BigNat produced by Encode back into its original bytes,
// inferring the byte count from the digit count rounded up to the nearest
// multiple of three. The count need not land exactly on a multiple of
// three: Encode's most significant digit group loses its leading zero
// digits whenever the top byte's tens or hundreds digit is zero (this is
// exactly what happens to rsacore's marker byte, 'a' == 97, whose hundreds
// digit is 0), so DigitsLE is asked for the rounded-up count of whole
// groups and its implicit leading zeros fill in the missing high digits.
func Decode(n bignat.BigNat) ([]byte, error) {
	if n.Used() < 1 {
		return nil, fmt.Errorf("%w: digit count %d", ErrWidthMismatch, n.Used())
	}
	width := (n.Used() + digitsPerByte - 1) / digitsPerByte
	digits := n.DigitsLE(width * digitsPerByte)
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		pos := i * digitsPerByte
		out[i] = digits[pos] + digits[pos+1]*10 + digits[pos+2]*100
	}
	return out, nil
}
