// Package bignat implements an arbitrary-precision unsigned decimal integer
// from scratch: no math/big, no crypto library underneath it. Every digit is
// stored as its own byte (value 0-9) in a little-endian buffer, mirroring the
// layout of the original BigInt this package is ported from.
package bignat

import (
	"fmt"
	"strings"
)

// growthFactor matches the original C++ BigInt's reallocation policy: grow
// capacity to roughly 1.6x the requested size rather than exactly, so that
// repeated single-digit growth (e.g. from Inc) is amortized O(1).
const growthFactor = 1.6

// BigNat is an arbitrary-precision, unsigned, base-10 integer. The zero value
// is not ready to use; construct one with Zero, One, FromUint64 or FromString.
//
// Invariant: digits[0:used] holds the value's decimal digits in
// little-endian order (digits[0] is the ones digit). used is always >= 1.
// For a nonzero value digits[used-1] != 0 (no leading zero digits); the
// canonical representation of zero is used == 1, digits[0] == 0.
type BigNat struct {
	digits []byte
	used   int
}

// Zero returns the additive identity.
func Zero() BigNat {
	return BigNat{digits: []byte{0}, used: 1}
}

// One returns the multiplicative identity.
func One() BigNat {
	return BigNat{digits: []byte{1}, used: 1}
}

// FromUint64 builds a BigNat from a machine-word unsigned integer.
func FromUint64(v uint64) BigNat {
	if v == 0 {
		return Zero()
	}
	var tmp []byte
	for v > 0 {
		tmp = append(tmp, byte(v%10))
		v /= 10
	}
	return BigNat{digits: tmp, used: len(tmp)}
}

// FromString parses a nonnegative base-10 string into a BigNat. Leading
// zeros are tolerated ("007" == 7); an empty string is rejected as
// ErrEmptyInput, and any non-digit character, including a minus sign, is
// rejected as ErrInvalidDigit — matching the original BigInt string constructor, which never special-cased
// '-' either.
func FromString(s string) (BigNat, error) {
	if len(s) == 0 {
		return BigNat{}, ErrEmptyInput
	}
	digits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[len(s)-1-i]
		if c < '0' || c > '9' {
			return BigNat{}, fmt.Errorf("%w: %q", ErrInvalidDigit, s)
		}
		digits[i] = c - '0'
	}
	n := BigNat{digits: digits, used: len(digits)}
	n.trim()
	return n, nil
}

// FromDigitsLE builds a BigNat directly from little-endian decimal digits
// (digits[0] is the ones digit). It is used by packages that already work
// digit-by-digit, such as primegen's random candidate construction and
// codec's byte-to-digit encoding, so they don't have to round-trip through
// decimal strings. Every byte must be in [0, 9].
func FromDigitsLE(digits []byte) (BigNat, error) {
	if len(digits) == 0 {
		return BigNat{}, ErrEmptyInput
	}
	out := make([]byte, len(digits))
	for i, d := range digits {
		if d > 9 {
			return BigNat{}, fmt.Errorf("%w: byte %d at position %d", ErrInvalidDigit, d, i)
		}
		out[i] = d
	}
	n := BigNat{digits: out, used: len(out)}
	n.trim()
	return n, nil
}

// DigitsLE returns a copy of the value's little-endian decimal digits
// (index 0 is the ones digit), padded or truncated to exactly width digits.
// It is the inverse of FromDigitsLE for a known fixed width.
func (b BigNat) DigitsLE(width int) []byte {
	out := make([]byte, width)
	n := b.used
	if n > width {
		n = width
	}
	copy(out, b.digits[:n])
	return out
}

// trim drops leading (high-index) zero digits, leaving used == 1 for the
// zero value rather than used == 0.
func (b *BigNat) trim() {
	for b.used > 1 && b.digits[b.used-1] == 0 {
		b.used--
	}
	if b.used < 1 {
		b.used = 1
	}
	if len(b.digits) == 0 {
		b.digits = []byte{0}
	}
}

// grow ensures the backing buffer can hold at least n digits, reallocating
// with the same 1.6x slack the original BigInt used.
func (b *BigNat) grow(n int) {
	if len(b.digits) >= n {
		return
	}
	newCap := int(float64(n) * growthFactor)
	if newCap < n {
		newCap = n
	}
	buf := make([]byte, newCap)
	copy(buf, b.digits[:b.used])
	b.digits = buf
}

// Clone returns a deep copy; BigNat values share no backing storage with
// their source after cloning.
func (b BigNat) Clone() BigNat {
	out := make([]byte, b.used)
	copy(out, b.digits[:b.used])
	return BigNat{digits: out, used: b.used}
}

// Used returns the number of significant decimal digits (the canonical zero
// has Used() == 1).
func (b BigNat) Used() int {
	return b.used
}

// Length is an alias of Used kept for readers coming from the original
// BigInt::Length naming.
func (b BigNat) Length() int {
	return b.used
}

// IsZero reports whether the value is the additive identity.
func (b BigNat) IsZero() bool {
	return b.used == 1 && b.digits[0] == 0
}

// Digit returns the decimal digit at position i, counted from the most
// significant digit (position 0), matching the original BigInt::operator[].
func (b BigNat) Digit(i int) (byte, error) {
	if i < 0 || i >= b.used {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, b.used)
	}
	return b.digits[b.used-i-1], nil
}

// String renders the value in standard base-10, most significant digit
// first, with no leading zeros (except the literal "0").
func (b BigNat) String() string {
	var sb strings.Builder
	sb.Grow(b.used)
	for i := b.used - 1; i >= 0; i-- {
		sb.WriteByte('0' + b.digits[i])
	}
	return sb.String()
}

// Compare returns -1, 0 or 1 as a is less than, equal to, or greater than b.
func Compare(a, b BigNat) int {
	if a.used != b.used {
		if a.used < b.used {
			return -1
		}
		return 1
	}
	for i := a.used - 1; i >= 0; i-- {
		if a.digits[i] != b.digits[i] {
			if a.digits[i] < b.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Eq, Lt, Lte, Gt, Gte, Neq are Compare convenience wrappers.
func Eq(a, b BigNat) bool  { return Compare(a, b) == 0 }
func Neq(a, b BigNat) bool { return Compare(a, b) != 0 }
func Lt(a, b BigNat) bool  { return Compare(a, b) < 0 }
func Lte(a, b BigNat) bool { return Compare(a, b) <= 0 }
func Gt(a, b BigNat) bool  { return Compare(a, b) > 0 }
func Gte(a, b BigNat) bool { return Compare(a, b) >= 0 }

// ToUint64 returns the value as a uint64, truncating silently if it does not
// fit. Callers that care about overflow should check Used() against the
// digit count of the host's maximum uint64 (20) first.
func (b BigNat) ToUint64() uint64 {
	var v uint64
	for i := b.used - 1; i >= 0; i-- {
		v = v*10 + uint64(b.digits[i])
	}
	return v
}

// IsEven reports whether the value's ones digit is even.
func (b BigNat) IsEven() bool {
	return b.digits[0]%2 == 0
}
