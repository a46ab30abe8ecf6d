// Package primegen generates probable prime BigNat values, the way the
// original PrimeGenerator class did: build an odd random candidate of the
// requested digit count, then sieve it with the Miller-Rabin primality
// test, retrying on failure. The randomness source and the digit-by-digit
// candidate construction are both reimplemented here rather than reused
// from a crypto package, per this toolkit's "no pre-existing big-number or
// crypto library" constraint on its arithmetic core.
package primegen

import (
	"errors"
	"fmt"

	"rsa_toolkit/internal/domain/bignat"
	"rsa_toolkit/internal/infrastructure/rng"
)

// ErrInvalidDigitCount is returned by Generate when asked for a prime with
// fewer than one digit.
var ErrInvalidDigitCount = errors.New("primegen: digit count must be >= 1")

var (
	one = bignat.One()
	two = bignat.FromUint64(2)
)

// makeRandomDigits returns a BigNat with exactly n random decimal digits.
// When forceNonZeroTop is set, the most significant digit is drawn from
// [1,9] so the result has exactly n significant digits rather than fewer.
func makeRandomDigits(src rng.Source, n int, forceNonZeroTop bool) bignat.BigNat {
	digits := make([]byte, n)
	for i := 0; i < n; i++ {
		digits[i] = rng.UniformDigit(src)
	}
	if forceNonZeroTop && n > 0 {
		digits[n-1] = rng.UniformDigitNonZero(src)
	}
	v, err := bignat.FromDigitsLE(digits)
	if err != nil {
		// Unreachable: UniformDigit/UniformDigitNonZero only ever produce
		// values in [0,9].
		panic(err)
	}
	return v
}

// makePrimeCandidate builds a random odd BigNat with exactly digitCount
// significant digits, mirroring PrimeGenerator::createPrimeCandidate.
func makePrimeCandidate(src rng.Source, digitCount int) bignat.BigNat {
	n := makeRandomDigits(src, digitCount, true)
	if n.IsEven() {
		n.Inc()
	}
	return n
}

// randomBelow returns a uniformly distributed BigNat in [0, bound). bound
// must be nonzero.
// Draws of bound.Used() random digits that land at or above bound are
// discarded and redrawn.
func randomBelow(src rng.Source, bound bignat.BigNat) bignat.BigNat {
	for {
		cand := makeRandomDigits(src, bound.Used(), false)
		if bignat.Lt(cand, bound) {
			return cand
		}
	}
}

// isProbablePrime runs the Miller-Rabin primality test with k independent
// witnesses, giving a false-positive probability of at most 4^-k.
func isProbablePrime(n bignat.BigNat, k int, src rng.Source) bool {
	if bignat.Lt(n, two) {
		return false
	}
	three := bignat.FromUint64(3)
	if bignat.Lte(n, three) {
		return true
	}
	if n.IsEven() {
		return false
	}

	nMinus1, err := bignat.Sub(n, one)
	if err != nil {
		return false
	}
	d := nMinus1.Clone()
	s := 0
	for d.IsEven() {
		var derr error
		d, _, derr = bignat.DivMod(d, two)
		if derr != nil {
			return false
		}
		s++
	}

	// Witnesses are drawn from [2, n-2]; width = n-3 keeps the offset
	// (added back below) inside that range.
	width, err := bignat.Sub(nMinus1, two)
	if err != nil {
		return false
	}
	if width.IsZero() {
		width = one
	}

	for i := 0; i < k; i++ {
		a := bignat.Add(randomBelow(src, width), two)
		x, err := bignat.PowMod(a, d, n)
		if err != nil {
			return false
		}
		if bignat.Eq(x, one) || bignat.Eq(x, nMinus1) {
			continue
		}
		composite := true
		for r := 1; r < s; r++ {
			x = bignat.Mul(x, x)
			x, err = bignat.Mod(x, n)
			if err != nil {
				return false
			}
			if bignat.Eq(x, nMinus1) {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// Generate returns a probable prime with exactly digitCount decimal digits,
// tested with k Miller-Rabin rounds. src supplies the randomness; pass
// rng.Default() for the process-wide generator.
func Generate(digitCount int, k int, src rng.Source) (bignat.BigNat, error) {
	if digitCount < 1 {
		return bignat.BigNat{}, fmt.Errorf("%w: got %d", ErrInvalidDigitCount, digitCount)
	}
	if k < 1 {
		k = 1
	}
	// A failed candidate is stepped by 2 (staying odd); a fresh candidate is
	// drawn only once stepping carries it past digitCount digits.
	candidate := makePrimeCandidate(src, digitCount)
	for !isProbablePrime(candidate, k, src) {
		candidate = bignat.Add(candidate, two)
		if candidate.Used() > digitCount {
			candidate = makePrimeCandidate(src, digitCount)
		}
	}
	return candidate, nil
}
