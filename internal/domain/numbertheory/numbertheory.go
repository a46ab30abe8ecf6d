// Package numbertheory implements the number-theoretic primitives RSA key
// generation needs on top of bignat: greatest common divisor, the extended
// Euclidean algorithm, and solving a modular linear congruence for the
// private exponent. These lived as private methods on the original RSA
// class; they're promoted to their own package here because none of them
// are specific to RSA — they're reusable number theory.
//
// bignat.BigNat has no sign, but the extended Euclidean algorithm's
// intermediate Bezout coefficients are routinely negative. SignedBigNat is
// the minimal wrapper that lets this package carry a sign through that
// recursion without smuggling sign bits into the arithmetic core itself.
package numbertheory

import (
	"errors"

	"rsa_toolkit/internal/domain/bignat"
)

// ErrNoSolution is returned by SolveModularLinearEquation when a*x = b
// (mod n) has no solution, i.e. gcd(a, n) does not divide b.
var ErrNoSolution = errors.New("numbertheory: modular linear equation has no solution")

// SignedBigNat pairs an unsigned magnitude with a sign. The zero magnitude
// is always treated as non-negative regardless of Neg, so there is exactly
// one representation of zero.
type SignedBigNat struct {
	Neg bool
	Mag bignat.BigNat
}

// FromBigNat wraps an unsigned BigNat as a non-negative SignedBigNat.
func FromBigNat(b bignat.BigNat) SignedBigNat {
	return SignedBigNat{Mag: b}
}

// Negate returns -s.
func Negate(s SignedBigNat) SignedBigNat {
	if s.Mag.IsZero() {
		return s
	}
	return SignedBigNat{Neg: !s.Neg, Mag: s.Mag}
}

func normalizeSign(s SignedBigNat) SignedBigNat {
	if s.Mag.IsZero() {
		s.Neg = false
	}
	return s
}

// SAdd returns a + b.
func SAdd(a, b SignedBigNat) SignedBigNat {
	if a.Neg == b.Neg {
		return normalizeSign(SignedBigNat{Neg: a.Neg, Mag: bignat.Add(a.Mag, b.Mag)})
	}
	if bignat.Gte(a.Mag, b.Mag) {
		d, _ := bignat.Sub(a.Mag, b.Mag)
		return normalizeSign(SignedBigNat{Neg: a.Neg, Mag: d})
	}
	d, _ := bignat.Sub(b.Mag, a.Mag)
	return normalizeSign(SignedBigNat{Neg: b.Neg, Mag: d})
}

// SSub returns a - b.
func SSub(a, b SignedBigNat) SignedBigNat {
	return SAdd(a, Negate(b))
}

// SMul returns a * b.
func SMul(a, b SignedBigNat) SignedBigNat {
	m := bignat.Mul(a.Mag, b.Mag)
	return normalizeSign(SignedBigNat{Neg: a.Neg != b.Neg, Mag: m})
}

// SDivTrunc returns the quotient and remainder of a / b, truncating toward
// zero the way C-family integer division does (matching the arithmetic the
// original extended Euclidean algorithm relied on).
func SDivTrunc(a, b SignedBigNat) (SignedBigNat, SignedBigNat, error) {
	q, r, err := bignat.DivMod(a.Mag, b.Mag)
	if err != nil {
		return SignedBigNat{}, SignedBigNat{}, err
	}
	quotient := normalizeSign(SignedBigNat{Neg: a.Neg != b.Neg, Mag: q})
	remainder := normalizeSign(SignedBigNat{Neg: a.Neg, Mag: r})
	return quotient, remainder, nil
}

// GCD returns the greatest common divisor of a and b via the Euclidean
// algorithm.
func GCD(a, b bignat.BigNat) (bignat.BigNat, error) {
	a, b = a.Clone(), b.Clone()
	for !b.IsZero() {
		_, r, err := bignat.DivMod(a, b)
		if err != nil {
			return bignat.BigNat{}, err
		}
		a, b = b, r
	}
	return a, nil
}

// ExtendedEuclid returns d, x, y such that d = gcd(a, b) and a*x + b*y = d,
// using the same recursive structure as the original
// RSA::extendedEuclideanAlgorithm, translated into signed BigNat values
// since x and y are routinely negative.
func ExtendedEuclid(a, b bignat.BigNat) (d, x, y SignedBigNat, err error) {
	if b.IsZero() {
		return FromBigNat(a), FromBigNat(bignat.One()), FromBigNat(bignat.Zero()), nil
	}
	q, r, err := bignat.DivMod(a, b)
	if err != nil {
		return SignedBigNat{}, SignedBigNat{}, SignedBigNat{}, err
	}
	d1, x1, y1, err := ExtendedEuclid(b, r)
	if err != nil {
		return SignedBigNat{}, SignedBigNat{}, SignedBigNat{}, err
	}
	x = y1
	y = SSub(x1, SMul(FromBigNat(q), y1))
	return d1, x, y, nil
}

// reduceModSigned reduces a signed value into [0, n-1].
func reduceModSigned(s SignedBigNat, n bignat.BigNat) (bignat.BigNat, error) {
	r, err := bignat.Mod(s.Mag, n)
	if err != nil {
		return bignat.BigNat{}, err
	}
	if !s.Neg || r.IsZero() {
		return r, nil
	}
	return bignat.Sub(n, r)
}

// SolveModularLinearEquation finds x such that a*x = b (mod n), returning x
// reduced into [0, n-1]. It reports ErrNoSolution if gcd(a, n) does not
// divide b — the same condition the original threw "Error RSA00" for.
func SolveModularLinearEquation(a, b, n bignat.BigNat) (bignat.BigNat, error) {
	d, x, _, err := ExtendedEuclid(a, n)
	if err != nil {
		return bignat.BigNat{}, err
	}
	if d.Mag.IsZero() {
		return bignat.BigNat{}, ErrNoSolution
	}
	scale, remainder, err := bignat.DivMod(b, d.Mag)
	if err != nil {
		return bignat.BigNat{}, err
	}
	if !remainder.IsZero() {
		return bignat.BigNat{}, ErrNoSolution
	}
	scaled := SMul(x, FromBigNat(scale))
	return reduceModSigned(scaled, n)
}
