package rsacore

import (
	"rsa_toolkit/internal/domain/bignat"
	"rsa_toolkit/internal/domain/numbertheory"
	"rsa_toolkit/internal/domain/primegen"
	"rsa_toolkit/internal/infrastructure/rng"
)

// publicExponentFloor is 65537, the conventional RSA public exponent (the
// fourth Fermat prime); the original library started its exponent search
// here too.
var publicExponentFloor = bignat.FromUint64(65537)

// minPhiFloor is 2^20 (1,048,576), the minimum strength SPEC_FULL.md §4.6
// requires of φ(n) — anything weaker than seven decimal digits is rejected
// as ErrKeyTooWeak.
var minPhiFloor = bignat.FromUint64(1 << 20)

// exponentResampleDigits is 5, the width PrimeGenerator::MakeRandom(e, 5)
// resampled on every collision in the original.
const exponentResampleDigits = 5

// GenerateKeyPair produces a public/private RSA keypair whose primes are
// each digitCount decimal digits long, tested with k Miller-Rabin rounds.
// Per the original's doc comment: k=3 gives a false-positive probability of
// at most 4^-3 (~1.56%), k=4 gives at most 4^-4 (~0.39%).
func GenerateKeyPair(digitCount, k int, src rng.Source) (KeyPair, error) {
	if digitCount < 1 {
		return KeyPair{}, ErrKeyTooWeak
	}

	for {
		p, err := primegen.Generate(digitCount, k, src)
		if err != nil {
			return KeyPair{}, err
		}
		q, err := primegen.Generate(digitCount, k, src)
		if err != nil {
			return KeyPair{}, err
		}
		for bignat.Eq(p, q) {
			q, err = primegen.Generate(digitCount, k, src)
			if err != nil {
				return KeyPair{}, err
			}
		}

		n := bignat.Mul(p, q)

		pMinus1, err := bignat.Sub(p, bignat.One())
		if err != nil {
			return KeyPair{}, err
		}
		qMinus1, err := bignat.Sub(q, bignat.One())
		if err != nil {
			return KeyPair{}, err
		}
		phi := bignat.Mul(pMinus1, qMinus1)

		if bignat.Lt(phi, minPhiFloor) {
			return KeyPair{}, ErrKeyTooWeak
		}

		e, err := chooseExponent(phi, src)
		if err != nil {
			return KeyPair{}, err
		}

		d, err := numbertheory.SolveModularLinearEquation(e, bignat.One(), phi)
		if err != nil {
			// gcd(e, phi) wasn't actually 1 after all (shouldn't happen
			// given chooseExponent's loop) or d degenerated to zero —
			// restart with a fresh pair of primes, as the original did.
			continue
		}
		if d.IsZero() {
			continue
		}

		pub := Key{Modulus: n, Exponent: e}
		priv := Key{Modulus: n, Exponent: d}
		return KeyPair{Public: pub, Private: priv}, nil
	}
}

// chooseExponent finds an e >= 65537 coprime with phi. 65537 itself is
// almost always coprime with phi (it's prime), so the loop typically exits
// immediately; on a collision it resamples a fresh 5-digit candidate from
// src rather than incrementing, per the original's
// PrimeGenerator::MakeRandom(e, 5). Since phi is always even (it's a
// product of two even p-1/q-1 terms), gcd(phi,e) == 1 already forces e to
// be odd, so no separate parity check is needed.
func chooseExponent(phi bignat.BigNat, src rng.Source) (bignat.BigNat, error) {
	e := publicExponentFloor.Clone()
	for {
		g, err := numbertheory.GCD(phi, e)
		if err != nil {
			return bignat.BigNat{}, err
		}
		if bignat.Eq(g, bignat.One()) && bignat.Gte(e, publicExponentFloor) {
			return e, nil
		}
		e = randomExponentCandidate(src)
	}
}

// randomExponentCandidate draws a fresh 5-decimal-digit BigNat, mirroring
// PrimeGenerator::MakeRandom(e, 5): every digit uniform, top digit forced
// nonzero so the result has exactly 5 significant digits.
func randomExponentCandidate(src rng.Source) bignat.BigNat {
	digits := make([]byte, exponentResampleDigits)
	for i := range digits {
		digits[i] = rng.UniformDigit(src)
	}
	digits[exponentResampleDigits-1] = rng.UniformDigitNonZero(src)
	v, err := bignat.FromDigitsLE(digits)
	if err != nil {
		// Unreachable: UniformDigit/UniformDigitNonZero only ever produce
		// values in [0,9].
		panic(err)
	}
	return v
}
