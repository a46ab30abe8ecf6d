package bignat

// uint64DigitCount is the number of decimal digits in math.MaxUint64
// (18446744073709551615), computed once rather than hardcoded so the
// reasoning in estimateQuotientDigit is self-documenting.
var uint64DigitCount = func() int {
	n := 0
	v := ^uint64(0)
	for v > 0 {
		n++
		v /= 10
	}
	return n
}()

// topDigitsValue reads the count most significant digits of b as a machine
// word. count is silently clamped to b.used.
func topDigitsValue(b BigNat, count int) uint64 {
	if count > b.used {
		count = b.used
	}
	if count <= 0 {
		return 0
	}
	start := b.used - count
	var v uint64
	for k := count - 1; k >= 0; k-- {
		v = v*10 + uint64(b.digits[start+k])
	}
	return v
}

// estimateQuotientDigit produces a starting guess for the next chunk of the
// quotient in DivMod, the same two-regime machine-word trick the original
// BigInt::divide used: read as many leading digits of the remainder and
// divisor as fit safely in a uint64, divide with hardware arithmetic, and
// (when the true quotient digit sits further left than the word can reach)
// shift the estimate into place. The estimate only needs to be close — the
// correction loop in DivMod fixes any overshoot, and undershoot is merely
// slower, never incorrect.
func estimateQuotientDigit(r, d BigNat) BigNat {
	offset := r.used - d.used
	safeLen := uint64DigitCount - 1  // widest prefix guaranteed to fit in uint64
	safeLen2 := uint64DigitCount - 2 // one digit narrower, used for the divisor prefix in the far regime

	var z1 BigNat
	if offset <= safeLen2 {
		i := r.used
		if i > safeLen {
			i = safeLen
		}
		j := i - offset
		if j < 1 {
			j = 1
		}
		rTop := topDigitsValue(r, i)
		dTop := topDigitsValue(d, j)
		if dTop == 0 {
			dTop = 1
		}
		z1 = FromUint64(rTop / dTop)
	} else {
		i := safeLen
		j := d.used
		if j > safeLen2 {
			j = safeLen2
		}
		rTop := topDigitsValue(r, i)
		dTop := topDigitsValue(d, j)
		if dTop == 0 {
			dTop = 1
		}
		z1 = FromUint64(rTop / dTop)
		if shift := offset - z1.used; shift > 0 {
			z1 = ShiftLeft(z1, shift)
		}
	}
	if z1.IsZero() {
		z1 = One()
	}
	return z1
}

// DivMod computes the quotient and remainder of the Euclidean division x/d,
// such that x == q*d + r and 0 <= r < d. It reports ErrDivideByZero if d is
// zero.
func DivMod(x, d BigNat) (BigNat, BigNat, error) {
	if d.IsZero() {
		return BigNat{}, BigNat{}, ErrDivideByZero
	}
	if Lt(x, d) {
		return Zero(), x.Clone(), nil
	}
	if Eq(x, d) {
		return One(), Zero(), nil
	}

	q := Zero()
	r := x.Clone()
	for Gte(r, d) {
		z1 := estimateQuotientDigit(r, d)
		prod := Mul(z1, d)
		for Gt(prod, r) {
			if z1.used > 1 {
				z1, _ = ShiftRight(z1, 1)
				if z1.IsZero() {
					z1 = One()
				}
			} else {
				_ = z1.Dec()
			}
			prod = Mul(z1, d)
		}
		var err error
		r, err = Sub(r, prod)
		if err != nil {
			return BigNat{}, BigNat{}, err
		}
		q = Add(q, z1)
	}
	return q, r, nil
}

// Mod returns a mod n, the remainder of DivMod(a, n).
func Mod(a, n BigNat) (BigNat, error) {
	_, r, err := DivMod(a, n)
	return r, err
}

// ShiftLeft returns b * 10^k. A nonpositive k or a zero b is a no-op.
func ShiftLeft(b BigNat, k int) BigNat {
	if k <= 0 || b.IsZero() {
		return b.Clone()
	}
	out := make([]byte, b.used+k)
	copy(out[k:], b.digits[:b.used])
	r := BigNat{digits: out, used: len(out)}
	r.trim()
	return r
}

// ShiftRight returns b / 10^k (integer division, truncating). It reports
// ErrShiftRightOverflow if k exceeds b's digit count, since that would
// silently discard more precision than the caller asked to drop; ask for
// exactly b.Used() to get zero back deliberately.
func ShiftRight(b BigNat, k int) (BigNat, error) {
	if k < 0 {
		k = 0
	}
	if k > b.used {
		return BigNat{}, ErrShiftRightOverflow
	}
	if k == b.used {
		return Zero(), nil
	}
	out := make([]byte, b.used-k)
	copy(out, b.digits[k:b.used])
	r := BigNat{digits: out, used: len(out)}
	r.trim()
	return r, nil
}
