package bignat

// Add returns a + b.
func Add(a, b BigNat) BigNat {
	n := a.used
	if b.used > n {
		n = b.used
	}
	out := make([]byte, n+1)
	var carry byte
	for i := 0; i < n; i++ {
		var da, db byte
		if i < a.used {
			da = a.digits[i]
		}
		if i < b.used {
			db = b.digits[i]
		}
		s := da + db + carry
		out[i] = s % 10
		carry = s / 10
	}
	out[n] = carry
	r := BigNat{digits: out, used: n + 1}
	r.trim()
	return r
}

// Sub returns a - b. It reports ErrNegativeResult if a < b, since BigNat has
// no representation for negative values (see numbertheory.SignedBigNat for
// callers that need a sign).
func Sub(a, b BigNat) (BigNat, error) {
	if Lt(a, b) {
		return BigNat{}, ErrNegativeResult
	}
	out := make([]byte, a.used)
	var borrow byte
	for i := 0; i < a.used; i++ {
		var db byte
		if i < b.used {
			db = b.digits[i]
		}
		da := a.digits[i]
		if da < db+borrow {
			out[i] = byte(10 + int(da) - int(db) - int(borrow))
			borrow = 1
		} else {
			out[i] = da - db - borrow
			borrow = 0
		}
	}
	r := BigNat{digits: out, used: a.used}
	r.trim()
	return r, nil
}

// Inc increments b in place (b := b + 1).
func (b *BigNat) Inc() {
	for i := 0; i < b.used; i++ {
		b.digits[i]++
		if b.digits[i] < 10 {
			return
		}
		b.digits[i] = 0
	}
	b.grow(b.used + 1)
	b.digits[b.used] = 1
	b.used++
}

// Dec decrements b in place (b := b - 1). It reports ErrNegativeResult if b
// is already zero.
func (b *BigNat) Dec() error {
	if b.IsZero() {
		return ErrNegativeResult
	}
	for i := 0; i < b.used; i++ {
		if b.digits[i] > 0 {
			b.digits[i]--
			break
		}
		b.digits[i] = 9
	}
	b.trim()
	return nil
}
