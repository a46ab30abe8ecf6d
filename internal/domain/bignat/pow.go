package bignat

// Pow returns a^e using binary (square-and-multiply) exponentiation.
func Pow(a BigNat, e uint64) BigNat {
	result := One()
	base := a.Clone()
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		e >>= 1
	}
	return result
}

// PowMod returns a^e mod n using binary exponentiation, reducing modulo n
// after every multiplication so intermediate values never grow beyond
// roughly n^2. It reports ErrDivideByZero if n is zero.
func PowMod(a, e, n BigNat) (BigNat, error) {
	if n.IsZero() {
		return BigNat{}, ErrDivideByZero
	}
	if Eq(n, One()) {
		return Zero(), nil
	}

	result := One()
	base, err := Mod(a, n)
	if err != nil {
		return BigNat{}, err
	}
	exp := e.Clone()
	two := FromUint64(2)

	for !exp.IsZero() {
		if !exp.IsEven() {
			result = Mul(result, base)
			result, err = Mod(result, n)
			if err != nil {
				return BigNat{}, err
			}
		}
		base = Mul(base, base)
		base, err = Mod(base, n)
		if err != nil {
			return BigNat{}, err
		}
		exp, _, err = DivMod(exp, two)
		if err != nil {
			return BigNat{}, err
		}
	}
	return result, nil
}
