package modp

import (
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ModPow returns base^exponent mod modulus by binary square-and-multiply,
// using O(log exponent) modular multiplications. The base may be negative or
// larger than the modulus; it is reduced first. The result is the canonical
// residue in [0, modulus), which for a modulus of 1 is always 0.
//
// The exponent must be non-negative and the modulus positive. A negative
// exponent panics, and a zero modulus panics with the usual division-by-zero
// run-time error.
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	if exponent.Sign() < 0 {
		panic("modp: negative exponent")
	}
	result := big.NewInt(1)
	result.Mod(result, modulus)
	if exponent.Sign() == 0 {
		return result
	}
	reduced := new(big.Int).Mod(base, modulus)
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, modulus)
		if exponent.Bit(i) == 1 {
			result.Mul(result, reduced)
			result.Mod(result, modulus)
		}
	}
	return result
}

// ExtGCD returns gcd(a, b) together with Bézout coefficients x and y
// satisfying a·x + b·y = gcd. The computation is iterative, carrying the
// coefficient pairs through a loop rather than the call stack, so operand bit
// length never translates into stack depth. The gcd is non-negative whenever
// a and b are. Neither input is modified.
func ExtGCD(a, b *big.Int) (gcd, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR.Sub(oldR, tmp)
		oldR, r = r, oldR

		tmp.Mul(q, s)
		oldS.Sub(oldS, tmp)
		oldS, s = s, oldS

		tmp.Mul(q, t)
		oldT.Sub(oldT, tmp)
		oldT, t = t, oldT
	}
	return oldR, oldS, oldT
}

// ModInverse returns the multiplicative inverse of a modulo m, normalized to
// the canonical residue in [0, m). It fails with ErrNoInverse when
// gcd(a, m) != 1 and with ErrInvalidModulus when m is not positive.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	reduced := new(big.Int).Mod(a, m)
	gcd, x, _ := ExtGCD(reduced, m)
	if gcd.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	return x.Mod(x, m), nil
}
