package modp

import (
	"math/big"
)

// EulerTotient returns φ(n), the count of integers in [1, n] coprime to n,
// via trial-division factorization up to √n. It fails with ErrInvalidModulus
// when n is not positive. Runtime grows with the square root of the largest
// prime factor; callers that already hold the factorization should use
// TotientFromFactors instead.
func EulerTotient(n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	remaining := new(big.Int).Set(n)
	result := new(big.Int).Set(n)

	factor := big.NewInt(2)
	square := new(big.Int)
	rem := new(big.Int)
	for square.Mul(factor, factor).Cmp(remaining) <= 0 {
		if rem.Mod(remaining, factor).Sign() == 0 {
			// factor is prime here: smaller divisors are already stripped.
			result.Sub(result, new(big.Int).Quo(result, factor))
			for rem.Mod(remaining, factor).Sign() == 0 {
				remaining.Quo(remaining, factor)
			}
		}
		if factor.Cmp(two) == 0 {
			factor = big.NewInt(3)
		} else {
			factor.Add(factor, two)
		}
	}
	if remaining.Cmp(one) > 0 {
		result.Sub(result, new(big.Int).Quo(result, remaining))
	}
	return result, nil
}

// TotientFromFactors returns φ(p·q) = (p-1)·(q-1), the O(1) shortcut for a
// semiprime whose distinct prime factors p and q are already known.
func TotientFromFactors(p, q *big.Int) *big.Int {
	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)
	return pMinusOne.Mul(pMinusOne, qMinusOne)
}

// Legendre returns the Legendre symbol (a/p) in {-1, 0, 1} by Euler's
// criterion: a^((p-1)/2) mod p. The modulus must be an odd prime; primality is
// a documented precondition, not verified here, and for composite moduli the
// result is meaningless (use Jacobi instead).
func Legendre(a, p *big.Int) int {
	reduced := new(big.Int).Mod(a, p)
	if reduced.Sign() == 0 {
		return 0
	}
	exponent := new(big.Int).Sub(p, one)
	exponent.Rsh(exponent, 1)
	if ModPow(reduced, exponent, p).Cmp(one) == 0 {
		return 1
	}
	return -1
}

// Jacobi returns the Jacobi symbol (a/n) in {-1, 0, 1}, generalizing the
// Legendre symbol to odd composite moduli through the standard
// quadratic-reciprocity recursion (expressed as a loop). It fails with
// ErrInvalidModulus when n is non-positive or even.
func Jacobi(a, n *big.Int) (int, error) {
	if n.Sign() <= 0 || n.Bit(0) == 0 {
		return 0, ErrInvalidModulus
	}
	num := new(big.Int).Mod(a, n)
	den := new(big.Int).Set(n)

	result := 1
	for num.Sign() != 0 {
		// Strip factors of two: (2/den) = -1 iff den ≡ ±3 (mod 8).
		for num.Bit(0) == 0 {
			num.Rsh(num, 1)
			if m := den.Bit(2)<<2 | den.Bit(1)<<1 | den.Bit(0); m == 3 || m == 5 {
				result = -result
			}
		}
		// Reciprocity: flip when both sides are ≡ 3 (mod 4). Both are odd here.
		num, den = den, num
		if num.Bit(1) == 1 && den.Bit(1) == 1 {
			result = -result
		}
		num.Mod(num, den)
	}
	if den.Cmp(one) == 0 {
		return result, nil
	}
	return 0, nil
}
