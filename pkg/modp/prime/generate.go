package prime

import (
	"errors"
	"io"
	"math/big"

	"github.com/cryptonum/modp-go/pkg/modp/internal/sample"
)

// ErrAttemptsExhausted indicates that a generation loop spent its candidate
// budget without finding a prime. The caller may retry with a fresh budget; a
// correctly sized budget makes this vanishingly rare with a healthy random
// source, so repeated exhaustion usually points at the source itself.
var ErrAttemptsExhausted = errors.New("prime search exhausted its attempt budget")

// smallPrimes contains the odd primes below 54. A candidate divisible by any
// of them is rejected before the Miller–Rabin rounds, discarding the bulk of
// composites at the cost of one big.Int division.
var smallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

// smallPrimesProduct is the product of the values in smallPrimes.
var smallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// hasSmallFactor reports whether any prime in smallPrimes divides n. Call only
// with n of more than 6 bits so that n itself cannot be one of the primes.
func hasSmallFactor(n *big.Int) bool {
	m := new(big.Int).Mod(n, smallPrimesProduct).Uint64()
	for _, p := range smallPrimes {
		if m%uint64(p) == 0 {
			return true
		}
	}
	return false
}

// Generate returns a random prime of exactly the requested bit length. Each
// attempt draws an odd candidate with its top bit set, discards it on a small
// prime factor, and otherwise runs IsProbablePrime with the given rounds
// (DefaultRounds if rounds <= 0).
//
// The search stops with ErrAttemptsExhausted after maxAttempts candidates;
// maxAttempts <= 0 selects a default of 64·bits, comfortably above the
// ~0.35·bits candidates expected by the prime number theorem.
func Generate(random io.Reader, bits, rounds, maxAttempts int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.New("bit length must be at least 2")
	}
	if maxAttempts <= 0 {
		maxAttempts = 64 * bits
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate, err := sample.Odd(random, bits)
		if err != nil {
			return nil, err
		}
		if bits > 6 && hasSmallFactor(candidate) {
			continue
		}
		ok, err := IsProbablePrime(random, candidate, rounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}
	return nil, ErrAttemptsExhausted
}

// GenerateSafe returns a safe-prime pair (p, q) with p = 2q+1, both prime and
// p of exactly the requested bit length. Each attempt draws a candidate q of
// bits-1 bits and tests the pair together, cheapest checks first: candidates
// with q ≡ 1 (mod 3) are dropped immediately since 3 would divide 2q+1, then
// small-factor sieving runs on both numbers before any Miller–Rabin round.
//
// Safe primes are much sparser than primes, so the default budget for
// maxAttempts <= 0 is 64·bits² candidates. Expect the search to be slow for
// production bit lengths; see Group2048 in the elgamal package for published
// parameters that avoid the search entirely.
func GenerateSafe(random io.Reader, bits, rounds, maxAttempts int) (p, q *big.Int, err error) {
	if bits < 3 {
		return nil, nil, errors.New("bit length must be at least 3")
	}
	if maxAttempts <= 0 {
		maxAttempts = 64 * bits * bits
	}
	three := big.NewInt(3)
	rem := new(big.Int)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		q, err := sample.Odd(random, bits-1)
		if err != nil {
			return nil, nil, err
		}
		if rem.Mod(q, three).Cmp(one) == 0 {
			continue
		}
		p := new(big.Int).Lsh(q, 1)
		p.Add(p, one)
		if bits > 7 && (hasSmallFactor(q) || hasSmallFactor(p)) {
			continue
		}
		if ok, err := IsProbablePrime(random, q, rounds); err != nil || !ok {
			if err != nil {
				return nil, nil, err
			}
			continue
		}
		if ok, err := IsProbablePrime(random, p, rounds); err != nil || !ok {
			if err != nil {
				return nil, nil, err
			}
			continue
		}
		return p, q, nil
	}
	return nil, nil, ErrAttemptsExhausted
}
