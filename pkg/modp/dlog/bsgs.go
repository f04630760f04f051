package dlog

import (
	"errors"
	"math/big"

	"github.com/cryptonum/modp-go/pkg/modp"
)

// ErrNotFound indicates that a discrete-log search exhausted its bound without
// finding a solution. This is the expected outcome whenever no exponent within
// the bound exists; match it with errors.Is to distinguish it from genuine
// failures such as an invalid modulus or a failing random source.
var ErrNotFound = errors.New("no discrete logarithm within the search bound")

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// BabyStepGiantStep returns the smallest x with 0 <= x <= maxSteps and
// g^x ≡ h (mod p), using O(√maxSteps) time and memory. It tabulates the baby
// steps g^j for j in [0, n) with n = ceil(√maxSteps), then probes the giant
// steps h·(g^-n)^i for increasing i until a table hit yields x = i·n + j.
//
// The search is deterministic. It fails with ErrNotFound when no exponent
// within the bound satisfies the equation, with ErrInvalidModulus when p is
// not positive, and with ErrNoInverse when g is not invertible modulo p.
func BabyStepGiantStep(g, h, p *big.Int, maxSteps uint64) (*big.Int, error) {
	if p.Sign() <= 0 {
		return nil, modp.ErrInvalidModulus
	}
	base := new(big.Int).Mod(g, p)
	target := new(big.Int).Mod(h, p)

	bound := new(big.Int).SetUint64(maxSteps)
	root := new(big.Int).Sqrt(bound)
	n := root.Uint64()
	if n == 0 {
		n = 1
	} else if new(big.Int).Mul(root, root).Cmp(bound) < 0 {
		n++
	}

	// Baby steps: first exponent wins so that the recovered x is minimal.
	table := make(map[string]uint64, n)
	e := big.NewInt(1)
	for j := uint64(0); j < n; j++ {
		key := string(e.Bytes())
		if _, seen := table[key]; !seen {
			table[key] = j
		}
		e.Mul(e, base)
		e.Mod(e, p)
	}

	giant := modp.ModPow(base, new(big.Int).SetUint64(n), p)
	factor, err := modp.ModInverse(giant, p)
	if err != nil {
		return nil, err
	}

	gamma := new(big.Int).Set(target)
	for i := uint64(0); i <= maxSteps/n; i++ {
		if j, ok := table[string(gamma.Bytes())]; ok {
			x := i*n + j
			if x > maxSteps {
				break // larger i can only produce larger x
			}
			return new(big.Int).SetUint64(x), nil
		}
		gamma.Mul(gamma, factor)
		gamma.Mod(gamma, p)
	}
	return nil, ErrNotFound
}
