package dlog

import (
	"errors"
	"io"
	"math/big"

	"github.com/cryptonum/modp-go/pkg/modp"
	"github.com/cryptonum/modp-go/pkg/modp/internal/sample"
)

// DefaultRhoIterations is the Floyd-iteration cap applied when a caller passes
// maxIters == 0. A walk over a group of order n is expected to collide within
// about √n iterations, so the default comfortably covers orders up to ~2^40
// while still guaranteeing termination.
const DefaultRhoIterations = 1 << 20

var three = big.NewInt(3)

// rhoWalk advances Pollard-rho triples (x, a, b) maintaining the invariant
// x = g^a · h^b (mod p) with exponents reduced modulo the group order.
type rhoWalk struct {
	p       *big.Int
	order   *big.Int
	base    *big.Int
	target  *big.Int
	scratch *big.Int
}

// step applies the iteration function, partitioned into three branches by
// x mod 3: squaring, multiplication by g, or multiplication by h.
func (w *rhoWalk) step(x, a, b *big.Int) {
	switch w.scratch.Mod(x, three).Int64() {
	case 0:
		x.Mul(x, x)
		x.Mod(x, w.p)
		a.Lsh(a, 1)
		a.Mod(a, w.order)
		b.Lsh(b, 1)
		b.Mod(b, w.order)
	case 1:
		x.Mul(x, w.base)
		x.Mod(x, w.p)
		a.Add(a, one)
		a.Mod(a, w.order)
	default:
		x.Mul(x, w.target)
		x.Mod(x, w.p)
		b.Add(b, one)
		b.Mod(b, w.order)
	}
}

// PollardRho returns an x with g^x ≡ h (mod p), searching the group of the
// given order with Pollard's rho: pseudo-random walks tracked as triples
// (x, a, b) with x = g^a·h^b, and Floyd tortoise/hare cycle detection. A
// collision between the two walks gives a1 + x·b1 ≡ a2 + x·b2, solved as
// x = (a1-a2)/(b2-b1) mod order.
//
// When the derived denominator has no inverse modulo the order (a degenerate
// collision), the walk restarts from fresh random exponents drawn from the
// injected source, and the consumed iterations still count against the budget.
// Every recovered candidate is verified by re-exponentiation before being
// returned, so composite orders cannot yield a wrong answer, only a restart.
//
// The walk is hard-capped at maxIters Floyd iterations (DefaultRhoIterations
// when zero) and fails with ErrNotFound once the cap is reached, an expected
// outcome when no solution exists. Randomness errors from the injected reader
// are wrapped and propagated.
func PollardRho(random io.Reader, g, h, p, order *big.Int, maxIters uint64) (*big.Int, error) {
	if p.Sign() <= 0 || order.Sign() <= 0 {
		return nil, modp.ErrInvalidModulus
	}
	if maxIters == 0 {
		maxIters = DefaultRhoIterations
	}
	base := new(big.Int).Mod(g, p)
	target := new(big.Int).Mod(h, p)
	if target.Cmp(one) == 0 {
		return big.NewInt(0), nil
	}

	walk := &rhoWalk{p: p, order: order, base: base, target: target, scratch: new(big.Int)}

	num := new(big.Int)
	den := new(big.Int)
	iters := uint64(0)
	for iters < maxIters {
		a0, err := sample.Uniform(random, zero, order)
		if err != nil {
			return nil, err
		}
		b0, err := sample.Uniform(random, zero, order)
		if err != nil {
			return nil, err
		}
		x0 := new(big.Int).Mul(modp.ModPow(base, a0, p), modp.ModPow(target, b0, p))
		x0.Mod(x0, p)

		x1, a1, b1 := new(big.Int).Set(x0), new(big.Int).Set(a0), new(big.Int).Set(b0)
		x2, a2, b2 := new(big.Int).Set(x0), new(big.Int).Set(a0), new(big.Int).Set(b0)

		collided := false
		for iters < maxIters {
			iters++
			walk.step(x1, a1, b1)
			walk.step(x2, a2, b2)
			walk.step(x2, a2, b2)
			if x1.Cmp(x2) == 0 {
				collided = true
				break
			}
		}
		if !collided {
			break
		}

		num.Sub(a1, a2)
		num.Mod(num, order)
		den.Sub(b2, b1)
		den.Mod(den, order)
		if den.Sign() == 0 {
			continue // both walks carry identical exponents; try another start
		}
		denInv, err := modp.ModInverse(den, order)
		if errors.Is(err, modp.ErrNoInverse) {
			continue // denominator shares a factor with the order; skip and go on
		}
		if err != nil {
			return nil, err
		}
		candidate := new(big.Int).Mul(num, denInv)
		candidate.Mod(candidate, order)
		if modp.ModPow(base, candidate, p).Cmp(target) == 0 {
			return candidate, nil
		}
	}
	return nil, ErrNotFound
}
