package elgamal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/cryptonum/modp-go/pkg/modp"
	"github.com/cryptonum/modp-go/pkg/modp/logging"
	"github.com/cryptonum/modp-go/pkg/modp/prime"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Group describes a safe-prime discrete-log group: a modulus P = 2Q+1 with
// both P and Q prime, and a generator G.
//
// Groups produced by GenerateGroup satisfy G² ≠ 1 and G^Q ≠ 1 (mod P), making
// G a generator of the full multiplicative group of order 2Q. Imported
// parameters may instead carry a generator of the prime-order-Q subgroup
// (RFC 3526 uses G = 2, a quadratic residue); Validate accepts both, and every
// encryption and signature law in this package holds under either order.
type Group struct {
	P *big.Int // safe-prime modulus
	Q *big.Int // (P-1)/2, prime
	G *big.Int // generator
}

// DefaultGeneratorCandidates bounds the trial search over small generator
// candidates when GroupParams.GeneratorCandidates is zero.
const DefaultGeneratorCandidates = 1000

// GroupParams configures GenerateGroup. Zero values select documented
// defaults for every field except Random and Bits, which are required.
type GroupParams struct {
	// Random supplies cryptographically secure random bytes
	// (crypto/rand.Reader in production). Required.
	Random io.Reader

	// Bits is the bit length of the safe-prime modulus. Required; at least 8.
	Bits int

	// Rounds is the Miller–Rabin round count for both primes of the pair
	// (prime.DefaultRounds when <= 0).
	Rounds int

	// PrimeAttempts caps the safe-prime candidate search; <= 0 selects the
	// prime package's default budget.
	PrimeAttempts int

	// GeneratorCandidates caps the generator trial search; <= 0 selects
	// DefaultGeneratorCandidates.
	GeneratorCandidates int

	// Logger, when set, receives search progress events. Only public values
	// such as bit lengths and candidate indices are logged, never secrets.
	Logger logging.Logger
}

// GenerateGroup produces a fresh safe-prime group: it searches for p = 2q+1
// with both p and q prime (q drawn at bits-1 so p lands on the requested
// length), then finds a generator by trial over small candidates g = 2, 3, …
// accepting the first with g² ≠ 1 and g^q ≠ 1 (mod p).
//
// Both searches are bounded (GroupParams.PrimeAttempts and
// GroupParams.GeneratorCandidates) and fail fast with
// prime.ErrAttemptsExhausted or ErrNoGenerator rather than looping
// indefinitely. Safe-prime searches at production bit lengths are expensive;
// Group2048 returns published parameters for callers that do not need a
// private group.
func GenerateGroup(params *GroupParams) (*Group, error) {
	if params == nil || params.Random == nil {
		return nil, errors.New("group params require a random source")
	}
	if params.Bits < 8 {
		return nil, errors.New("group modulus must be at least 8 bits")
	}
	logger := params.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	ctx := context.Background()

	p, q, err := prime.GenerateSafe(params.Random, params.Bits, params.Rounds, params.PrimeAttempts)
	if err != nil {
		return nil, fmt.Errorf("safe prime search: %w", err)
	}
	logger.Debug(ctx, "safe prime found", "bits", p.BitLen())

	candidates := params.GeneratorCandidates
	if candidates <= 0 {
		candidates = DefaultGeneratorCandidates
	}
	pMinusOne := new(big.Int).Sub(p, one)
	g := new(big.Int)
	for c := int64(2); c < 2+int64(candidates); c++ {
		g.SetInt64(c)
		if g.Cmp(pMinusOne) >= 0 {
			break // candidates beyond p-2 cannot generate anything new
		}
		if modp.ModPow(g, two, p).Cmp(one) != 0 && modp.ModPow(g, q, p).Cmp(one) != 0 {
			group := &Group{P: p, Q: q, G: new(big.Int).Set(g)}
			logger.Info(ctx, "group generated", "bits", params.Bits, "generator", c)
			return group, nil
		}
	}
	return nil, ErrNoGenerator
}

// Validate checks the structural group invariants: all fields present,
// p = 2q+1, the generator within [2, p-2] (excluding the elements of order one
// and two, so ord(G) is q or 2q), and both p and q probable primes at the
// given round count. Primality testing consumes randomness, hence the reader.
//
// The wrapped ErrInvalidGroup failures name the violated invariant; errors
// from the random source are propagated as-is.
func (grp *Group) Validate(random io.Reader, rounds int) error {
	if grp == nil || grp.P == nil || grp.Q == nil || grp.G == nil {
		return fmt.Errorf("%w: group is nil or incomplete", ErrInvalidGroup)
	}
	expected := new(big.Int).Lsh(grp.Q, 1)
	expected.Add(expected, one)
	if expected.Cmp(grp.P) != 0 {
		return fmt.Errorf("%w: p != 2q+1", ErrInvalidGroup)
	}
	pMinusOne := new(big.Int).Sub(grp.P, one)
	if grp.G.Cmp(two) < 0 || grp.G.Cmp(pMinusOne) >= 0 {
		return fmt.Errorf("%w: generator outside [2, p-2]", ErrInvalidGroup)
	}
	if ok, err := prime.IsProbablePrime(random, grp.Q, rounds); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: q is not prime", ErrInvalidGroup)
	}
	if ok, err := prime.IsProbablePrime(random, grp.P, rounds); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: p is not prime", ErrInvalidGroup)
	}
	return nil
}
