// Package crt combines systems of congruences with the Chinese Remainder
// Theorem and provides the classic two-prime decryption accelerator built on
// the same identity.
//
// Solve reconstructs the unique residue modulo the product of pairwise-coprime
// moduli. Key precomputes the exponent and inverse pieces of an RSA-shaped
// private key (p, q, d) so that Decrypt runs two half-size exponentiations
// instead of one full-size one, roughly a 4× speedup.
package crt

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cryptonum/modp-go/pkg/modp"
)

var (
	// ErrNonCoprimeModuli indicates that two moduli in the system share a
	// factor, detected when a partial product has no inverse. The theorem
	// requires pairwise-coprime moduli; no unique solution exists otherwise.
	ErrNonCoprimeModuli = errors.New("moduli are not pairwise coprime")

	// ErrLengthMismatch indicates that the remainder and modulus slices
	// differ in length.
	ErrLengthMismatch = errors.New("remainders and moduli differ in length")

	// ErrEmptySystem indicates a congruence system with no equations.
	ErrEmptySystem = errors.New("congruence system is empty")
)

var one = big.NewInt(1)

// Solve returns the unique x in [0, Π moduli) satisfying
// x ≡ remainders[i] (mod moduli[i]) for every i. It computes M = Π moduli and
// accumulates remainders[i]·Mi·yi with Mi = M/moduli[i] and
// yi = Mi⁻¹ mod moduli[i].
//
// Moduli must be positive and pairwise coprime; a shared factor surfaces as
// ErrNonCoprimeModuli when the corresponding inverse fails to exist.
func Solve(remainders, moduli []*big.Int) (*big.Int, error) {
	if len(remainders) != len(moduli) {
		return nil, ErrLengthMismatch
	}
	if len(moduli) == 0 {
		return nil, ErrEmptySystem
	}

	product := big.NewInt(1)
	for _, m := range moduli {
		if m.Sign() <= 0 {
			return nil, modp.ErrInvalidModulus
		}
		product.Mul(product, m)
	}

	x := new(big.Int)
	partial := new(big.Int)
	term := new(big.Int)
	for i, m := range moduli {
		partial.Quo(product, m)
		inverse, err := modp.ModInverse(partial, m)
		if err != nil {
			return nil, fmt.Errorf("%w: modulus at index %d shares a factor", ErrNonCoprimeModuli, i)
		}
		term.Mul(remainders[i], partial)
		term.Mul(term, inverse)
		x.Add(x, term)
	}
	return x.Mod(x, product), nil
}

// Key holds the precomputed pieces of a two-prime private key used by the CRT
// decryption shortcut: the prime factors P and Q, the exponent d reduced
// modulo p-1 and q-1 (Dp, Dq), and QInv = q⁻¹ mod p. Callers that already
// hold the reduced values can populate the struct directly; NewKey derives
// them from (p, q, d).
type Key struct {
	P    *big.Int
	Q    *big.Int
	Dp   *big.Int
	Dq   *big.Int
	QInv *big.Int
}

// NewKey precomputes a Key from the prime factors p, q and the private
// exponent d: Dp = d mod p-1, Dq = d mod q-1, QInv = q⁻¹ mod p. It fails with
// ErrNoInverse when q has no inverse modulo p (i.e. p == q), since the
// recombination step requires distinct primes.
func NewKey(p, q, d *big.Int) (*Key, error) {
	qInv, err := modp.ModInverse(q, p)
	if err != nil {
		return nil, fmt.Errorf("invert q modulo p: %w", err)
	}
	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)
	return &Key{
		P:    new(big.Int).Set(p),
		Q:    new(big.Int).Set(q),
		Dp:   new(big.Int).Mod(d, pMinusOne),
		Dq:   new(big.Int).Mod(d, qMinusOne),
		QInv: qInv,
	}, nil
}

// Decrypt returns c^d mod p·q computed through the CRT shortcut:
// m1 = c^Dp mod P, m2 = c^Dq mod Q, h = QInv·(m1-m2) mod P, and the result is
// m2 + h·Q. Two exponentiations at half the modulus size replace one at full
// size, which is roughly four times faster since modular multiplication cost
// grows quadratically in operand words.
func (k *Key) Decrypt(c *big.Int) *big.Int {
	m1 := modp.ModPow(c, k.Dp, k.P)
	m2 := modp.ModPow(c, k.Dq, k.Q)

	h := new(big.Int).Sub(m1, m2)
	h.Mul(h, k.QInv)
	h.Mod(h, k.P)

	m := new(big.Int).Mul(h, k.Q)
	return m.Add(m, m2)
}
