package elgamal

import (
	"fmt"
	"io"
	"math/big"

	"github.com/cryptonum/modp-go/pkg/modp"
	"github.com/cryptonum/modp-go/pkg/modp/internal/sample"
)

// Ciphertext is the pair produced by Encrypt: C1 = G^k mod P and
// C2 = m·Y^k mod P for a fresh ephemeral exponent k.
type Ciphertext struct {
	C1 *big.Int
	C2 *big.Int
}

// Encrypt encrypts the message integer m under the public key. It fails with
// ErrMessageTooLarge when m is negative or at least P; encoding larger
// messages into group elements (for example by chunking) is the caller's
// concern.
//
// A fresh ephemeral exponent k is drawn uniformly from [1, P-2] on every
// call and zeroized before returning. Two encryptions of the same message
// therefore produce different ciphertexts; an io.Reader that replays bytes
// across calls breaks this and with it the scheme's semantic security.
func Encrypt(random io.Reader, m *big.Int, pub *PublicKey) (*Ciphertext, error) {
	if err := pub.Validate(); err != nil {
		return nil, err
	}
	if m == nil || m.Sign() < 0 || m.Cmp(pub.P) >= 0 {
		return nil, ErrMessageTooLarge
	}
	pMinusOne := new(big.Int).Sub(pub.P, one)
	k, err := sample.Uniform(random, one, pMinusOne)
	if err != nil {
		return nil, fmt.Errorf("draw ephemeral exponent: %w", err)
	}
	defer modp.ZeroizeInt(k)

	c1 := modp.ModPow(pub.G, k, pub.P)
	shared := modp.ModPow(pub.Y, k, pub.P)
	c2 := shared.Mul(shared, m)
	c2.Mod(c2, pub.P)
	return &Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt recovers the message from a ciphertext produced under the matching
// public key: s = C1^X mod P, then m = C2·s⁻¹ mod P. It round-trips exactly
// for any valid encryption under the same key pair.
//
// A modp.ErrNoInverse failure means the ciphertext's C1 is not invertible
// modulo P, which cannot happen for honestly produced ciphertexts and marks
// the input as malformed.
func Decrypt(ct *Ciphertext, priv *PrivateKey) (*big.Int, error) {
	if priv == nil || priv.X == nil || priv.P == nil {
		return nil, fmt.Errorf("%w: key is nil or incomplete", ErrInvalidKey)
	}
	if ct == nil || ct.C1 == nil || ct.C2 == nil {
		return nil, fmt.Errorf("ciphertext is nil or incomplete")
	}
	shared := modp.ModPow(ct.C1, priv.X, priv.P)
	sharedInv, err := modp.ModInverse(shared, priv.P)
	if err != nil {
		return nil, fmt.Errorf("invert shared value: %w", err)
	}
	m := sharedInv.Mul(sharedInv, ct.C2)
	return m.Mod(m, priv.P), nil
}

// Mul returns the component-wise product of two ciphertexts modulo p. ElGamal
// is multiplicatively homomorphic: the product of encryptions of m1 and m2
// decrypts to m1·m2 mod p. Neither input is modified; both must have been
// produced under the same public key for the homomorphism to hold.
func (ct *Ciphertext) Mul(other *Ciphertext, p *big.Int) *Ciphertext {
	c1 := new(big.Int).Mul(ct.C1, other.C1)
	c1.Mod(c1, p)
	c2 := new(big.Int).Mul(ct.C2, other.C2)
	c2.Mod(c2, p)
	return &Ciphertext{C1: c1, C2: c2}
}
