package elgamal

import (
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/cryptonum/modp-go/pkg/modp"
	"github.com/cryptonum/modp-go/pkg/modp/internal/sample"
)

// DefaultSignAttempts bounds the ephemeral-exponent retry loop in Sign. Each
// draw fails only when k shares a factor with P-1 or produces s = 0, roughly
// a coin flip per attempt for safe-prime groups, so 256 attempts make
// exhaustion practically impossible with a healthy random source.
const DefaultSignAttempts = 256

// Signature is an ElGamal-family signature over a digest reduced mod P-1.
// R satisfies 0 < R < P and S satisfies 0 < S < P-1.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Sign produces a signature over the digest with the private key. The digest
// is reduced modulo P-1 first (DigestMessage performs the same reduction);
// signing two distinct digests with the same ephemeral exponent reveals the
// private key, which is why the exponent is drawn fresh per call and
// zeroized before returning.
//
// Each attempt draws k uniformly from [1, P-2] and keeps it only when k is
// invertible modulo P-1 and the resulting s is nonzero, computing
// r = g^k mod p and s = k⁻¹·(digest - x·r) mod (p-1). The retry loop is
// bounded by DefaultSignAttempts and fails with ErrAttemptsExhausted once
// spent.
func Sign(random io.Reader, digest *big.Int, priv *PrivateKey) (*Signature, error) {
	if priv == nil || priv.X == nil || priv.P == nil || priv.G == nil {
		return nil, fmt.Errorf("%w: key is nil or incomplete", ErrInvalidKey)
	}
	if digest == nil {
		return nil, fmt.Errorf("digest is nil")
	}
	pMinusOne := new(big.Int).Sub(priv.P, one)
	e := new(big.Int).Mod(digest, pMinusOne)

	xr := new(big.Int)
	for attempt := 0; attempt < DefaultSignAttempts; attempt++ {
		k, err := sample.Uniform(random, one, pMinusOne)
		if err != nil {
			return nil, fmt.Errorf("draw ephemeral exponent: %w", err)
		}
		kInv, err := modp.ModInverse(k, pMinusOne)
		if err != nil {
			modp.ZeroizeInt(k)
			continue // k shares a factor with p-1; redraw
		}
		r := modp.ModPow(priv.G, k, priv.P)

		xr.Mul(priv.X, r)
		s := new(big.Int).Sub(e, xr)
		s.Mul(s, kInv)
		s.Mod(s, pMinusOne)

		modp.ZeroizeInt(k)
		modp.ZeroizeInt(kInv)
		if s.Sign() == 0 {
			continue // degenerate signature; redraw
		}
		return &Signature{R: r, S: s}, nil
	}
	return nil, ErrAttemptsExhausted
}

// Verify reports whether the signature is valid for the digest under the
// public key: the ranges 0 < r < p and 0 < s < p-1 must hold, and
// g^digest ≡ y^r · r^s (mod p). The digest is reduced modulo P-1 exactly as
// in Sign. Malformed inputs verify as false rather than erroring; a
// signature check has only two useful outcomes.
func Verify(digest *big.Int, sig *Signature, pub *PublicKey) bool {
	if pub.Validate() != nil || sig == nil || sig.R == nil || sig.S == nil || digest == nil {
		return false
	}
	pMinusOne := new(big.Int).Sub(pub.P, one)
	if sig.R.Sign() <= 0 || sig.R.Cmp(pub.P) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(pMinusOne) >= 0 {
		return false
	}
	e := new(big.Int).Mod(digest, pMinusOne)

	lhs := modp.ModPow(pub.G, e, pub.P)
	rhs := modp.ModPow(pub.Y, sig.R, pub.P)
	rhs.Mul(rhs, modp.ModPow(sig.R, sig.S, pub.P))
	rhs.Mod(rhs, pub.P)
	return lhs.Cmp(rhs) == 0
}

// DigestMessage hashes the message with SHA3-256 and reduces the result
// modulo p-1, producing the integer form Sign and Verify operate on. The
// modulus must be a group modulus of at least 2; smaller values leave the
// digest unreduced.
func DigestMessage(msg []byte, p *big.Int) *big.Int {
	sum := sha3.Sum256(msg)
	digest := new(big.Int).SetBytes(sum[:])
	if p == nil || p.Cmp(two) < 0 {
		return digest
	}
	pMinusOne := new(big.Int).Sub(p, one)
	return digest.Mod(digest, pMinusOne)
}
