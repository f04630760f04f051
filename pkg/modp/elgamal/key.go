package elgamal

import (
	"fmt"
	"io"
	"math/big"

	"github.com/cryptonum/modp-go/pkg/modp"
	"github.com/cryptonum/modp-go/pkg/modp/internal/sample"
)

// PublicKey is an ElGamal public key: the group and the public element
// Y = G^X mod P. Public keys are safe to log, store, and transmit.
type PublicKey struct {
	Group
	Y *big.Int
}

// PrivateKey is an ElGamal private key. It embeds the corresponding
// PublicKey together with the secret exponent X in [1, P-2].
//
// X is sensitive material: never log or format it, and call Zeroize once the
// key is no longer needed. The library itself retains no reference to the key
// beyond the duration of a call.
type PrivateKey struct {
	PublicKey
	X *big.Int
}

// GenerateKey produces a key pair for the group: a private exponent X drawn
// uniformly from [1, P-2] and the public element Y = G^X mod P. The returned
// key shares the group's parameter integers; groups are immutable after
// creation, so the sharing is safe.
func GenerateKey(random io.Reader, group *Group) (*PrivateKey, error) {
	if group == nil || group.P == nil || group.G == nil {
		return nil, fmt.Errorf("%w: group is nil or incomplete", ErrInvalidGroup)
	}
	pMinusOne := new(big.Int).Sub(group.P, one)
	x, err := sample.Uniform(random, one, pMinusOne)
	if err != nil {
		return nil, fmt.Errorf("draw private exponent: %w", err)
	}
	return &PrivateKey{
		PublicKey: PublicKey{
			Group: *group,
			Y:     modp.ModPow(group.G, x, group.P),
		},
		X: x,
	}, nil
}

// Validate checks the public key's structural invariants: group fields
// present and Y in [1, P-1]. It does not re-test group primality; run
// Group.Validate separately when the group itself is untrusted.
func (pub *PublicKey) Validate() error {
	if pub == nil || pub.P == nil || pub.G == nil || pub.Y == nil {
		return fmt.Errorf("%w: key is nil or incomplete", ErrInvalidKey)
	}
	if pub.Y.Sign() <= 0 || pub.Y.Cmp(pub.P) >= 0 {
		return fmt.Errorf("%w: y outside [1, p-1]", ErrInvalidKey)
	}
	return nil
}

// Validate checks the private key's structural invariants: a valid embedded
// public key, X in [1, P-2], and consistency Y == G^X mod P.
func (priv *PrivateKey) Validate() error {
	if priv == nil || priv.X == nil {
		return fmt.Errorf("%w: key is nil or incomplete", ErrInvalidKey)
	}
	if err := priv.PublicKey.Validate(); err != nil {
		return err
	}
	pMinusOne := new(big.Int).Sub(priv.P, one)
	if priv.X.Sign() <= 0 || priv.X.Cmp(pMinusOne) >= 0 {
		return fmt.Errorf("%w: x outside [1, p-2]", ErrInvalidKey)
	}
	if modp.ModPow(priv.G, priv.X, priv.P).Cmp(priv.Y) != 0 {
		return fmt.Errorf("%w: y does not match g^x", ErrInvalidKey)
	}
	return nil
}

// Zeroize overwrites the private exponent in place. The key is unusable
// afterwards; the embedded public key remains intact.
func (priv *PrivateKey) Zeroize() {
	if priv == nil {
		return
	}
	modp.ZeroizeInt(priv.X)
}
