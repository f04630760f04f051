package elgamal

import (
	"math/big"
)

// modp2048Hex is the 2048-bit MODP safe prime from RFC 3526, section 3:
// p = 2^2048 - 2^1984 - 1 + 2^64 * ( floor(2^1918 Pi) + 124476 ).
const modp2048Hex = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3D" +
	"C2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F" +
	"83655D23DCA3AD961C62F356208552BB9ED529077096966D" +
	"670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
	"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9" +
	"DE2BCBF6955817183995497CEA956AE515D2261898FA0510" +
	"15728E5A8AACAA68FFFFFFFFFFFFFFFF"

// Group2048 returns the RFC 3526 2048-bit MODP group with generator 2. The
// parameters are published safe-prime constants, so callers get a validated
// group without the multi-minute search GenerateGroup would run at this size.
//
// The generator 2 is a quadratic residue for this prime and generates the
// prime-order-Q subgroup rather than the full group; every operation in this
// package holds under either order. Each call returns freshly allocated
// integers, so mutating one returned group cannot affect another.
func Group2048() *Group {
	p, ok := new(big.Int).SetString(modp2048Hex, 16)
	if !ok {
		panic("elgamal: corrupt embedded group constant")
	}
	q := new(big.Int).Rsh(p, 1) // (p-1)/2 for odd p
	return &Group{P: p, Q: q, G: big.NewInt(2)}
}
