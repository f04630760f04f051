package elgamal_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/cryptonum/modp-go/pkg/modp/elgamal"
	"github.com/cryptonum/modp-go/pkg/modp/testrand"
)

func TestSignVerify(t *testing.T) {
	random := testrand.New("sign roundtrip")
	priv, err := elgamal.GenerateKey(random, testGroup23())
	require.NoError(t, err)

	for _, digest := range []int64{0, 1, 9, 100, 4095} {
		sig, err := elgamal.Sign(random, big.NewInt(digest), priv)
		require.NoError(t, err, "digest=%d", digest)
		assert.True(t, elgamal.Verify(big.NewInt(digest), sig, &priv.PublicKey),
			"signature over %d rejected", digest)
	}
}

func TestSignVerifyLargeGroup(t *testing.T) {
	random := testrand.New("sign 2048")
	group := elgamal.Group2048()
	priv, err := elgamal.GenerateKey(random, group)
	require.NoError(t, err)

	digest := elgamal.DigestMessage([]byte("the quick brown fox"), group.P)
	sig, err := elgamal.Sign(random, digest, priv)
	require.NoError(t, err)
	assert.True(t, elgamal.Verify(digest, sig, &priv.PublicKey))

	// Flipping one digest bit shifts it by a power of two, which cannot
	// vanish modulo the subgroup order, so verification must fail.
	flipped := new(big.Int).Xor(digest, big.NewInt(8))
	assert.False(t, elgamal.Verify(flipped, sig, &priv.PublicKey))
}

func TestVerifyRejectsTamperedDigest(t *testing.T) {
	random := testrand.New("tampered digest")
	priv, err := elgamal.GenerateKey(random, testGroup23())
	require.NoError(t, err)

	digest := big.NewInt(5)
	sig, err := elgamal.Sign(random, digest, priv)
	require.NoError(t, err)
	require.True(t, elgamal.Verify(digest, sig, &priv.PublicKey))

	for bit := 0; bit < 4; bit++ {
		flipped := new(big.Int).Xor(digest, new(big.Int).Lsh(big.NewInt(1), uint(bit)))
		assert.False(t, elgamal.Verify(flipped, sig, &priv.PublicKey), "bit %d", bit)
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	// A large group keeps accidental collisions with another valid
	// signature out of reach; tiny test groups admit them.
	random := testrand.New("tampered signature")
	group := elgamal.Group2048()
	priv, err := elgamal.GenerateKey(random, group)
	require.NoError(t, err)

	digest := elgamal.DigestMessage([]byte("ledger entry 9"), group.P)
	sig, err := elgamal.Sign(random, digest, priv)
	require.NoError(t, err)

	bumpedR := &elgamal.Signature{R: new(big.Int).Add(sig.R, big.NewInt(1)), S: sig.S}
	assert.False(t, elgamal.Verify(digest, bumpedR, &priv.PublicKey))

	bumpedS := &elgamal.Signature{R: sig.R, S: new(big.Int).Add(sig.S, big.NewInt(1))}
	assert.False(t, elgamal.Verify(digest, bumpedS, &priv.PublicKey))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	random := testrand.New("wrong key")
	group := elgamal.Group2048()
	signer, err := elgamal.GenerateKey(random, group)
	require.NoError(t, err)
	other, err := elgamal.GenerateKey(random, group)
	require.NoError(t, err)

	digest := elgamal.DigestMessage([]byte("hello"), group.P)
	sig, err := elgamal.Sign(random, digest, signer)
	require.NoError(t, err)

	assert.True(t, elgamal.Verify(digest, sig, &signer.PublicKey))
	assert.False(t, elgamal.Verify(digest, sig, &other.PublicKey))
}

func TestVerifyRejectsOutOfRangeComponents(t *testing.T) {
	random := testrand.New("range components")
	priv, err := elgamal.GenerateKey(random, testGroup23())
	require.NoError(t, err)
	pub := &priv.PublicKey

	digest := big.NewInt(7)
	sig, err := elgamal.Sign(random, digest, priv)
	require.NoError(t, err)

	cases := []struct {
		name string
		sig  *elgamal.Signature
	}{
		{"nil signature", nil},
		{"missing s", &elgamal.Signature{R: sig.R}},
		{"r zero", &elgamal.Signature{R: big.NewInt(0), S: sig.S}},
		{"r equals p", &elgamal.Signature{R: big.NewInt(23), S: sig.S}},
		{"s zero", &elgamal.Signature{R: sig.R, S: big.NewInt(0)}},
		{"s equals p-1", &elgamal.Signature{R: sig.R, S: big.NewInt(22)}},
		{"s negative", &elgamal.Signature{R: sig.R, S: big.NewInt(-3)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, elgamal.Verify(digest, tc.sig, pub))
		})
	}

	assert.False(t, elgamal.Verify(nil, sig, pub), "nil digest")
}

func TestSignDeterministicUnderSeed(t *testing.T) {
	group := testGroup23()
	digest := big.NewInt(13)

	first, err := elgamal.GenerateKey(testrand.New("sign seed"), group)
	require.NoError(t, err)
	sigA, err := elgamal.Sign(testrand.New("ephemeral seed"), digest, first)
	require.NoError(t, err)

	second, err := elgamal.GenerateKey(testrand.New("sign seed"), group)
	require.NoError(t, err)
	sigB, err := elgamal.Sign(testrand.New("ephemeral seed"), digest, second)
	require.NoError(t, err)

	assert.Zero(t, sigA.R.Cmp(sigB.R))
	assert.Zero(t, sigA.S.Cmp(sigB.S))
}

func TestSignRejectsBadInputs(t *testing.T) {
	random := testrand.New("sign bad inputs")
	priv, err := elgamal.GenerateKey(random, testGroup23())
	require.NoError(t, err)

	_, err = elgamal.Sign(random, nil, priv)
	assert.Error(t, err)

	_, err = elgamal.Sign(random, big.NewInt(5), nil)
	assert.ErrorIs(t, err, elgamal.ErrInvalidKey)
}

func TestSignPropagatesReaderError(t *testing.T) {
	priv, err := elgamal.GenerateKey(testrand.New("sign reader"), testGroup23())
	require.NoError(t, err)
	_, err = elgamal.Sign(failReader{}, big.NewInt(5), priv)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBrokenReader)
}

func TestDigestMessage(t *testing.T) {
	group := testGroup23()
	digest := elgamal.DigestMessage([]byte("message one"), group.P)
	pMinusOne := big.NewInt(22)
	assert.True(t, digest.Sign() >= 0 && digest.Cmp(pMinusOne) < 0,
		"digest %v not reduced modulo p-1", digest)

	again := elgamal.DigestMessage([]byte("message one"), group.P)
	assert.Zero(t, digest.Cmp(again), "digest is not deterministic")

	other := elgamal.DigestMessage([]byte("message two"), elgamal.Group2048().P)
	sameMsg := elgamal.DigestMessage([]byte("message one"), elgamal.Group2048().P)
	assert.NotZero(t, other.Cmp(sameMsg), "distinct messages collided")
}

func TestDigestMessageUnreducedWithoutModulus(t *testing.T) {
	msg := []byte("raw digest")
	sum := sha3.Sum256(msg)
	want := new(big.Int).SetBytes(sum[:])

	assert.Zero(t, elgamal.DigestMessage(msg, nil).Cmp(want))
	assert.Zero(t, elgamal.DigestMessage(msg, big.NewInt(1)).Cmp(want))
}
