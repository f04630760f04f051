package dlog_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptonum/modp-go/pkg/modp"
	"github.com/cryptonum/modp-go/pkg/modp/dlog"
	"github.com/cryptonum/modp-go/pkg/modp/testrand"
)

// errReader errors on the first read.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestPollardRhoSmallGroup(t *testing.T) {
	// 4 generates the order-11 subgroup of squares modulo 23, and 4^7 = 8.
	random := testrand.New("rho small")
	x, err := dlog.PollardRho(random, big.NewInt(4), big.NewInt(8), big.NewInt(23), big.NewInt(11), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), x.Int64())
}

func TestPollardRhoIdentityTarget(t *testing.T) {
	random := testrand.New("rho identity")
	x, err := dlog.PollardRho(random, big.NewInt(4), big.NewInt(1), big.NewInt(23), big.NewInt(11), 0)
	require.NoError(t, err)
	assert.Zero(t, x.Sign())
}

func TestPollardRhoRecoversPlantedExponent(t *testing.T) {
	// 2027 = 2·1013 + 1 is a safe prime; 4 generates the subgroup of
	// order 1013. Any verified answer must equal the planted exponent
	// because the subgroup order is prime and the exponent is reduced.
	p := big.NewInt(2027)
	order := big.NewInt(1013)
	g := big.NewInt(4)
	secret := big.NewInt(777)
	h := modp.ModPow(g, secret, p)

	random := testrand.New("rho planted")
	x, err := dlog.PollardRho(random, g, h, p, order, 0)
	require.NoError(t, err)
	assert.Zero(t, x.Cmp(secret))
	assert.Zero(t, modp.ModPow(g, x, p).Cmp(h))
}

func TestPollardRhoDeterministicUnderSeed(t *testing.T) {
	p := big.NewInt(2027)
	order := big.NewInt(1013)
	g := big.NewInt(4)
	h := modp.ModPow(g, big.NewInt(321), p)

	first, err := dlog.PollardRho(testrand.New("rho seed"), g, h, p, order, 0)
	require.NoError(t, err)
	second, err := dlog.PollardRho(testrand.New("rho seed"), g, h, p, order, 0)
	require.NoError(t, err)
	assert.Zero(t, first.Cmp(second))
}

func TestPollardRhoNotFound(t *testing.T) {
	// 5 lies outside the subgroup generated by 4 modulo 23, so no exponent
	// verifies and the iteration budget must run out.
	random := testrand.New("rho not found")
	_, err := dlog.PollardRho(random, big.NewInt(4), big.NewInt(5), big.NewInt(23), big.NewInt(11), 2000)
	assert.ErrorIs(t, err, dlog.ErrNotFound)
}

func TestPollardRhoTinyBudget(t *testing.T) {
	random := testrand.New("rho tiny budget")
	_, err := dlog.PollardRho(random, big.NewInt(4), big.NewInt(5), big.NewInt(23), big.NewInt(11), 1)
	assert.ErrorIs(t, err, dlog.ErrNotFound)
}

func TestPollardRhoInvalidInputs(t *testing.T) {
	random := testrand.New("rho invalid")
	_, err := dlog.PollardRho(random, big.NewInt(4), big.NewInt(8), big.NewInt(0), big.NewInt(11), 0)
	assert.ErrorIs(t, err, modp.ErrInvalidModulus)

	_, err = dlog.PollardRho(random, big.NewInt(4), big.NewInt(8), big.NewInt(23), big.NewInt(-1), 0)
	assert.ErrorIs(t, err, modp.ErrInvalidModulus)
}

func TestPollardRhoPropagatesReaderError(t *testing.T) {
	brokenErr := assert.AnError
	_, err := dlog.PollardRho(errReader{err: brokenErr}, big.NewInt(4), big.NewInt(8), big.NewInt(23), big.NewInt(11), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, brokenErr)
}
