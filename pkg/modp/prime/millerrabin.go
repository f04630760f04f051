package prime

import (
	"io"
	"math/big"

	"github.com/cryptonum/modp-go/pkg/modp"
	"github.com/cryptonum/modp-go/pkg/modp/internal/sample"
)

// DefaultRounds is the Miller–Rabin round count used when a caller passes a
// non-positive value. Forty rounds bound the false-positive probability by
// 4^-40 for adversarially chosen inputs; for randomly generated candidates the
// effective error is far smaller.
const DefaultRounds = 40

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// IsProbablePrime reports whether n is prime with a Miller–Rabin test of the
// given number of rounds (DefaultRounds if rounds <= 0). It decomposes
// n-1 = 2^r·d with d odd and, for each uniformly drawn witness a in [2, n-2],
// accepts the witness when a^d ≡ ±1 (mod n) or some squaring a^(d·2^i) ≡ n-1
// for 0 <= i < r-1; any witness failing all checks proves n composite.
//
// A false return is always correct (there are no false negatives). A true
// return is wrong with probability at most 4^-rounds. The only error condition
// is a failing random source.
func IsProbablePrime(random io.Reader, n *big.Int, rounds int) (bool, error) {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	if n.Cmp(two) < 0 {
		return false, nil
	}
	// 2 and 3 are prime; other even values are not.
	if n.Cmp(big.NewInt(4)) < 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	x := new(big.Int)
	for i := 0; i < rounds; i++ {
		witness, err := sample.Uniform(random, two, nMinusOne)
		if err != nil {
			return false, err
		}
		x = modp.ModPow(witness, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}
		composite := true
		for j := 0; j < r-1; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinusOne) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false, nil
		}
	}
	return true, nil
}
