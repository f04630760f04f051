// Package sample draws uniformly distributed big integers from a
// caller-injected randomness source. Centralizing the draws here keeps the
// rest of the module free of ad-hoc byte twiddling and guarantees that every
// random value in the library is produced by rejection sampling (no modular
// bias) from the one injected io.Reader.
package sample

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Uniform returns an integer drawn uniformly from the half-open range
// [min, max). The draw uses rejection sampling, so the result carries no
// modular bias. Errors from the random source are wrapped and propagated.
func Uniform(random io.Reader, min, max *big.Int) (*big.Int, error) {
	if min.Cmp(max) >= 0 {
		return nil, errors.New("sampling range is empty")
	}
	span := new(big.Int).Sub(max, min)
	n, err := rand.Int(random, span)
	if err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return n.Add(n, min), nil
}

// Odd returns a uniformly random odd integer of exactly the requested bit
// length: the top bit is forced set so the length is exact, and the bottom bit
// is forced set for oddness. Prime generation draws its candidates here.
func Odd(random io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.New("bit length must be at least 2")
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	// Clear the excess high bits, then pin the top bit of the requested width.
	excess := uint(len(buf)*8 - bits)
	buf[0] &= 0xFF >> excess
	buf[0] |= 0x80 >> excess

	n := new(big.Int).SetBytes(buf)
	n.SetBit(n, 0, 1)
	return n, nil
}
