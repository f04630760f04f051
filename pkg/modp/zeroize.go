package modp

import (
	"math/big"
	"runtime"
)

// ZeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
//
// This follows the pattern recommended in golang/go#33325. It cannot guarantee
// complete memory sanitization: the garbage collector may already have moved
// or copied the backing array before the overwrite runs.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}

// ZeroizeInt overwrites the word slice backing z and sets z to zero. Private
// exponents and ephemeral values live in big.Int words; a caller that is done
// with a secret should zeroize it rather than merely drop the reference. The
// same golang/go#33325 caveats as ZeroizeBytes apply.
func ZeroizeInt(z *big.Int) {
	if z == nil {
		return
	}
	words := z.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(words)
	z.SetInt64(0)
}
