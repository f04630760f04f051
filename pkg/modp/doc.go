// Package modp implements the arbitrary-precision modular-arithmetic kernel
// underlying the rest of the module: binary square-and-multiply exponentiation,
// an iterative extended Euclidean algorithm, modular inverses, Euler's totient,
// and the Legendre and Jacobi symbols.
//
// Every operation is a pure, synchronous computation over *math/big.Int values.
// The package holds no mutable state, performs no I/O, and never retains
// references to caller-supplied integers beyond the duration of a call, so
// concurrent use needs no locking. Operations that consume randomness live in
// the subpackages (prime, dlog, elgamal) and take an explicit io.Reader; this
// package itself is fully deterministic.
//
// The implementations here favor clarity over side-channel resistance: running
// time depends on operand values, so none of these routines are constant-time.
package modp
