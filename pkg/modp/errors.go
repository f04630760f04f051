package modp

import (
	"errors"
)

// ErrNoInverse indicates that a modular inverse was requested for operands
// that are not coprime. The failure is surfaced synchronously and never
// retried internally; whether different operands exist is the caller's call.
var ErrNoInverse = errors.New("no modular inverse exists for non-coprime operands")

// ErrInvalidModulus indicates a modulus outside an operation's domain: a
// non-positive modulus for a modular inverse or totient, or a non-positive or
// even modulus for a Jacobi symbol.
var ErrInvalidModulus = errors.New("modulus is outside the operation's domain")
