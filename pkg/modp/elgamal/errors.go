package elgamal

import (
	"errors"
)

var (
	// ErrMessageTooLarge indicates a plaintext integer at or above the group
	// modulus. The caller must re-encode the message (for example by
	// chunking it) before retrying; no transformation is applied internally.
	ErrMessageTooLarge = errors.New("message must be smaller than the group modulus")

	// ErrInvalidGroup indicates group parameters that failed validation. The
	// wrapped message names the violated invariant.
	ErrInvalidGroup = errors.New("invalid group parameters")

	// ErrInvalidKey indicates a malformed or inconsistent key.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNoGenerator indicates that the trial search over small generator
	// candidates was exhausted. This is effectively unreachable for a
	// genuine safe-prime group and usually means the group is corrupt.
	ErrNoGenerator = errors.New("no generator found among the candidate range")

	// ErrAttemptsExhausted indicates that the signing retry loop spent its
	// attempt budget without drawing a usable ephemeral exponent, which is
	// practically impossible with a healthy random source.
	ErrAttemptsExhausted = errors.New("signing exhausted its attempt budget")
)
