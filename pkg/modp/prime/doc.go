// Package prime provides probabilistic primality testing and random prime
// generation over a caller-injected randomness source.
//
// # Operations
//
//   - IsProbablePrime(): Miller–Rabin test with uniformly drawn witnesses
//   - Generate(): random prime of an exact bit length
//   - GenerateSafe(): safe-prime pair p = 2q+1 with both p and q prime
//
// # Randomness
//
// Every function takes an io.Reader supplying cryptographically secure random
// bytes (crypto/rand.Reader in production). Witness selection uses rejection
// sampling, so no modular bias is introduced. A non-cryptographic source is a
// security defect, not a quality trade-off: composites that survive
// Miller–Rabin under predictable witnesses can be constructed deliberately.
//
// # Bounded searches
//
// Generation loops never run unbounded. Both Generate and GenerateSafe take a
// maxAttempts ceiling (zero selects a generous default scaled by the bit
// length) and fail with ErrAttemptsExhausted once it is spent, keeping
// worst-case behavior testable and letting callers build their own timeout or
// retry policy on top.
//
// # Usage
//
//	p, err := prime.Generate(rand.Reader, 1024, prime.DefaultRounds, 0)
//	if err != nil {
//	    return err
//	}
//
//	// Safe prime for discrete-log groups: p = 2q+1, both prime.
//	p, q, err := prime.GenerateSafe(rand.Reader, 2048, prime.DefaultRounds, 0)
package prime
