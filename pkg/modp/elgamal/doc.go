// Package elgamal implements the ElGamal public-key cryptosystem over
// safe-prime groups: key generation, randomized encryption and decryption,
// and the ElGamal-family signature scheme.
//
// # Groups
//
// A Group is a safe-prime modulus P = 2Q+1 with both P and Q prime and a
// generator G. GenerateGroup searches for a fresh group (expensive at
// production bit lengths); Group2048 returns the published RFC 3526 2048-bit
// MODP parameters for callers that do not need a private group. Validate
// checks imported parameters before they are trusted.
//
// # Keys
//
// GenerateKey draws a private exponent X uniformly from [1, P-2] and derives
// Y = G^X mod P. A PrivateKey embeds its PublicKey, which embeds the Group,
// so a single value carries everything its operations need. Keys are plain
// values owned by the caller; Zeroize clears the private exponent when the
// caller is done with it.
//
// # Encryption
//
// Encrypt draws a fresh ephemeral exponent for every call and produces the
// pair (C1, C2) = (G^k, m·Y^k) mod P. Messages are integers in [0, P);
// encoding a byte string into that range (and chunking anything larger) is
// the caller's concern. Ciphertexts are multiplicatively homomorphic: the
// component-wise product of two ciphertexts decrypts to the product of the
// plaintexts.
//
// # Signatures
//
// Sign and Verify implement the classic ElGamal signature equations over a
// digest reduced modulo P-1, with DigestMessage providing the SHA3-256
// hash-to-integer reduction. The scheme signs digests, never raw messages.
//
// # Randomness
//
// Every randomized operation takes an io.Reader supplying cryptographically
// secure bytes (crypto/rand.Reader in production). Reusing an ephemeral
// exponent across two encryptions or two signatures reveals plaintext or
// private-key material, so the reader must never replay; deterministic
// readers belong in tests only.
package elgamal
