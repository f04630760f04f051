// Package internalcheck provides internal validation and testing utilities.
//
// This package contains source-level policy tests used internally by the
// modp-go library. It is not intended for external use and the API may change
// without notice.
//
// # Policies
//
// The tests load every library package and reject source constructs that
// would undermine the library's security contracts:
//
//   - no imports of math/rand or math/rand/v2 anywhere in the library;
//     randomness flows only through caller-injected readers, and a
//     non-cryptographic source in a primality witness or key draw is a
//     security defect rather than a style issue
//   - no %x or %X format verbs in non-test library sources, which keeps
//     secret integers out of formatted output
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the modp-go library. Use the public API
// provided by pkg/modp and its subpackages instead.
package internalcheck
