// Package dlog solves discrete-logarithm instances g^x ≡ h (mod p) with two
// complementary algorithms.
//
// # Algorithms
//
//   - BabyStepGiantStep(): deterministic meet-in-the-middle search, O(√N) time
//     and O(√N) memory for a caller-chosen bound N
//   - PollardRho(): probabilistic cycle-finding walk, O(√order) expected time
//     with O(1) memory
//
// Baby-step/giant-step is the right tool when the exponent is known to be
// small or memory is plentiful; Pollard's rho trades determinism for constant
// memory and is preferred for larger group orders.
//
// # Not-found semantics
//
// Exhausting a search bound is an expected outcome, not a fault: both solvers
// return ErrNotFound, which callers distinguish from genuine failures with
// errors.Is. A caller that widens the bound or retries with a different walk
// is making an ordinary algorithmic decision, not handling an exception.
//
// # Bounds
//
// Both searches are strictly bounded: BabyStepGiantStep by maxSteps and
// PollardRho by maxIters (DefaultRhoIterations when zero). Termination never
// depends on a solution existing. These are library-level building blocks for
// small to moderate instances and for testing group parameters; solving a
// well-chosen production-size group remains computationally infeasible.
package dlog
