// Package contfrac builds simple continued fractions and puts their
// convergents to work.
//
// A simple continued fraction a₀ + 1/(a₁ + 1/(a₂ + ...)) is stored as
// a non-periodic coefficient prefix plus an optional repeating tail,
// which is exactly the shape square-root expansions take: √n for
// non-square n is [a₀; (a₁, ..., aₗ)] with a purely periodic tail.
//
// What you get:
//
//	🚀 New / FromSqrt   - build from explicit coefficients, or expand
//	                      √n with period detection on the surd state.
//	🚀 Convergents      - exact p/q approximations as big.Int rationals
//	                      via the two-term recurrence; each convergent
//	                      is strictly closer to the value than the last.
//	🚀 SolvePell        - minimal solution of x² - d·y² = 1, found by
//	                      scanning convergents of √d in order.
//	🚀 SolvePellNegative - the -1 form; solvable only when the period
//	                      is odd, reported as ErrEvenPeriod otherwise.
//	🚀 DecimalDigits    - the first m decimal digits of the value via
//	                      the |x - p/q| < 1/(q·q') convergent bound.
//
// Convergent numerators and denominators grow exponentially, so they
// live in math/big; the coefficients themselves stay in the caller's
// integer type. Precondition violations (negative radicand, d not a
// valid Pell parameter) panic with a "contfrac: ..." message; the only
// recoverable absence, an even period in SolvePellNegative, is an
// error value.
package contfrac
