// SPDX-License-Identifier: MIT

// Package coo: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - the documented default epsilon (single source of truth),
//   - WithEpsilon constructor with strong validation (panic on nonsensical
//     values — programmer error, never a runtime condition),
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: the single flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public kernels consume ...Option.
package coo

import "math"

// DefaultEpsilon is the near-zero threshold: a value is treated as present
// once |v| ≥ DefaultEpsilon, and prunable below it. The historical source
// named this constant after "infinity"; it functions as an epsilon and is
// named accordingly here.
const DefaultEpsilon = 1e-3

// panicEpsilonInvalid is the stable message raised by WithEpsilon on
// nonsensical input (no magic strings inline).
const panicEpsilonInvalid = "coo: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
// It is intentionally opaque to prevent external mutation; public kernels
// accept ...Option and internally resolve them via gatherOptions.
type Options struct {
	eps float64 // ≥ 0; DefaultEpsilon
}

// WithEpsilon sets the near-zero threshold used by Generate, PruneNearZero
// and the post-merge pruning of Add/Multiply.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The comparison is inclusive: |v| ≥ eps keeps the entry. eps = 0 keeps
//     every entry, including exact zeros.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon.
	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given setter sequence.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
