// Package sparsekit is a small, allocation-disciplined toolkit for
// coordinate-triplet ("COO") sparse matrices.
//
// 🚀 What is sparsekit?
//
//	A pure-Go library for callers holding large, mostly-zero matrices:
//		• Triplet store: (row, col, value) entries over a caller-owned,
//		  fixed-capacity buffer — the engine never grows or frees storage
//		• Conversion: dense→sparse generation, sparse→dense expansion
//		• Structural ops: deep copy, in-place transpose, swap-and-pop
//		  deletion, near-zero pruning
//		• Arithmetic: addition and multiplication with duplicate-merging
//		  accumulation and automatic pruning of cancelled entries
//		• Diagnostics: plain-text rendering of a store's contents
//
// ✨ Why choose sparsekit?
//
//   - Explicit contracts — every operation validates its inputs and
//     reports sentinel errors matched via errors.Is
//   - Caller-owned memory — capacity is declared up front and checked
//     before every write; no hidden reallocation in hot paths
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	coo/       — the triplet store and all conversion/structural/arithmetic kernels
//	dense/     — a minimal row-major dense matrix used as the conversion counterpart
//	sparsefmt/ — read-only diagnostic text rendering of a triplet store
//
// Quick sketch:
//
//	    ⎡1 0⎤        Generate        {(0,0)=1, (1,1)=2}, nnz=2
//	    ⎣0 2⎦      ──────────▶       stored as three numbers per entry
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
package sparsekit
