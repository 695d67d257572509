// SPDX-License-Identifier: MIT
// Package coo: narrow private-surface exports for white-box tests.
// Kept in a _test.go file so nothing here ships in the built package.

package coo

// SeedEntriesForTest force-writes raw entries into m, bypassing the kernels.
// Tests use it to stage states unreachable through the public surface, such
// as duplicate positions (which only Expand tolerates). The entries must fit
// the declared capacity; exceeding it is a test bug.
func SeedEntriesForTest(m *Matrix, es ...Entry) {
	m.entries = append(m.entries[:0], es...)
}

// MergeEntryForTest exposes the private linear-search-or-append primitive
// shared by Add and Multiply.
var MergeEntryForTest = mergeEntry
