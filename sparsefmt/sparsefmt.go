// SPDX-License-Identifier: MIT

// Package sparsefmt renders a triplet store to human-readable text.
//
// It is a read-only collaborator of package coo: it consumes the store's
// accessors and never mutates anything. The format is intentionally stable,
// byte for byte:
//
//	Sparse matrix RxC:
//	(row,col) = value
//
// with one line per entry in current store order and value rendered as a
// fixed-point decimal (six fractional digits). There is no parsing
// counterpart; this is a diagnostic surface, not a serialization format.
package sparsefmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sparsekit/sparsekit/coo"
)

// ErrNilWriter indicates that a nil io.Writer was supplied to Fprint.
var ErrNilWriter = errors.New("sparsefmt: nil writer")

// Format verbs for the stable diagnostic layout (no magic strings inline).
const (
	headerFormat = "Sparse matrix %dx%d:\n"
	entryFormat  = "(%d,%d) = %f\n"
)

// Fprint writes m's diagnostic rendition to w: a header line followed by one
// line per entry in current store order.
// Errors: ErrNilWriter, coo.ErrNilMatrix, or any write error from w.
// Complexity: O(nnz).
func Fprint(w io.Writer, m *coo.Matrix) error {
	if w == nil {
		return fmt.Errorf("sparsefmt.Fprint: %w", ErrNilWriter)
	}
	if err := coo.ValidateNotNil(m); err != nil {
		return fmt.Errorf("sparsefmt.Fprint: %w", err)
	}

	// Header carries the logical dense extent, not the capacity.
	if _, err := fmt.Fprintf(w, headerFormat, m.Rows(), m.Cols()); err != nil {
		return fmt.Errorf("sparsefmt.Fprint: %w", err)
	}
	// One line per live entry, in current store order.
	for _, e := range m.Entries() {
		if _, err := fmt.Fprintf(w, entryFormat, e.Row, e.Col, e.Value); err != nil {
			return fmt.Errorf("sparsefmt.Fprint: %w", err)
		}
	}

	return nil
}

// Print writes m's diagnostic rendition to standard output.
// Thin alias of Fprint kept for parity with the historical print surface.
func Print(m *coo.Matrix) error {
	return Fprint(os.Stdout, m)
}

// Sprint returns m's diagnostic rendition as a string.
// Complexity: O(nnz).
func Sprint(m *coo.Matrix) (string, error) {
	var sb strings.Builder
	if err := Fprint(&sb, m); err != nil {
		return "", err
	}

	return sb.String(), nil
}
