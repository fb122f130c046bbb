// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and other row layouts:
// plain [][]float64 rows and gonum matrices.
package matrix

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

const (
	opFromRows  = "FromRows"
	opFromGonum = "FromGonum"
)

// FromRows copies a rectangular row slice into a new Dense.
//
// Errors:
//   - ErrBadShape when rows is empty, a row is empty or rows are ragged.
//   - ErrNaNInf for non-finite values under the (default) finite-only policy.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	c := len(rows[0])
	out, err := NewDense(len(rows), c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opFromRows, i, len(row), c, ErrBadShape)
		}
		for j, v := range row {
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return out, nil
}

// ValidateGonumNotNil ensures m is neither a nil interface nor a typed nil
// pointer such as (*mat.Dense)(nil), whose Dims would panic.
// Returns ErrNilMatrix. Complexity: O(1).
func ValidateGonumNotNil(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateGonumNotNil", ErrNilMatrix)
	}
	if rv := reflect.ValueOf(m); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return validatorErrorf("ValidateGonumNotNil", ErrNilMatrix)
	}

	return nil
}

// FromGonum copies any gonum matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix for a nil m, including a typed nil pointer.
//   - ErrBadShape for a zero-sized m.
//   - ErrNaNInf for non-finite values under the finite-only policy.
//
// Complexity: O(r*c).
func FromGonum(m mat.Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateGonumNotNil(m); err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opFromGonum, ErrBadShape)
	}
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i, j, m.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return out, nil
}

// ToGonum returns an independent gonum copy of m, ready for gonum's
// factorizations and solvers (e.g. least squares on a design matrix).
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}

// ToRows returns m as freshly allocated rows.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}
