// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Exposed API:
//   - CenterScaleColumns(X, offsets, scales) -> (X - offsets) / scales, per column
//   - AllClose(a, b, rtol, atol)             -> element-wise tolerance comparison
//
// Determinism & Performance:
//   - Fixed loop orders (i→j).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - Kernels write raw results; numeric policy is enforced once by the public wrapper.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opCenterScaleColumns = "CenterScaleColumns"
	opAllClose           = "AllClose"
	opSubCols            = "broadcastSubCols"
	opDivCols            = "divCols"
)

// matrixErrorf prefixes err with an operation tag, keeping the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colOffsets[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastSubCols(X Matrix, colOffsets []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opSubCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(colOffsets) != c {
		return nil, matrixErrorf(opSubCols, ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opSubCols, err)
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - colOffsets[j]
			}
		}
		return out, nil
	}

	// Generic fallback via At (still deterministic).
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opSubCols, e)
			}
			out.data[base+j] = v - colOffsets[j]
		}
	}
	return out, nil
}

// ewDivCols computes out[i,j] = X[i,j] / divisors[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// A zero divisor is rejected up-front (ErrDivideByZero) rather than producing ±Inf.
func ewDivCols(X Matrix, divisors []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opDivCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(divisors) != c {
		return nil, matrixErrorf(opDivCols, ErrDimensionMismatch)
	}
	if err := ValidateNonZero(divisors); err != nil {
		return nil, matrixErrorf(opDivCols, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opDivCols, err)
	}

	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] / divisors[j]
			}
		}
		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opDivCols, e)
			}
			out.data[base+j] = v / divisors[j]
		}
	}
	return out, nil
}

// CenterScaleColumns returns (X[i,j] - offsets[j]) / scales[j] as a new Dense.
// MAIN DESCRIPTION:
//   - Column standardization with caller-supplied offsets (fiducials) and scales.
//
// Implementation:
//   - Stage 1: subtract offsets (ewBroadcastSubCols).
//   - Stage 2: divide by scales (ewDivCols).
//   - Stage 3: enforce the numeric policy resolved from opts on the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(offsets|scales) != Cols()),
//     ErrDivideByZero (zero scale), ErrNaNInf (non-finite result under policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (one intermediate buffer).
func CenterScaleColumns(X Matrix, offsets, scales []float64, opts ...Option) (*Dense, error) {
	centered, err := ewBroadcastSubCols(X, offsets)
	if err != nil {
		return nil, matrixErrorf(opCenterScaleColumns, err)
	}
	out, err := ewDivCols(centered, scales)
	if err != nil {
		return nil, matrixErrorf(opCenterScaleColumns, err)
	}

	o := gatherOptions(opts...)
	out.validateNaNInf = o.validateNaNInf
	if o.validateNaNInf {
		if err = ValidateFinite(out.data); err != nil {
			return nil, matrixErrorf(opCenterScaleColumns, err)
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// ewAllClose implements AllClose.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < r*c; idx++ {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
