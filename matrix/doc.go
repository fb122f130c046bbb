// Package matrix offers the dense numeric container used for design matrices.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-safe At/Set and an
//     optional finite-only numeric policy (NaN/±Inf rejected on write).
//   - Broadcast kernels that centre and scale columns, i.e.
//     (X - offsets) / scales, the standardization applied to label batches
//     before a polynomial basis is evaluated.
//   - Converters from plain [][]float64 rows and from gonum matrices, and back
//     to gonum for downstream linear algebra.
//
// Every public operation returns a sentinel error (see errors.go) instead of
// panicking on user input. Loop orders are fixed (row-major i→j), so results
// are bitwise reproducible.
package matrix
