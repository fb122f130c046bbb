// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose UNEXPORTED ew* micro-kernels and the resolved options to matrix_test ONLY.
//   - Enable white-box verification of fast-path (*Dense) vs generic fallback,
//     without widening the production API (this file compiles only under go test).

// EwBroadcastSubCols_TestOnly forwards to the private ewBroadcastSubCols kernel.
func EwBroadcastSubCols_TestOnly(X Matrix, colOffsets []float64) (*Dense, error) {
	return ewBroadcastSubCols(X, colOffsets)
}

// EwDivCols_TestOnly forwards to the private ewDivCols kernel.
func EwDivCols_TestOnly(X Matrix, divisors []float64) (*Dense, error) {
	return ewDivCols(X, divisors)
}

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like public constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}
