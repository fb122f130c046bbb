// SPDX-License-Identifier: MIT

// Package vectorizer evaluates polynomial label vectors: it turns rows of
// physical label values into design-matrix rows for a linear spectral model.
//
// A Polynomial is built once from
//   - the ordered label names (e.g. Teff, logg, feh),
//   - per-label fiducials and scales used to center and scale raw values,
//   - a term description accepted by labelvec.Parse.
//
// Evaluation maps an N×K batch of label values to an N×(1+D) matrix.Dense:
//
//	scaled[i,k] = (labels[i,k] - fiducials[k]) / scales[k]
//	out[i,0]    = 1
//	out[i,1+d]  = Π scaled[i,idx]^power over the factors of term d
//
// Evaluation guard:
//
//	New Polynomials refuse to complete an evaluation (ErrEvaluationGuarded)
//	until the guard is switched off with WithEvaluationGuard(false) or the
//	evaluation_guard key of a Config. The guard trips inside the per-term
//	loop, after input shape checks and scaling have succeeded.
//
// Missing and non-finite labels:
//
//	Inputs and outputs are checked for NaN and ±Inf by default, so a row
//	that marks a missing label with NaN fails with matrix.ErrNaNInf. Build
//	the Polynomial with WithAllowNonFinite() to accept such rows; NaN then
//	propagates into every term that uses the missing label while the other
//	columns are still evaluated.
//
// Derivatives with respect to a label are not available; the method exists
// and always returns ErrNotImplemented so callers can detect the gap.
//
// A Polynomial is immutable after construction and safe for concurrent use.
package vectorizer
