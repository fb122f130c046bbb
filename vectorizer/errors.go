// SPDX-License-Identifier: MIT
// Package: vectorizer
//
// errors.go: sentinel errors of the vectorizer.
//
// Error policy:
//   • Callers match with errors.Is; messages carry the operation name.
//   • Shape and dimension errors also match the matrix sentinels.

package vectorizer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polyvec/matrix"
)

// ErrNoLabels indicates that a Polynomial was requested without labels.
var ErrNoLabels = errors.New("vectorizer: no labels")

// ErrDuplicateLabel indicates that a label name appears more than once.
var ErrDuplicateLabel = errors.New("vectorizer: duplicate label")

// ErrDimensionMismatch indicates that fiducials, scales or an input row do
// not have one value per label.
var ErrDimensionMismatch = fmt.Errorf("vectorizer: %w", matrix.ErrDimensionMismatch)

// ErrInvalidScale indicates a non-finite fiducial or a non-finite or zero scale.
var ErrInvalidScale = errors.New("vectorizer: invalid fiducial or scale")

// ErrBadShape indicates label input that is not a row or a batch of rows.
var ErrBadShape = fmt.Errorf("vectorizer: %w", matrix.ErrBadShape)

// ErrEvaluationGuarded is returned by every evaluation while the evaluation
// guard is enabled.
var ErrEvaluationGuarded = errors.New("vectorizer: evaluation guarded")

// ErrNotImplemented indicates an operation that has no implementation.
var ErrNotImplemented = errors.New("vectorizer: not implemented")

// ErrInvalidConfig indicates a YAML configuration that cannot describe a Polynomial.
var ErrInvalidConfig = errors.New("vectorizer: invalid config")

const (
	opNew         = "New"
	opLabelVector = "LabelVector"
	opRow         = "LabelVectorRow"
	opDerivative  = "LabelVectorDerivative"
	opLoadConfig  = "LoadConfig"
	opValidate    = "Config.Validate"
	opConfigNew   = "Config.New"
)

// vectorizerErrorf prefixes err with the operation and a formatted detail.
func vectorizerErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
