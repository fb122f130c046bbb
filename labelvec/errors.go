// SPDX-License-Identifier: MIT
// Package: labelvec
//
// errors.go: sentinel errors for the labelvec package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Every validation failure additionally matches ErrInvalidDescription,
//     so callers that only care about "bad description" need one check.
//   • Context is attached with %w at the detection site (see labelvecErrorf).

package labelvec

import (
	"errors"
	"fmt"
)

// ErrInvalidDescription is the umbrella class of every validation failure
// raised while parsing a description.
var ErrInvalidDescription = errors.New("labelvec: invalid description")

// ErrNonFinitePower indicates that a retained power is NaN or ±Inf.
var ErrNonFinitePower = fmt.Errorf("%w: non-finite power", ErrInvalidDescription)

// ErrEmptyVector indicates that no factor survived parsing (or that Build
// accepted no term at all).
var ErrEmptyVector = fmt.Errorf("%w: no valid terms", ErrInvalidDescription)

// ErrInvalidPower indicates that the text after a power operator is not a number.
var ErrInvalidPower = fmt.Errorf("%w: power is not a number", ErrInvalidDescription)

// ErrEmptyLabel indicates a factor without a label token (e.g. "Teff + ").
var ErrEmptyLabel = fmt.Errorf("%w: empty label", ErrInvalidDescription)

// ErrUnknownLabel indicates that a label token is not present in the column
// list supplied to Parse, or that an indexed label is out of range.
var ErrUnknownLabel = errors.New("labelvec: unknown label")

// ErrUnsupportedDescription indicates a description value of a type Parse
// cannot read (neither text nor a structured vector).
var ErrUnsupportedDescription = errors.New("labelvec: unsupported description type")

// ErrNoLabels indicates that Build received no usable label names.
var ErrNoLabels = errors.New("labelvec: no labels")

// ErrInvalidOrder indicates a negative polynomial order passed to Build.
var ErrInvalidOrder = errors.New("labelvec: order must be >= 0")

// Method tokens used as error prefixes.
const (
	methodParse   = "Parse"
	methodBuild   = "Build"
	methodResolve = "Resolve"
)

// labelvecErrorf prefixes err with the method name and a formatted detail,
// keeping err reachable through errors.Is.
func labelvecErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
