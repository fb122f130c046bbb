// SPDX-License-Identifier: MIT

package vectorizer

import (
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/polyvec/labelvec"
	"github.com/katalvlaran/polyvec/matrix"
	"gonum.org/v1/gonum/mat"
)

// Polynomial evaluates a fixed polynomial label vector over label rows.
// All fields are written once by New.
type Polynomial struct {
	labels    []string
	fiducials []float64
	scales    []float64
	terms     labelvec.Vector // resolved: every label is Indexed

	grammar        []labelvec.Option
	guard          bool
	allowNonFinite bool
	logger         *slog.Logger
}

// New builds a Polynomial over the ordered label names.
// MAIN DESCRIPTION:
//   - terms is anything labelvec.Parse accepts: a description string, a
//     []string of per-term strings or a structured vector.
//
// Implementation:
//   - Stage 1: labels must be non-empty and unique.
//   - Stage 2: one finite fiducial and one finite non-zero scale per label.
//   - Stage 3: parse terms against labels, then resolve every factor to a
//     column index so evaluation never looks names up.
//
// Errors:
//   - ErrNoLabels, ErrDuplicateLabel, ErrDimensionMismatch, ErrInvalidScale.
//   - labelvec.ErrUnknownLabel, labelvec.ErrInvalidDescription (and its
//     specific forms), labelvec.ErrUnsupportedDescription from parsing.
//
// Complexity: O(K + len(terms)).
func New(labels []string, fiducials, scales []float64, terms any, opts ...Option) (*Polynomial, error) {
	o := gatherOptions(opts...)

	// Stage 1: labels.
	if len(labels) == 0 {
		return nil, vectorizerErrorf(opNew, ErrNoLabels, "0 labels")
	}
	seen := make(map[string]struct{}, len(labels))
	for i, l := range labels {
		if strings.TrimSpace(l) == "" {
			return nil, vectorizerErrorf(opNew, ErrNoLabels, "label %d is blank", i)
		}
		if _, dup := seen[l]; dup {
			return nil, vectorizerErrorf(opNew, ErrDuplicateLabel, "%q", l)
		}
		seen[l] = struct{}{}
	}

	// Stage 2: fiducials and scales.
	if err := matrix.ValidateVecLen(fiducials, len(labels)); err != nil {
		return nil, vectorizerErrorf(opNew, ErrDimensionMismatch, "%d fiducials for %d labels: %v", len(fiducials), len(labels), err)
	}
	if err := matrix.ValidateVecLen(scales, len(labels)); err != nil {
		return nil, vectorizerErrorf(opNew, ErrDimensionMismatch, "%d scales for %d labels: %v", len(scales), len(labels), err)
	}
	for k := range labels {
		if math.IsNaN(fiducials[k]) || math.IsInf(fiducials[k], 0) {
			return nil, vectorizerErrorf(opNew, ErrInvalidScale, "fiducial of %q is %v", labels[k], fiducials[k])
		}
		if math.IsNaN(scales[k]) || math.IsInf(scales[k], 0) || scales[k] == 0 {
			return nil, vectorizerErrorf(opNew, ErrInvalidScale, "scale of %q is %v", labels[k], scales[k])
		}
	}

	// Stage 3: terms.
	parsed, err := labelvec.Parse(terms, labels, o.grammar...)
	if err != nil {
		return nil, vectorizerErrorf(opNew, err, "terms")
	}
	resolved, err := parsed.Resolve(labels)
	if err != nil {
		return nil, vectorizerErrorf(opNew, err, "terms")
	}

	p := &Polynomial{
		labels:         append([]string(nil), labels...),
		fiducials:      append([]float64(nil), fiducials...),
		scales:         append([]float64(nil), scales...),
		terms:          resolved,
		grammar:        o.grammar,
		guard:          o.guard,
		allowNonFinite: o.allowNonFinite,
		logger:         o.logger,
	}
	p.logger.Debug("polynomial vectorizer created",
		slog.Int("labels", len(p.labels)),
		slog.Int("terms", len(p.terms)),
		slog.Bool("evaluation_guard", p.guard))

	return p, nil
}

// Labels returns a copy of the ordered label names.
func (p *Polynomial) Labels() []string { return append([]string(nil), p.labels...) }

// Fiducials returns a copy of the per-label offsets.
func (p *Polynomial) Fiducials() []float64 { return append([]float64(nil), p.fiducials...) }

// Scales returns a copy of the per-label divisors.
func (p *Polynomial) Scales() []float64 { return append([]float64(nil), p.scales...) }

// Terms returns a copy of the resolved label vector (indexed labels).
func (p *Polynomial) Terms() labelvec.Vector { return p.terms.Clone() }

// NumTerms returns D, the number of terms; evaluation yields 1+D columns.
func (p *Polynomial) NumTerms() int { return len(p.terms) }

// EvaluationGuard reports whether evaluations are currently refused.
func (p *Polynomial) EvaluationGuard() bool { return p.guard }

// Description renders the terms with label names, using the operators the
// Polynomial was built with.
//
// Example: "Teff + logg + Teff^2 + Teff*logg".
func (p *Polynomial) Description() string {
	return p.named(p.terms).String(p.grammar...)
}

// named maps the indexed labels of v back to their names.
func (p *Polynomial) named(v labelvec.Vector) labelvec.Vector {
	out := make(labelvec.Vector, len(v))
	for d, t := range v {
		out[d] = make(labelvec.Term, len(t))
		for i, f := range t {
			out[d][i] = labelvec.Factor{Label: labelvec.Named(p.labels[f.Label.Index()]), Power: f.Power}
		}
	}

	return out
}

// LabelVector evaluates the polynomial for one row or a batch of rows.
// MAIN DESCRIPTION:
//   - labels is a []float64 (one row), a [][]float64, a matrix.Matrix or a
//     gonum mat.Matrix with one column per label.
//
// Implementation:
//   - Stage 1: normalize the input into an N×K matrix (see batch).
//   - Stage 2: scaled = (labels - fiducials) / scales via
//     matrix.CenterScaleColumns.
//   - Stage 3: column 1+d is the product over term d of scaled[:, idx]^power;
//     column 0 is 1. The columns are written with Dense.Apply so the numeric
//     policy is checked once per element.
//
// Errors:
//   - ErrBadShape for nil, empty, deeper-nested or unknown inputs.
//   - ErrDimensionMismatch when a row does not have K values.
//   - matrix.ErrNaNInf for non-finite input or output, unless
//     WithAllowNonFinite was given.
//   - ErrEvaluationGuarded while the evaluation guard is enabled.
//
// Complexity: O(N * (K + total factors)).
func (p *Polynomial) LabelVector(labels any) (*matrix.Dense, error) {
	policy := matrix.WithValidateNaNInf()
	if p.allowNonFinite {
		policy = matrix.WithNoValidateNaNInf()
	}

	// Stage 1: shape.
	X, err := p.batch(labels, policy)
	if err != nil {
		return nil, err
	}

	// Stage 2: center and scale.
	scaled, err := matrix.CenterScaleColumns(X, p.fiducials, p.scales, policy)
	if err != nil {
		return nil, vectorizerErrorf(opLabelVector, err, "scaling")
	}

	// Stage 3: term columns, then a single policy-checked fill.
	n := scaled.Rows()
	columns := make([][]float64, len(p.terms))
	for d, term := range p.terms {
		if p.guard {
			return nil, vectorizerErrorf(opLabelVector, ErrEvaluationGuarded, "term %d", d)
		}
		column := make([]float64, n)
		for i := range column {
			column[i] = 1
		}
		for _, f := range term {
			values, cerr := scaled.Col(f.Label.Index())
			if cerr != nil {
				return nil, vectorizerErrorf(opLabelVector, cerr, "term %d", d)
			}
			for i, v := range values {
				column[i] *= math.Pow(v, f.Power)
			}
		}
		columns[d] = column
	}

	out, err := matrix.NewDense(n, 1+len(p.terms), policy)
	if err != nil {
		return nil, vectorizerErrorf(opLabelVector, err, "allocate %dx%d", n, 1+len(p.terms))
	}
	err = out.Apply(func(i, j int, _ float64) float64 {
		if j == 0 {
			return 1
		}

		return columns[j-1][i]
	})
	if err != nil {
		return nil, vectorizerErrorf(opLabelVector, err, "design matrix")
	}

	p.logger.Debug("label vector evaluated",
		slog.Int("rows", n),
		slog.Int("cols", out.Cols()))

	return out, nil
}

// LabelVectorRow evaluates a single row and returns its 1+D values.
// Errors are those of LabelVector.
func (p *Polynomial) LabelVectorRow(row []float64) ([]float64, error) {
	if row == nil {
		return nil, vectorizerErrorf(opRow, ErrBadShape, "nil row")
	}
	out, err := p.LabelVector(row)
	if err != nil {
		return nil, err
	}

	return out.Row(0)
}

// LabelVectorDerivative would return the partial derivatives of the label
// vector with respect to dLabel. It always fails with ErrNotImplemented.
func (p *Polynomial) LabelVectorDerivative(labels any, dLabel string) (*matrix.Dense, error) {
	return nil, vectorizerErrorf(opDerivative, ErrNotImplemented, "d/d%s", dLabel)
}

// batch converts the supported input kinds into an N×K matrix.
func (p *Polynomial) batch(labels any, policy matrix.Option) (matrix.Matrix, error) {
	k := len(p.labels)
	var (
		X   matrix.Matrix
		err error
	)
	switch in := labels.(type) {
	case nil:
		return nil, vectorizerErrorf(opLabelVector, ErrBadShape, "nil input")
	case []float64:
		if err = matrix.ValidateVecLen(in, k); err != nil {
			return nil, rowLenError(err, "row has %d values, want %d", len(in), k)
		}
		X, err = matrix.FromRows([][]float64{in}, policy)
	case [][]float64:
		if len(in) == 0 {
			return nil, vectorizerErrorf(opLabelVector, ErrBadShape, "empty batch")
		}
		for i, row := range in {
			if err = matrix.ValidateVecLen(row, k); err != nil {
				return nil, rowLenError(err, "row %d has %d values, want %d", i, len(row), k)
			}
		}
		X, err = matrix.FromRows(in, policy)
	case mat.Matrix:
		if err = matrix.ValidateGonumNotNil(in); err != nil {
			return nil, vectorizerErrorf(opLabelVector, ErrBadShape, "nil gonum matrix")
		}
		r, c := in.Dims()
		if r == 0 {
			return nil, vectorizerErrorf(opLabelVector, ErrBadShape, "empty batch")
		}
		if c != k {
			return nil, vectorizerErrorf(opLabelVector, ErrDimensionMismatch, "%d columns, want %d", c, k)
		}
		X, err = matrix.FromGonum(in, policy)
	case matrix.Matrix:
		if err = matrix.ValidateNotNil(in); err != nil {
			return nil, vectorizerErrorf(opLabelVector, ErrBadShape, "nil matrix")
		}
		if in.Cols() != k {
			return nil, vectorizerErrorf(opLabelVector, ErrDimensionMismatch, "%d columns, want %d", in.Cols(), k)
		}
		X = in
	default:
		return nil, vectorizerErrorf(opLabelVector, ErrBadShape, "unsupported input %T", labels)
	}
	if err != nil {
		return nil, vectorizerErrorf(opLabelVector, err, "input")
	}

	return X, nil
}

// rowLenError classifies a ValidateVecLen failure: a nil row is a shape
// error, a row of the wrong length a dimension mismatch.
func rowLenError(err error, format string, args ...interface{}) error {
	if errors.Is(err, matrix.ErrNilMatrix) {
		return vectorizerErrorf(opLabelVector, ErrBadShape, format, args...)
	}

	return vectorizerErrorf(opLabelVector, ErrDimensionMismatch, format, args...)
}
