// SPDX-License-Identifier: MIT
// Package: labelvec
//
// parser.go: description text → structured Vector.
//
// Implementation:
//   - Stage 1: fast path: structured input is returned unchanged.
//   - Stage 2: split into terms (separator) and factors (multiplication).
//   - Stage 3: per factor, cut at the power operator into label and power.
//   - Stage 4: per term, sum repeated labels in first-seen order, drop zero
//     powers, reject non-finite ones.
//   - Stage 5: reject a vector with no surviving factor.
//
// Determinism:
//   - Output order follows input order; no map iteration decides ordering.

package labelvec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse converts a description into a structured Vector.
//
// description may be:
//   - string:   the whole description, terms joined by the separator;
//   - []string: one element per term;
//   - a structured vector (see IsStructured), which is returned unchanged.
//
// When columns is non-nil every label token is resolved to its first exact
// position in columns; otherwise labels stay named.
//
// Errors:
//   - ErrUnknownLabel when a token is absent from columns.
//   - ErrInvalidPower, ErrEmptyLabel, ErrNonFinitePower, ErrEmptyVector for
//     malformed descriptions (all match ErrInvalidDescription).
//   - ErrUnsupportedDescription for any other input type.
//
// Complexity: O(len(description)).
func Parse(description any, columns []string, opts ...Option) (Vector, error) {
	// Stage 1: idempotent fast path.
	if v, ok := structured(description); ok {
		return v, nil
	}

	var terms []string
	g := newGrammar(opts...)
	switch d := description.(type) {
	case string:
		terms = strings.Split(d, g.sep)
	case []string:
		terms = d
	default:
		return nil, labelvecErrorf(methodParse, ErrUnsupportedDescription, "%T", description)
	}

	var index map[string]int
	if columns != nil {
		index = columnIndex(columns)
	}

	out := make(Vector, 0, len(terms))
	for ti, raw := range terms {
		// Stage 2: factors of one term.
		factors := strings.Split(strings.TrimSpace(raw), g.mul)
		acc := newTermAccumulator(len(factors))
		for _, f := range factors {
			// Stage 3: label and power of one factor.
			label, power, err := parseFactor(f, g.pow, index)
			if err != nil {
				return nil, labelvecErrorf(methodParse, err, "term %d %q", ti, strings.TrimSpace(raw))
			}
			acc.add(label, power)
		}
		// Stage 4: aggregate.
		term, err := acc.finish()
		if err != nil {
			return nil, labelvecErrorf(methodParse, err, "term %d %q", ti, strings.TrimSpace(raw))
		}
		if len(term) > 0 {
			out = append(out, term)
		}
	}

	// Stage 5: something meaningful must remain.
	if out.Len() == 0 {
		return nil, labelvecErrorf(methodParse, ErrEmptyVector, "%d terms", len(terms))
	}

	return out, nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// fixtures and tests.
func MustParse(description any, columns []string, opts ...Option) Vector {
	v, err := Parse(description, columns, opts...)
	if err != nil {
		panic(err)
	}

	return v
}

// parseFactor splits "label^power" into its parts. A missing power operator
// means power 1. index, when non-nil, resolves the label to a column.
func parseFactor(text, pow string, index map[string]int) (Label, float64, error) {
	token, rest, hasPower := strings.Cut(text, pow)
	token = strings.TrimSpace(token)

	power := 1.0
	if hasPower {
		// Only the text up to a second power operator counts: "a^2^3" is a^2.
		rawPower, _, _ := strings.Cut(rest, pow)
		p, err := strconv.ParseFloat(strings.TrimSpace(rawPower), 64)
		switch {
		case errors.Is(err, strconv.ErrRange):
			// Out-of-range powers keep the rounded value (±Inf or 0); the
			// accumulator rejects infinities and drops zeros.
		case err != nil:
			return Label{}, 0, fmt.Errorf("%q: %w", strings.TrimSpace(text), ErrInvalidPower)
		}
		power = p
	}
	if token == "" {
		return Label{}, 0, ErrEmptyLabel
	}
	if index == nil {
		return Named(token), power, nil
	}
	pos, ok := index[token]
	if !ok {
		return Label{}, 0, fmt.Errorf("%q: %w", token, ErrUnknownLabel)
	}

	return Indexed(pos), power, nil
}

// termAccumulator sums powers per label while remembering first-seen order.
type termAccumulator struct {
	order []Label
	power map[Label]float64
}

func newTermAccumulator(capacity int) *termAccumulator {
	return &termAccumulator{
		order: make([]Label, 0, capacity),
		power: make(map[Label]float64, capacity),
	}
}

// add accumulates power onto label.
func (a *termAccumulator) add(label Label, power float64) {
	if _, seen := a.power[label]; !seen {
		a.order = append(a.order, label)
	}
	a.power[label] += power
}

// finish emits the non-zero factors in first-seen order and rejects
// non-finite powers among them.
func (a *termAccumulator) finish() (Term, error) {
	term := make(Term, 0, len(a.order))
	for _, l := range a.order {
		p := a.power[l]
		if p == 0 {
			continue
		}
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, ErrNonFinitePower
		}
		term = append(term, Factor{Label: l, Power: p})
	}

	return term, nil
}
