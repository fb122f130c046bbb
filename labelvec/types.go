// SPDX-License-Identifier: MIT

// Package labelvec: domain types of a polynomial label vector.
// This file contains ONLY the data model (Label, Factor, Term, Vector) and
// the small helpers that operate on it. Parsing lives in parser.go, the
// shape guard in validator.go, enumeration in builder.go.
package labelvec

import (
	"strconv"
	"strings"
)

// Label identifies a physical quantity inside a term. It is either a name
// ("Teff") or, once resolved against an ordered column list, the position of
// that name in the list. The zero value is the empty name.
//
// Label is comparable and can be used as a map key.
type Label struct {
	name    string // valid when !indexed
	index   int    // valid when indexed
	indexed bool   // discriminator
}

// Named returns a label referring to a quantity by name.
func Named(name string) Label { return Label{name: name} }

// Indexed returns a label referring to a quantity by its column position.
func Indexed(i int) Label { return Label{index: i, indexed: true} }

// IsIndexed reports whether l was resolved to a column position.
func (l Label) IsIndexed() bool { return l.indexed }

// Name returns the label name, or "" for an indexed label.
func (l Label) Name() string { return l.name }

// Index returns the column position, or -1 for a named label.
func (l Label) Index() int {
	if !l.indexed {
		return -1
	}

	return l.index
}

// String renders the name, or the index in decimal.
func (l Label) String() string {
	if l.indexed {
		return strconv.Itoa(l.index)
	}

	return l.name
}

// Factor is one label raised to a power.
type Factor struct {
	Label Label
	Power float64
}

// Term is an ordered product of factors. After parsing, every label appears
// at most once and no power is zero.
type Term []Factor

// Vector is an ordered list of terms: the polynomial basis of a model.
type Vector []Term

// Len returns the total number of factors across all terms.
// Complexity: O(D).
func (v Vector) Len() int {
	n := 0
	for _, t := range v {
		n += len(t)
	}

	return n
}

// Equal reports whether v and w hold the same terms, factors and powers in
// the same order.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if len(v[i]) != len(w[i]) {
			return false
		}
		for j := range v[i] {
			if v[i][j] != w[i][j] {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	for i, t := range v {
		out[i] = append(Term(nil), t...)
	}

	return out
}

// Labels returns the distinct labels of v in first-seen order.
func (v Vector) Labels() []Label {
	seen := make(map[Label]struct{})
	var out []Label
	for _, t := range v {
		for _, f := range t {
			if _, ok := seen[f.Label]; ok {
				continue
			}
			seen[f.Label] = struct{}{}
			out = append(out, f.Label)
		}
	}

	return out
}

// String renders v back into a description using the given operators.
// Power 1 is omitted; other powers use the shortest decimal form, so the
// output parses back to an equal Vector.
func (v Vector) String(opts ...Option) string {
	g := newGrammar(opts...)
	terms := make([]string, 0, len(v))
	for _, t := range v {
		terms = append(terms, t.render(g))
	}

	return strings.Join(terms, " "+g.sep+" ")
}

// render joins the factors of t with the multiplication operator.
func (t Term) render(g grammar) string {
	parts := make([]string, 0, len(t))
	for _, f := range t {
		if f.Power == 1 {
			parts = append(parts, f.Label.String())
			continue
		}
		parts = append(parts, f.Label.String()+g.pow+strconv.FormatFloat(f.Power, 'g', -1, 64))
	}

	return strings.Join(parts, g.mul)
}

// Resolve converts every named label of v into its first position in
// columns and checks that indexed labels lie in [0, len(columns)).
// Factors that collapse onto the same column are summed, zero powers are
// dropped and emptied terms are omitted, exactly as Parse does.
//
// Errors:
//   - ErrUnknownLabel for a name absent from columns or an index out of range.
//   - ErrEmptyVector when nothing survives.
func (v Vector) Resolve(columns []string) (Vector, error) {
	index := columnIndex(columns)
	out := make(Vector, 0, len(v))
	for ti, t := range v {
		acc := newTermAccumulator(len(t))
		for _, f := range t {
			l := f.Label
			if l.indexed {
				if l.index < 0 || l.index >= len(columns) {
					return nil, labelvecErrorf(methodResolve, ErrUnknownLabel, "term %d: index %d", ti, l.index)
				}
			} else {
				pos, ok := index[l.name]
				if !ok {
					return nil, labelvecErrorf(methodResolve, ErrUnknownLabel, "term %d: %q", ti, l.name)
				}
				l = Indexed(pos)
			}
			acc.add(l, f.Power)
		}
		term, err := acc.finish()
		if err != nil {
			return nil, labelvecErrorf(methodResolve, err, "term %d", ti)
		}
		if len(term) > 0 {
			out = append(out, term)
		}
	}
	if out.Len() == 0 {
		return nil, labelvecErrorf(methodResolve, ErrEmptyVector, "%d terms", len(v))
	}

	return out, nil
}

// columnIndex maps each name to its first position in columns.
func columnIndex(columns []string) map[string]int {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}

	return index
}
