// SPDX-License-Identifier: MIT
// Package: labelvec
//
// validator.go: the structured-vector shape guard.
//
// Purpose:
//   - Decide whether a value already IS a label vector, so Parse can return it
//     untouched (idempotent fast path).
//   - Accept typed values (Vector, []Term, [][]Factor) and generic trees such
//     as [][]any{{"Teff", 4}} decoded from JSON/YAML or written by hand.
//
// Contract:
//   - Pure, never panics, never returns an error: a malformed value is simply
//     "not structured".
//   - Shape only: powers must be numeric, but finiteness is Parse's concern.

package labelvec

import "reflect"

// pairLen is the exact arity of a (label, power) pair.
const pairLen = 2

// IsStructured reports whether v is a non-empty sequence of non-empty terms,
// each term a sequence of (label, power) pairs with a string or integer label
// and a numeric power, holding at least one factor overall.
// Complexity: O(total factors).
func IsStructured(v any) bool {
	_, ok := structured(v)

	return ok
}

// structured converts v into a Vector when it passes the shape guard.
// Typed vectors are returned as the same slice (no copy).
func structured(v any) (Vector, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case string, []string:
		return nil, false
	case Vector:
		return x, typedShapeOK(x)
	case []Term:
		return Vector(x), typedShapeOK(x)
	case [][]Factor:
		out := make(Vector, len(x))
		for i, t := range x {
			out[i] = Term(t)
		}

		return out, typedShapeOK(out)
	}

	return genericVector(reflect.ValueOf(v))
}

// typedShapeOK checks the non-emptiness rules on an already typed vector.
func typedShapeOK(v []Term) bool {
	if len(v) == 0 {
		return false
	}
	for _, t := range v {
		if len(t) == 0 {
			return false
		}
	}

	return true
}

// genericVector walks a sequence-of-sequences-of-pairs tree via reflection.
func genericVector(rv reflect.Value) (Vector, bool) {
	rv = unwrap(rv)
	if !isSequence(rv) || rv.Len() == 0 {
		return nil, false
	}
	out := make(Vector, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		term, ok := genericTerm(rv.Index(i))
		if !ok {
			return nil, false
		}
		out = append(out, term)
	}

	return out, true
}

// genericTerm reads one non-empty sequence of pairs.
func genericTerm(rv reflect.Value) (Term, bool) {
	rv = unwrap(rv)
	if !isSequence(rv) || rv.Len() == 0 {
		return nil, false
	}
	term := make(Term, 0, rv.Len())
	for j := 0; j < rv.Len(); j++ {
		f, ok := genericFactor(rv.Index(j))
		if !ok {
			return nil, false
		}
		term = append(term, f)
	}

	return term, true
}

// genericFactor reads one (label, power) pair, or a Factor value.
func genericFactor(rv reflect.Value) (Factor, bool) {
	rv = unwrap(rv)
	if rv.IsValid() && rv.Type() == reflect.TypeOf(Factor{}) {
		return rv.Interface().(Factor), true
	}
	if !isSequence(rv) || rv.Len() != pairLen {
		return Factor{}, false
	}
	label, ok := genericLabel(rv.Index(0))
	if !ok {
		return Factor{}, false
	}
	power, ok := genericNumber(rv.Index(1))
	if !ok {
		return Factor{}, false
	}

	return Factor{Label: label, Power: power}, true
}

// genericLabel accepts strings, integers and Label values.
func genericLabel(rv reflect.Value) (Label, bool) {
	rv = unwrap(rv)
	if !rv.IsValid() {
		return Label{}, false
	}
	if rv.Type() == reflect.TypeOf(Label{}) {
		return rv.Interface().(Label), true
	}
	switch rv.Kind() {
	case reflect.String:
		return Named(rv.String()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Indexed(int(rv.Int())), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Indexed(int(rv.Uint())), true
	}

	return Label{}, false
}

// genericNumber accepts every integer and float kind.
func genericNumber(rv reflect.Value) (float64, bool) {
	rv = unwrap(rv)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}

	return 0, false
}

// unwrap strips interface and pointer indirections.
func unwrap(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}

	return rv
}

// isSequence reports slices and arrays; strings are not sequences here.
func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	k := rv.Kind()

	return k == reflect.Slice || k == reflect.Array
}
