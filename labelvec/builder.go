// SPDX-License-Identifier: MIT
// Package: labelvec
//
// builder.go: systematic enumeration of polynomial label vectors.
//
// Algorithm:
//   - For every combination size o = 1..max(order, 1+crossTermOrder), walk all
//     multisets of o labels (combinations with replacement, non-decreasing
//     label positions, lexicographic order).
//   - Count occurrences per label. Accept a single-label multiset when its
//     power ≤ order, a multi-label one when every power ≤ crossTermOrder.
//   - Render accepted multisets with factors sorted by label name.
//
// Determinism:
//   - Term order is fixed by (size, lexicographic position); factor order by
//     sort.Strings. No map iteration reaches the output.
//
// Complexity:
//   - Σ_o C(K+o-1, o) multisets for K labels; each costs O(o log o).

package labelvec

import (
	"sort"
	"strconv"
	"strings"
)

// Build renders every accepted self and cross term of labels as a
// description string, terms joined by " <sep> ". A negative crossTermOrder
// means order-1. Duplicate and blank label names are ignored.
//
// Errors:
//   - ErrNoLabels when no usable label remains.
//   - ErrInvalidOrder when order < 0.
//   - ErrEmptyVector when the limits admit no term (e.g. order 0 and no cross terms).
func Build(labels []string, order, crossTermOrder int, opts ...Option) (string, error) {
	names := uniqueLabels(labels)
	if len(names) == 0 {
		return "", labelvecErrorf(methodBuild, ErrNoLabels, "%d names given", len(labels))
	}
	if order < 0 {
		return "", labelvecErrorf(methodBuild, ErrInvalidOrder, "order=%d", order)
	}
	if crossTermOrder < 0 {
		crossTermOrder = order - 1
	}

	g := newGrammar(opts...)
	maxSize := order
	if 1+crossTermOrder > maxSize {
		maxSize = 1 + crossTermOrder
	}

	var items []string
	combo := make([]int, 0, maxSize)
	for size := 1; size <= maxSize; size++ {
		forEachMultiset(len(names), size, combo, func(idx []int) {
			if term, ok := acceptMultiset(names, idx, order, crossTermOrder, g); ok {
				items = append(items, term)
			}
		})
	}
	if len(items) == 0 {
		return "", labelvecErrorf(methodBuild, ErrEmptyVector, "order=%d crossTermOrder=%d", order, crossTermOrder)
	}

	return strings.Join(items, " "+g.sep+" "), nil
}

// BuildVector builds a description with Build and parses it against the
// (deduplicated) label list, yielding indexed labels.
func BuildVector(labels []string, order, crossTermOrder int, opts ...Option) (Vector, error) {
	text, err := Build(labels, order, crossTermOrder, opts...)
	if err != nil {
		return nil, err
	}

	return Parse(text, uniqueLabels(labels), opts...)
}

// forEachMultiset calls visit with every non-decreasing index sequence of
// length size over [0, n), in lexicographic order. buf is reused; visit must
// not retain it.
func forEachMultiset(n, size int, buf []int, visit func(idx []int)) {
	var rec func(start int, idx []int)
	rec = func(start int, idx []int) {
		if len(idx) == size {
			visit(idx)
			return
		}
		for i := start; i < n; i++ {
			rec(i, append(idx, i))
		}
	}
	rec(0, buf[:0])
}

// acceptMultiset applies the order limits and renders the accepted term.
func acceptMultiset(names []string, idx []int, order, crossTermOrder int, g grammar) (string, bool) {
	counts := make(map[string]int, len(idx))
	maxPower := 0
	for _, i := range idx {
		counts[names[i]]++
		if counts[names[i]] > maxPower {
			maxPower = counts[names[i]]
		}
	}
	if len(counts) == 1 && maxPower > order {
		return "", false
	}
	if len(counts) > 1 && maxPower > crossTermOrder {
		return "", false
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if p := counts[k]; p > 1 {
			parts = append(parts, k+g.pow+strconv.Itoa(p))
			continue
		}
		parts = append(parts, k)
	}

	return strings.Join(parts, g.mul), true
}

// uniqueLabels trims names and keeps the first occurrence of each non-blank one.
func uniqueLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	return out
}
