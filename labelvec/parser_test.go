// SPDX-License-Identifier: MIT

// Package labelvec_test contains unit tests for the description parser.
package labelvec_test

import (
	"testing"

	"github.com/katalvlaran/polyvec/labelvec"
	"github.com/stretchr/testify/require"
)

var stellar = []string{"Teff", "logg", "feh"}

// f is a compact factor constructor for named labels.
func f(name string, p float64) labelvec.Factor {
	return labelvec.Factor{Label: labelvec.Named(name), Power: p}
}

// fi is a compact factor constructor for indexed labels.
func fi(i int, p float64) labelvec.Factor {
	return labelvec.Factor{Label: labelvec.Indexed(i), Power: p}
}

// TestParse_ReferenceExample parses the canonical four-term description.
func TestParse_ReferenceExample(t *testing.T) {
	v, err := labelvec.Parse("Teff^4 + logg*Teff^3 + feh + feh^0*Teff", nil)
	require.NoError(t, err)

	want := labelvec.Vector{
		{f("Teff", 4)},
		{f("logg", 1), f("Teff", 3)},
		{f("feh", 1)},
		{f("Teff", 1)}, // feh^0 dropped
	}
	require.Equal(t, want, v)
}

// TestParse_RepeatedFactorsAreSummed checks that powers of one label add up
// within a term and keep the first-seen position.
func TestParse_RepeatedFactorsAreSummed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want labelvec.Vector
	}{
		{"zero then square", "feh^0*feh^2", labelvec.Vector{{f("feh", 2)}}},
		{"interleaved", "Teff*logg*Teff^2", labelvec.Vector{{f("Teff", 3), f("logg", 1)}}},
		{"fractional", "logg^0.5*logg^0.25", labelvec.Vector{{f("logg", 0.75)}}},
		{"cancel to zero", "Teff^2*Teff^-2*feh", labelvec.Vector{{f("feh", 1)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := labelvec.Parse(tc.in, nil)
			require.NoError(t, err)
			require.Equal(t, tc.want, v)
		})
	}
}

// TestParse_TermsAreIndependent ensures labels are not merged across terms.
func TestParse_TermsAreIndependent(t *testing.T) {
	v, err := labelvec.Parse("Teff + Teff", nil)
	require.NoError(t, err)
	require.Equal(t, labelvec.Vector{{f("Teff", 1)}, {f("Teff", 1)}}, v)
}

// TestParse_ZeroPowerElimination drops zero powers and empty terms.
func TestParse_ZeroPowerElimination(t *testing.T) {
	v, err := labelvec.Parse("feh^0*Teff", nil)
	require.NoError(t, err)
	require.Equal(t, labelvec.Vector{{f("Teff", 1)}}, v)

	v, err = labelvec.Parse("logg^0 + Teff", nil)
	require.NoError(t, err)
	require.Equal(t, labelvec.Vector{{f("Teff", 1)}}, v, "emptied term must be omitted")
}

// TestParse_WhitespaceTolerance compares spaced and compact spellings.
func TestParse_WhitespaceTolerance(t *testing.T) {
	spaced, err := labelvec.Parse("Teff^4 + logg * Teff^3", nil)
	require.NoError(t, err)
	compact, err := labelvec.Parse("Teff^4+logg*Teff^3", nil)
	require.NoError(t, err)
	padded, err := labelvec.Parse("  Teff ^ 4 +\tlogg*  Teff^ 3  ", nil)
	require.NoError(t, err)

	require.Equal(t, compact, spaced)
	require.Equal(t, compact, padded)
}

// TestParse_Columns resolves names to column positions.
func TestParse_Columns(t *testing.T) {
	v, err := labelvec.Parse("logg*Teff^3", stellar)
	require.NoError(t, err)
	require.Equal(t, labelvec.Vector{{fi(1, 1), fi(0, 3)}}, v)
}

// TestParse_UnknownLabel rejects names outside the column list.
func TestParse_UnknownLabel(t *testing.T) {
	_, err := labelvec.Parse("bogus^2", stellar)
	require.ErrorIs(t, err, labelvec.ErrUnknownLabel)

	// Matching is exact: case differs.
	_, err = labelvec.Parse("teff", stellar)
	require.ErrorIs(t, err, labelvec.ErrUnknownLabel)
}

// TestParse_EmptyResultRejected fails when every term cancels.
func TestParse_EmptyResultRejected(t *testing.T) {
	for _, in := range []string{"feh^0", "Teff^0 + logg^0*feh^0", "Teff*Teff^-1"} {
		_, err := labelvec.Parse(in, nil)
		require.ErrorIs(t, err, labelvec.ErrEmptyVector, in)
		require.ErrorIs(t, err, labelvec.ErrInvalidDescription, in)
	}
}

// TestParse_NonFinitePower rejects NaN and infinite powers.
func TestParse_NonFinitePower(t *testing.T) {
	for _, in := range []string{"Teff^inf", "Teff^NaN", "logg + feh^-Inf", "Teff^1e400", "logg*feh^-1e999"} {
		_, err := labelvec.Parse(in, nil)
		require.ErrorIs(t, err, labelvec.ErrNonFinitePower, in)
		require.ErrorIs(t, err, labelvec.ErrInvalidDescription, in)
	}
}

// TestParse_MalformedFactors covers bad powers and missing labels.
func TestParse_MalformedFactors(t *testing.T) {
	_, err := labelvec.Parse("Teff^two", nil)
	require.ErrorIs(t, err, labelvec.ErrInvalidPower)

	_, err = labelvec.Parse("Teff^", nil)
	require.ErrorIs(t, err, labelvec.ErrInvalidPower)

	_, err = labelvec.Parse("Teff + ", nil)
	require.ErrorIs(t, err, labelvec.ErrEmptyLabel)

	_, err = labelvec.Parse("^2", nil)
	require.ErrorIs(t, err, labelvec.ErrEmptyLabel)
}

// TestParse_TermList accepts one string per term.
func TestParse_TermList(t *testing.T) {
	v, err := labelvec.Parse([]string{" Teff^2 ", "logg*feh"}, stellar)
	require.NoError(t, err)
	require.Equal(t, labelvec.Vector{{fi(0, 2)}, {fi(1, 1), fi(2, 1)}}, v)
}

// TestParse_CustomOperators swaps every operator.
func TestParse_CustomOperators(t *testing.T) {
	v, err := labelvec.Parse("Teff**2 ; logg&feh", nil,
		labelvec.WithSeparator(";"),
		labelvec.WithMultiplication("&"),
		labelvec.WithPower("**"),
	)
	require.NoError(t, err)
	require.Equal(t, labelvec.Vector{{f("Teff", 2)}, {f("logg", 1), f("feh", 1)}}, v)
}

// TestParse_Idempotent feeds parsed output back into Parse.
func TestParse_Idempotent(t *testing.T) {
	for _, cols := range [][]string{nil, stellar} {
		once, err := labelvec.Parse("Teff^4 + logg*Teff^3 + feh", cols)
		require.NoError(t, err)
		twice, err := labelvec.Parse(once, cols)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	}
}

// TestParse_GenericTree converts a structured []any tree without re-parsing.
func TestParse_GenericTree(t *testing.T) {
	tree := []any{
		[]any{[]any{"Teff", 4}},
		[]any{[]any{"logg", 1}, []any{"Teff", 3.0}},
	}
	v, err := labelvec.Parse(tree, stellar)
	require.NoError(t, err)
	require.Equal(t, labelvec.Vector{{f("Teff", 4)}, {f("logg", 1), f("Teff", 3)}}, v)
}

// TestParse_UnsupportedType rejects values that are neither text nor structured.
func TestParse_UnsupportedType(t *testing.T) {
	_, err := labelvec.Parse(42, nil)
	require.ErrorIs(t, err, labelvec.ErrUnsupportedDescription)

	_, err = labelvec.Parse(labelvec.Vector{}, nil)
	require.ErrorIs(t, err, labelvec.ErrUnsupportedDescription)
}

// TestMustParse_Panics verifies the panic wrapper.
func TestMustParse_Panics(t *testing.T) {
	require.Panics(t, func() { labelvec.MustParse("feh^0", nil) })
	require.NotPanics(t, func() { labelvec.MustParse("feh", nil) })
}

// TestOptions_PanicOnBlank ensures option constructors fail fast.
func TestOptions_PanicOnBlank(t *testing.T) {
	require.Panics(t, func() { labelvec.WithSeparator("") })
	require.Panics(t, func() { labelvec.WithMultiplication(" ") })
	require.Panics(t, func() { labelvec.WithPower("\t") })
}

// TestParse_ChainedPowerOperators keeps only the first power after a label.
func TestParse_ChainedPowerOperators(t *testing.T) {
	v, err := labelvec.Parse("Teff^2^3 + logg^0.5^x", nil)
	require.NoError(t, err)
	require.Equal(t, labelvec.Vector{{f("Teff", 2)}, {f("logg", 0.5)}}, v)

	_, err = labelvec.Parse("Teff^^3", nil)
	require.ErrorIs(t, err, labelvec.ErrInvalidPower)
}
