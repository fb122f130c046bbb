// SPDX-License-Identifier: MIT

package labelvec_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/polyvec/labelvec"
	"github.com/stretchr/testify/require"
)

// TestBuild_SecondOrderWithCrossTerms pins the exact rendering.
func TestBuild_SecondOrderWithCrossTerms(t *testing.T) {
	got, err := labelvec.Build([]string{"Teff", "logg"}, 2, 1)
	require.NoError(t, err)
	require.Equal(t, "Teff + logg + Teff^2 + Teff*logg + logg^2", got)
}

// TestBuild_RoundTripThroughParser feeds Build output back into Parse.
func TestBuild_RoundTripThroughParser(t *testing.T) {
	labels := []string{"Teff", "logg"}
	text, err := labelvec.Build(labels, 2, 1)
	require.NoError(t, err)

	v, err := labelvec.Parse(text, labels)
	require.NoError(t, err)
	require.Equal(t, labelvec.Vector{
		{fi(0, 1)},
		{fi(1, 1)},
		{fi(0, 2)},
		{fi(0, 1), fi(1, 1)},
		{fi(1, 2)},
	}, v)
	require.NotContains(t, text, "Teff^2*logg", "cross power above limit")
}

// TestBuild_DefaultCrossTermOrder uses order-1 when crossTermOrder < 0.
func TestBuild_DefaultCrossTermOrder(t *testing.T) {
	explicit, err := labelvec.Build(stellar, 3, 2)
	require.NoError(t, err)
	implicit, err := labelvec.Build(stellar, 3, -1)
	require.NoError(t, err)
	require.Equal(t, explicit, implicit)
	require.Contains(t, implicit, "Teff^2*logg")
	require.NotContains(t, implicit, "Teff^3*logg")
}

// TestBuild_NoCrossTerms disables cross terms with crossTermOrder 0.
func TestBuild_NoCrossTerms(t *testing.T) {
	got, err := labelvec.Build([]string{"a", "b"}, 2, 0)
	require.NoError(t, err)
	require.Equal(t, "a + b + a^2 + b^2", got)
}

// TestBuild_CrossOrderAboveOrder extends the enumeration beyond order.
func TestBuild_CrossOrderAboveOrder(t *testing.T) {
	got, err := labelvec.Build([]string{"a", "b"}, 1, 2)
	require.NoError(t, err)
	// sizes 1..3: singles capped at power 1, cross powers capped at 2.
	require.Equal(t, "a + b + a*b + a^2*b + a*b^2", got)
}

// TestBuild_AlphabeticalFactors sorts factors by byte order of the name.
func TestBuild_AlphabeticalFactors(t *testing.T) {
	got, err := labelvec.Build([]string{"logg", "Teff"}, 2, 1)
	require.NoError(t, err)
	require.Equal(t, "logg + Teff + logg^2 + Teff*logg + Teff^2", got)
}

// TestBuild_Deterministic compares repeated invocations byte-for-byte.
func TestBuild_Deterministic(t *testing.T) {
	first, err := labelvec.Build(stellar, 4, 3)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := labelvec.Build(stellar, 4, 3)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestBuild_NoDuplicateTerms checks every rendered term is unique, also
// when the input repeats a label.
func TestBuild_NoDuplicateTerms(t *testing.T) {
	got, err := labelvec.Build([]string{"Teff", "logg", "Teff", "feh"}, 3, 2)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, term := range strings.Split(got, " + ") {
		require.False(t, seen[term], "duplicate term %q", term)
		seen[term] = true
	}
	dedup, err := labelvec.Build(stellar, 3, 2)
	require.NoError(t, err)
	require.Equal(t, dedup, got)
}

// TestBuild_CustomOperators renders with overridden operators.
func TestBuild_CustomOperators(t *testing.T) {
	got, err := labelvec.Build([]string{"a", "b"}, 2, 1,
		labelvec.WithSeparator("|"),
		labelvec.WithMultiplication("·"),
		labelvec.WithPower("**"),
	)
	require.NoError(t, err)
	require.Equal(t, "a | b | a**2 | a·b | b**2", got)
}

// TestBuild_Errors covers the parameter checks.
func TestBuild_Errors(t *testing.T) {
	_, err := labelvec.Build(nil, 2, 1)
	require.ErrorIs(t, err, labelvec.ErrNoLabels)

	_, err = labelvec.Build([]string{" ", ""}, 2, 1)
	require.ErrorIs(t, err, labelvec.ErrNoLabels)

	_, err = labelvec.Build([]string{"a"}, -1, 1)
	require.ErrorIs(t, err, labelvec.ErrInvalidOrder)

	_, err = labelvec.Build([]string{"a", "b"}, 0, -1)
	require.ErrorIs(t, err, labelvec.ErrEmptyVector)
}

// TestBuildVector returns indexed labels over the deduplicated list.
func TestBuildVector(t *testing.T) {
	v, err := labelvec.BuildVector([]string{"a", "b", "a"}, 1, 1)
	require.NoError(t, err)
	require.Equal(t, labelvec.Vector{{fi(0, 1)}, {fi(1, 1)}, {fi(0, 1), fi(1, 1)}}, v)
}
