// Package labelvec describes polynomial label vectors: ordered sums of
// products of label powers such as
//
//	Teff^4 + logg*Teff^3 + feh + feh^0*Teff
//
// used as the regression basis of a linear spectral model.
//
// The package offers the following key components:
//
//   - Data model:
//     – Label:   tagged union of a named label ("Teff") or an indexed label (0).
//     – Factor:  one (Label, Power) pair.
//     – Term:    ordered product of factors, one factor per distinct label.
//     – Vector:  ordered list of terms.
//   - Term validator:
//     – IsStructured: shape guard over typed or generic ([]any) trees.
//   - Description parser:
//     – Parse:      text or per-term strings → Vector (optionally resolved
//     against an ordered column list).
//     – MustParse:  Parse that panics, for fixtures.
//   - Label-vector builder:
//     – Build:        enumerate self and cross terms up to given orders and
//     render them as a description string.
//     – BuildVector:  Build piped into Parse.
//   - Operators:
//     – WithSeparator, WithMultiplication, WithPower override the default
//     "+", "*" and "^".
//
// Guarantees:
//
//   - Parse is idempotent: Parse(Parse(x)) returns its input unchanged.
//   - Repeated labels inside a term are summed in first-seen order; zero
//     powers are dropped; a description that cancels to nothing is rejected.
//   - Build is deterministic: factor order is alphabetical, term order follows
//     increasing combination size.
//   - Fast-fail on invalid operators via panics in option constructors;
//     every runtime failure is a sentinel error matched with errors.Is.
package labelvec
