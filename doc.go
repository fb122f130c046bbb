// Package polyvec turns polynomial "label vector" descriptions into design
// matrices for linear spectral models: flux is regressed against products of
// powers of physical labels such as effective temperature (Teff), surface
// gravity (logg) and metallicity (feh).
//
// What is inside?
//
//	labelvec/   Label, Term and Vector types; the shape guard (IsStructured),
//	            the description parser (Parse) and the term generator (Build)
//	matrix/     row-major Dense container, column centering/scaling kernels
//	            and gonum interop
//	vectorizer/ Polynomial: labels + fiducials + scales + terms → N×(1+D)
//	            design matrix; YAML configuration
//
// Grammar (default operators):
//
//	"Teff^4 + logg*Teff^3 + feh + feh^0*Teff"
//	  + separates terms, * separates factors, ^ introduces a power
//
// Repeated labels inside a term are summed (feh^0*feh^2 → feh^2) and zero
// powers are dropped, so the example above reduces its last term to Teff.
//
// Quick start:
//
//	desc, _ := labelvec.Build([]string{"Teff", "logg", "feh"}, 2, 1)
//	p, _ := vectorizer.New(labels, fiducials, scales, desc,
//		vectorizer.WithEvaluationGuard(false))
//	X, _ := p.LabelVector(rows) // *matrix.Dense, column 0 is all ones
//
//	go get github.com/katalvlaran/polyvec
package polyvec
