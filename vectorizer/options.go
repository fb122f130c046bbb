// SPDX-License-Identifier: MIT

// Package vectorizer: functional options for New.
// Option constructors panic on meaningless input; New never panics.
package vectorizer

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/polyvec/labelvec"
)

// DefaultEvaluationGuard is the evaluation guard state of a new Polynomial.
const DefaultEvaluationGuard = true

const panicNilLogger = "vectorizer: WithLogger: logger must be non-nil"

// options is the resolved configuration of a Polynomial.
type options struct {
	guard          bool
	allowNonFinite bool
	logger         *slog.Logger
	grammar        []labelvec.Option
}

// Option customizes New.
type Option func(*options)

// WithEvaluationGuard switches the evaluation guard on or off.
func WithEvaluationGuard(enabled bool) Option {
	return func(o *options) { o.guard = enabled }
}

// WithAllowNonFinite lets NaN and ±Inf flow through evaluation instead of
// failing with matrix.ErrNaNInf.
func WithAllowNonFinite() Option {
	return func(o *options) { o.allowNonFinite = true }
}

// WithLogger routes construction and evaluation Debug records to l.
// Panics on a nil logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithOperators sets the grammar used to parse textual term descriptions
// and to render Description. Repeated calls accumulate.
func WithOperators(opts ...labelvec.Option) Option {
	return func(o *options) { o.grammar = append(o.grammar, opts...) }
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{
		guard:  DefaultEvaluationGuard,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
