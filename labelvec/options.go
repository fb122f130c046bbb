// SPDX-License-Identifier: MIT
// Package: labelvec
//
// options.go: functional options for the description grammar.
//
// Contract:
//   • Options are functional (type Option func(*grammar)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs (empty or
//     whitespace-only operators). Parse and Build themselves never panic.
//   • Later options override earlier ones.

package labelvec

import "strings"

// Default operators of the textual grammar.
const (
	DefaultSeparator      = "+" // between terms
	DefaultMultiplication = "*" // between factors of a term
	DefaultPower          = "^" // between a label and its power
)

const (
	panicEmptySeparator      = "labelvec: WithSeparator: operator must be non-blank"
	panicEmptyMultiplication = "labelvec: WithMultiplication: operator must be non-blank"
	panicEmptyPower          = "labelvec: WithPower: operator must be non-blank"
)

// grammar holds the resolved operator set.
type grammar struct {
	sep string
	mul string
	pow string
}

// Option customizes the operators used by Parse, Build and Vector.String.
type Option func(*grammar)

// WithSeparator sets the operator placed between terms.
// Panics on a blank operator.
func WithSeparator(op string) Option {
	if strings.TrimSpace(op) == "" {
		panic(panicEmptySeparator)
	}

	return func(g *grammar) { g.sep = op }
}

// WithMultiplication sets the operator placed between the factors of a term.
// Panics on a blank operator.
func WithMultiplication(op string) Option {
	if strings.TrimSpace(op) == "" {
		panic(panicEmptyMultiplication)
	}

	return func(g *grammar) { g.mul = op }
}

// WithPower sets the operator placed between a label and its power.
// Panics on a blank operator.
func WithPower(op string) Option {
	if strings.TrimSpace(op) == "" {
		panic(panicEmptyPower)
	}

	return func(g *grammar) { g.pow = op }
}

// newGrammar applies opts over the defaults, in order.
func newGrammar(opts ...Option) grammar {
	g := grammar{
		sep: DefaultSeparator,
		mul: DefaultMultiplication,
		pow: DefaultPower,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&g)
		}
	}

	return g
}
