// SPDX-License-Identifier: MIT

package vectorizer

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/polyvec/labelvec"
	"gopkg.in/yaml.v3"
)

// Config is the YAML form of a Polynomial:
//
//	labels: [Teff, logg, feh]
//	fiducials: [4750, 2.5, 0.0]
//	scales: [500, 1.0, 0.3]
//	terms: "Teff + logg + feh + Teff^2"   # or a list of per-term strings
//	order: 2                              # used only when terms is empty
//	cross_term_order: 1                   # negative: order-1
//	operators: {separator: "+", multiplication: "*", power: "^"}
//	evaluation_guard: false
//
// Optional settings are pointers so that an omitted key, or a Config literal
// that leaves them nil, falls back to the documented defaults:
// EvaluationGuard to DefaultEvaluationGuard, CrossTermOrder to -1
// (labelvec.Build reads a negative value as order-1).
type Config struct {
	Labels          []string  `yaml:"labels"`
	Fiducials       []float64 `yaml:"fiducials"`
	Scales          []float64 `yaml:"scales"`
	Terms           Terms     `yaml:"terms"`
	Order           int       `yaml:"order"`
	CrossTermOrder  *int      `yaml:"cross_term_order"`
	Operators       Operators `yaml:"operators"`
	EvaluationGuard *bool     `yaml:"evaluation_guard"`
}

// Operators overrides the description grammar; blank fields keep the defaults.
type Operators struct {
	Separator      string `yaml:"separator"`
	Multiplication string `yaml:"multiplication"`
	Power          string `yaml:"power"`
}

// Terms holds a term description written either as one string or as a list
// of per-term strings.
type Terms struct {
	Text string
	List []string
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (t *Terms) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&t.Text)
	case yaml.SequenceNode:
		return value.Decode(&t.List)
	default:
		return fmt.Errorf("line %d: terms must be a string or a list of strings", value.Line)
	}
}

// IsZero reports whether no description was given.
func (t Terms) IsZero() bool {
	return strings.TrimSpace(t.Text) == "" && len(t.List) == 0
}

// description returns the value handed to labelvec.Parse.
func (t Terms) description() any {
	if len(t.List) > 0 {
		return t.List
	}

	return t.Text
}

// defaultCrossTermOrder lets labelvec.Build choose order-1.
const defaultCrossTermOrder = -1

// Guard returns the effective evaluation guard setting.
func (c Config) Guard() bool {
	if c.EvaluationGuard == nil {
		return DefaultEvaluationGuard
	}

	return *c.EvaluationGuard
}

// CrossOrder returns the effective cross-term order handed to labelvec.Build.
func (c Config) CrossOrder() int {
	if c.CrossTermOrder == nil {
		return defaultCrossTermOrder
	}

	return *c.CrossTermOrder
}

// LoadConfig decodes one YAML document and validates it.
// Unknown keys are rejected.
//
// Errors: ErrInvalidConfig (decode failures and everything Validate reports).
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w: %w", opLoadConfig, ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", opLoadConfig, err)
	}

	return cfg, nil
}

// Validate checks the document-level constraints. Term parsing and label
// checks beyond counts happen in New.
//
// Errors: ErrInvalidConfig, also matching ErrNoLabels or ErrDimensionMismatch.
func (c Config) Validate() error {
	if len(c.Labels) == 0 {
		return fmt.Errorf("%s: %w: %w", opValidate, ErrInvalidConfig, ErrNoLabels)
	}
	if len(c.Fiducials) != len(c.Labels) || len(c.Scales) != len(c.Labels) {
		return fmt.Errorf("%s: %w: %d labels, %d fiducials, %d scales: %w",
			opValidate, ErrInvalidConfig, len(c.Labels), len(c.Fiducials), len(c.Scales), ErrDimensionMismatch)
	}
	if c.Terms.IsZero() && c.Order < 0 {
		return fmt.Errorf("%s: %w: order %d without terms: %w", opValidate, ErrInvalidConfig, c.Order, labelvec.ErrInvalidOrder)
	}

	return nil
}

// grammar converts the non-blank operator overrides into labelvec options.
func (o Operators) grammar() []labelvec.Option {
	var g []labelvec.Option
	if strings.TrimSpace(o.Separator) != "" {
		g = append(g, labelvec.WithSeparator(o.Separator))
	}
	if strings.TrimSpace(o.Multiplication) != "" {
		g = append(g, labelvec.WithMultiplication(o.Multiplication))
	}
	if strings.TrimSpace(o.Power) != "" {
		g = append(g, labelvec.WithPower(o.Power))
	}

	return g
}

// New validates c and builds the Polynomial it describes. When no terms are
// given they are generated with labelvec.Build from Order and CrossOrder.
// opts are applied after the options derived from c.
func (c Config) New(opts ...Option) (*Polynomial, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opConfigNew, err)
	}
	g := c.Operators.grammar()

	terms := c.Terms.description()
	if c.Terms.IsZero() {
		built, err := labelvec.Build(c.Labels, c.Order, c.CrossOrder(), g...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", opConfigNew, ErrInvalidConfig, err)
		}
		terms = built
	}

	all := make([]Option, 0, 2+len(opts))
	all = append(all, WithEvaluationGuard(c.Guard()), WithOperators(g...))
	all = append(all, opts...)

	p, err := New(c.Labels, c.Fiducials, c.Scales, terms, all...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opConfigNew, err)
	}

	return p, nil
}
