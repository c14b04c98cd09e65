// Package filter evaluates field-level criteria over arbitrary record
// collections. A criterion is either an exact match, an inclusive numeric
// range or a case-insensitive substring search across one or more text
// fields. Criteria combine with logical AND.
package filter

import "strings"

type Kind int

const (
	KindExact Kind = iota + 1
	KindRange
	KindSubstring
)

func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindRange:
		return "range"
	case KindSubstring:
		return "substring"
	default:
		return "unknown"
	}
}

// Criterion is a tagged union over the three criterion kinds. Build one with
// Exact, Range or Substring; the zero value is inert.
type Criterion[T any] struct {
	Field string
	Kind  Kind

	equals func(T) bool

	number func(T) float64
	Min    *float64
	Max    *float64

	Query string
	text  []func(T) string
}

func Exact[T any, V comparable](field string, get func(T) V, want *V) Criterion[T] {
	c := Criterion[T]{Field: field, Kind: KindExact}
	if want != nil {
		target := *want
		c.equals = func(item T) bool { return get(item) == target }
	}
	return c
}

func Range[T any](field string, get func(T) float64, lo, hi *float64) Criterion[T] {
	return Criterion[T]{Field: field, Kind: KindRange, number: get, Min: lo, Max: hi}
}

func Substring[T any](field string, query string, fields ...func(T) string) Criterion[T] {
	return Criterion[T]{Field: field, Kind: KindSubstring, Query: query, text: fields}
}

// Active reports whether the criterion constrains anything.
func (c Criterion[T]) Active() bool {
	switch c.Kind {
	case KindExact:
		return c.equals != nil
	case KindRange:
		return c.number != nil && (c.Min != nil || c.Max != nil)
	case KindSubstring:
		return strings.TrimSpace(c.Query) != "" && len(c.text) > 0
	default:
		return false
	}
}

// Valid is false for a range whose lower bound exceeds its upper bound.
func (c Criterion[T]) Valid() bool {
	if c.Kind == KindRange && c.Min != nil && c.Max != nil {
		return *c.Min <= *c.Max
	}
	return true
}

func (c Criterion[T]) Match(item T) bool {
	if !c.Active() {
		return true
	}
	if !c.Valid() {
		return false
	}

	switch c.Kind {
	case KindExact:
		return c.equals(item)
	case KindRange:
		value := c.number(item)
		if c.Min != nil && value < *c.Min {
			return false
		}
		if c.Max != nil && value > *c.Max {
			return false
		}
		return true
	case KindSubstring:
		query := Fold(c.Query)
		for _, get := range c.text {
			if strings.Contains(Fold(get(item)), query) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// Criteria is a criterion set keyed by field name.
type Criteria[T any] map[string]Criterion[T]

// Set stores c under its field, replacing any previous criterion. Inactive
// criteria clear the field instead.
func (cs Criteria[T]) Set(c Criterion[T]) {
	if !c.Active() {
		delete(cs, c.Field)
		return
	}
	cs[c.Field] = c
}

func (cs Criteria[T]) Clear(field string) {
	delete(cs, field)
}

// Apply returns the items that satisfy every criterion, preserving input
// order. A malformed criterion yields an empty result.
func (cs Criteria[T]) Apply(items []T) []T {
	return Apply(items, cs.list()...)
}

func (cs Criteria[T]) list() []Criterion[T] {
	out := make([]Criterion[T], 0, len(cs))
	for _, c := range cs {
		out = append(out, c)
	}
	return out
}

func Apply[T any](items []T, criteria ...Criterion[T]) []T {
	active := make([]Criterion[T], 0, len(criteria))
	for _, c := range criteria {
		if !c.Active() {
			continue
		}
		if !c.Valid() {
			return []T{}
		}
		active = append(active, c)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchAll(item, active) {
			out = append(out, item)
		}
	}
	return out
}

func matchAll[T any](item T, criteria []Criterion[T]) bool {
	for _, c := range criteria {
		if !c.Match(item) {
			return false
		}
	}
	return true
}
