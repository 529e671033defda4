package reader

import "strings"

// Named pairs a snake_case name with a value.
type Named[T any] struct {
	Name  string
	Value T
}

// Enum decodes a scalar matched case-insensitively against a fixed list of
// variant names.
type Enum[T comparable] struct {
	names  []string
	values []T
}

// NewEnum builds an Enum from its cases in declaration order.
func NewEnum[T comparable](cases ...Named[T]) *Enum[T] {
	e := &Enum[T]{
		names:  make([]string, len(cases)),
		values: make([]T, len(cases)),
	}
	for i, c := range cases {
		e.names[i] = c.Name
		e.values[i] = c.Value
	}
	return e
}

// Names returns the accepted variant names.
func (e *Enum[T]) Names() []string { return e.names }

// Lookup matches s against the variant names.
func (e *Enum[T]) Lookup(s string) (T, bool) {
	for i, n := range e.names {
		if strings.EqualFold(n, s) {
			return e.values[i], true
		}
	}
	var zero T
	return zero, false
}

// Name returns the declared name of v, or "" when v is not a variant.
func (e *Enum[T]) Name(v T) string {
	for i, x := range e.values {
		if x == v {
			return e.names[i]
		}
	}
	return ""
}

// Read decodes a scalar variant name.
func (e *Enum[T]) Read(r Reader) (T, error) {
	s, err := r.ReadScalar()
	if err != nil {
		var zero T
		return zero, err
	}
	v, ok := e.Lookup(s.String())
	if !ok {
		var zero T
		return zero, UnknownVariant(r, s.String(), e.names)
	}
	return v, nil
}
