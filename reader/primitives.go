package reader

import (
	"fmt"
	"math"
	"slices"
)

// Decoder turns a node into a typed value.
type Decoder[T any] func(Reader) (T, error)

type signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// String decodes any scalar as text.
func String(r Reader) (string, error) { return r.ReadString() }

// Bool decodes yes/no/true/false.
func Bool(r Reader) (bool, error) {
	s, err := r.ReadScalar()
	if err != nil {
		return false, err
	}
	v, ok := s.Bool()
	if !ok {
		return false, InvalidValue(r, s.String(), "bool")
	}
	return v, nil
}

// Int decodes a signed integer of the width of T.
func Int[T signed](r Reader) (T, error) {
	s, err := r.ReadScalar()
	if err != nil {
		return 0, err
	}
	n, ok := s.Int64()
	if !ok || int64(T(n)) != n {
		return 0, InvalidValue(r, s.String(), fmt.Sprintf("%T", T(0)))
	}
	return T(n), nil
}

// Uint decodes an unsigned integer of the width of T.
func Uint[T unsigned](r Reader) (T, error) {
	s, err := r.ReadScalar()
	if err != nil {
		return 0, err
	}
	n, ok := s.Uint64()
	if !ok || uint64(T(n)) != n {
		return 0, InvalidValue(r, s.String(), fmt.Sprintf("%T", T(0)))
	}
	return T(n), nil
}

func Float64(r Reader) (float64, error) {
	s, err := r.ReadScalar()
	if err != nil {
		return 0, err
	}
	v, ok := s.Float64()
	if !ok {
		return 0, InvalidValue(r, s.String(), "float64")
	}
	return v, nil
}

func Float32(r Reader) (float32, error) {
	s, err := r.ReadScalar()
	if err != nil {
		return 0, err
	}
	v, ok := s.Float64()
	if !ok {
		return 0, InvalidValue(r, s.String(), "float32")
	}
	if math.IsInf(float64(float32(v)), 0) {
		return 0, InvalidValue(r, s.String(), "float32")
	}
	return float32(v), nil
}

// Slice decodes every positional child with dec.
func Slice[T any](dec Decoder[T]) Decoder[[]T] {
	return func(r Reader) ([]T, error) {
		seq, err := r.ReadArray()
		if err != nil {
			return nil, err
		}
		out := []T{}
		for item := range seq {
			v, err := dec(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// Items collects the positional children of a container.
func Items(r Reader) ([]Reader, error) {
	seq, err := r.ReadArray()
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Empty accepts only `{}`.
func Empty(r Reader) error {
	if !r.IsContainer() {
		return InvalidType(r, r.TokenType(), "{}")
	}
	if r.token().End != r.idx+1 {
		return InvalidType(r, "non-empty "+r.TokenType(), "{}")
	}
	return nil
}
