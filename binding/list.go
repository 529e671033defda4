package binding

import (
	"errors"

	"github.com/reoring/uiconf/datastore"
	"github.com/reoring/uiconf/reader"
)

// ErrLiteral is returned by List.ResolveMut for literal lists, which have no
// store field to write through.
var ErrLiteral = errors.New("binding: literal list is not backed by a store field")

// List is a literal slice or a reference to a datastore.List.
type List[T any] struct {
	ref   *Ref
	items []T
}

func ListOf[T any](items ...T) List[T] { return List[T]{items: items} }

func ListReference[T any](name string) List[T] { return List[T]{ref: NewRef(name)} }

// ReadList decodes `@name` or an array of elements decoded with dec.
func ReadList[T any](dec reader.Decoder[T]) reader.Decoder[List[T]] {
	items := reader.Slice(dec)
	return func(r reader.Reader) (List[T], error) {
		if isRef(r) {
			ref, err := ReadRef(r)
			if err != nil {
				return List[T]{}, err
			}
			return List[T]{ref: ref}, nil
		}
		v, err := items(r)
		if err != nil {
			return List[T]{}, err
		}
		return List[T]{items: v}, nil
	}
}

func (l List[T]) IsRef() bool { return l.ref != nil }

func (l List[T]) Ref() *Ref { return l.ref }

// Resolve returns the literal items, or the referenced list with each item
// converted by conv. A conversion failure fails the whole resolution.
func (l List[T]) Resolve(s datastore.Store, conv func(datastore.Value) (T, error)) ([]T, error) {
	if l.ref == nil {
		return l.items, nil
	}
	v, err := l.ref.field(s)
	if err != nil {
		return nil, err
	}
	list, err := datastore.Downcast[datastore.List](v)
	if err != nil {
		return nil, l.ref.fail(err)
	}
	out := make([]T, 0, list.Len())
	for _, it := range list.Items {
		x, err := conv(it)
		if err != nil {
			return nil, l.ref.fail(err)
		}
		out = append(out, x)
	}
	return out, nil
}

// ResolveMut returns the referenced store list.
func (l List[T]) ResolveMut(s datastore.Store) (*datastore.List, error) {
	if l.ref == nil {
		return nil, ErrLiteral
	}
	v, err := l.ref.field(s)
	if err != nil {
		return nil, err
	}
	if _, err := datastore.Downcast[datastore.List](v); err != nil {
		return nil, l.ref.fail(err)
	}
	v, err = s.FieldMut(l.ref.name)
	if err != nil {
		return nil, l.ref.fail(err)
	}
	p, err := datastore.DowncastMut[datastore.List](v)
	if err != nil {
		return nil, l.ref.fail(err)
	}
	return p, nil
}
