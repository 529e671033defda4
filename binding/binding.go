// Package binding implements values that are either literals taken from the
// document or references (`@name`) to fields of a datastore.Store, resolved
// on every access.
package binding

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/reoring/uiconf/datastore"
	"github.com/reoring/uiconf/reader"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used for resolution warnings. nil restores
// slog.Default().
func SetLogger(l *slog.Logger) { logger.Store(l) }

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// ResolveError reports a failed reference lookup. Err is datastore.ErrNotFound
// (wrapped) or a *datastore.TypeError.
type ResolveError struct {
	Name string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("failed to resolve binding @%s: %v", e.Name, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Ref names a store field. The first failed resolution of each Ref logs a
// warning; later failures are silent.
type Ref struct {
	name   string
	warned atomic.Bool
}

func NewRef(name string) *Ref { return &Ref{name: name} }

func (r *Ref) Name() string { return r.name }

func (r *Ref) String() string { return "@" + r.name }

func (r *Ref) fail(err error) error {
	err = &ResolveError{Name: r.name, Err: err}
	if !r.warned.Swap(true) {
		log().Warn("binding resolution failed", "ref", r.String(), "err", err)
	}
	return err
}

func (r *Ref) field(s datastore.Store) (datastore.Value, error) {
	if s == nil {
		return nil, r.fail(fmt.Errorf("%w: %s", datastore.ErrNotFound, r.name))
	}
	v, err := s.Field(r.name)
	if err != nil {
		return nil, r.fail(err)
	}
	return v, nil
}

// ReadRef decodes an unquoted `@name` scalar.
func ReadRef(r reader.Reader) (*Ref, error) {
	if !r.IsUnquoted() {
		return nil, reader.InvalidType(r, r.TokenType(), "unquoted scalar")
	}
	s, _ := r.ReadString()
	name, ok := strings.CutPrefix(s, "@")
	if !ok || name == "" {
		return nil, reader.InvalidValue(r, s, "@ref")
	}
	return NewRef(name), nil
}

// isRef reports whether r uses the reference grammar.
func isRef(r reader.Reader) bool {
	if !r.IsUnquoted() {
		return false
	}
	s, _ := r.ReadString()
	return strings.HasPrefix(s, "@")
}

// Binding is either a literal T or a reference to a store field holding a T.
type Binding[T any] struct {
	ref   *Ref
	value T
}

func Value[T any](v T) Binding[T] { return Binding[T]{value: v} }

func Reference[T any](name string) Binding[T] { return Binding[T]{ref: NewRef(name)} }

// FromRef returns a binding sharing ref, including its warning state.
func FromRef[T any](ref *Ref) Binding[T] { return Binding[T]{ref: ref} }

// Read returns a decoder trying the reference grammar first and falling back
// to dec. A bare `@` is an invalid reference, not a literal.
func Read[T any](dec reader.Decoder[T]) reader.Decoder[Binding[T]] {
	return func(r reader.Reader) (Binding[T], error) {
		if isRef(r) {
			ref, err := ReadRef(r)
			if err != nil {
				return Binding[T]{}, err
			}
			return Binding[T]{ref: ref}, nil
		}
		v, err := dec(r)
		if err != nil {
			return Binding[T]{}, err
		}
		return Binding[T]{value: v}, nil
	}
}

func (b Binding[T]) IsRef() bool { return b.ref != nil }

// Ref returns the reference, or nil for literals.
func (b Binding[T]) Ref() *Ref { return b.ref }

// Literal returns the literal value and whether b is a literal.
func (b Binding[T]) Literal() (T, bool) { return b.value, b.ref == nil }

// Resolve returns the literal or the current value of the referenced field.
func (b Binding[T]) Resolve(s datastore.Store) (T, error) {
	if b.ref == nil {
		return b.value, nil
	}
	var zero T
	v, err := b.ref.field(s)
	if err != nil {
		return zero, err
	}
	out, err := datastore.Downcast[T](v)
	if err != nil {
		return zero, b.ref.fail(err)
	}
	return out, nil
}

// ResolveMut returns a pointer the caller may write through. For references
// the pointer aliases the store field; for literals it points at a private
// copy, leaving the document unchanged.
func (b Binding[T]) ResolveMut(s datastore.Store) (*T, error) {
	if b.ref == nil {
		v := b.value
		return &v, nil
	}
	if _, err := b.Resolve(s); err != nil {
		return nil, err
	}
	v, err := s.FieldMut(b.ref.name)
	if err != nil {
		return nil, b.ref.fail(err)
	}
	p, err := datastore.DowncastMut[T](v)
	if err != nil {
		return nil, b.ref.fail(err)
	}
	return p, nil
}

func (b Binding[T]) String() string {
	if b.ref != nil {
		return b.ref.String()
	}
	return fmt.Sprint(b.value)
}
