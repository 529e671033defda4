// Package datastore provides the named-field store that bindings resolve
// against. Fields hold one of a closed set of values (Bool, Number, String,
// Trigger, List) and are checked against the requested type at run time.
package datastore

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a store has no field with the requested name.
var ErrNotFound = errors.New("datastore: field not found")

// TypeError reports a run-time type mismatch between a field and the type a
// caller asked for.
type TypeError struct {
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, found %s", e.Expected, e.Actual)
}

// Value is a field of a store. The set of implementations is closed.
type Value interface {
	TypeName() string
	// addr returns a pointer to the payload used for downcasting.
	addr() any
}

type Bool struct{ V bool }

func (*Bool) TypeName() string { return "bool" }
func (b *Bool) addr() any      { return &b.V }

type Number struct{ V float64 }

func (*Number) TypeName() string { return "number" }
func (n *Number) addr() any      { return &n.V }

type String struct{ V string }

func (*String) TypeName() string { return "string" }
func (s *String) addr() any      { return &s.V }

// Trigger counts events fired by the UI until the host consumes them.
type Trigger struct{ count uint32 }

func (*Trigger) TypeName() string { return "trigger" }
func (t *Trigger) addr() any      { return t }

// NewTrigger returns a trigger that has already fired n times.
func NewTrigger(n uint32) *Trigger { return &Trigger{count: n} }

// Fire records one event.
func (t *Trigger) Fire() { t.count++ }

// Count returns the number of events since the last reset.
func (t *Trigger) Count() uint32 { return t.count }

// CheckReset reports whether the trigger fired and resets it.
func (t *Trigger) CheckReset() bool {
	fired := t.count > 0
	t.count = 0
	return fired
}

// List is an ordered, dynamically sized sequence of values.
type List struct{ Items []Value }

func (*List) TypeName() string { return "list" }
func (l *List) addr() any      { return l }

// Len returns the number of items.
func (l *List) Len() int { return len(l.Items) }

// Append adds values at the end of the list.
func (l *List) Append(v ...Value) { l.Items = append(l.Items, v...) }

// TypeNameOf returns the store type name used for T in mismatch reports.
func TypeNameOf[T any]() string {
	var zero T
	switch any(zero).(type) {
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case Trigger:
		return "trigger"
	case List:
		return "list"
	}
	return fmt.Sprintf("%T", zero)
}

// Downcast returns a copy of the payload of v when it holds a T.
func Downcast[T any](v Value) (T, error) {
	p, err := DowncastMut[T](v)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// DowncastMut returns a pointer to the payload of v when it holds a T.
// Writes through the pointer update the store.
func DowncastMut[T any](v Value) (*T, error) {
	if v == nil {
		return nil, &TypeError{Expected: TypeNameOf[T](), Actual: "nil"}
	}
	p, ok := v.addr().(*T)
	if !ok {
		return nil, &TypeError{Expected: TypeNameOf[T](), Actual: v.TypeName()}
	}
	return p, nil
}
