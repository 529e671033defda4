package datastore

import "fmt"

// Store is the interface bindings resolve against. Field returns a value for
// reading; FieldMut returns the value the caller may write through.
type Store interface {
	Field(name string) (Value, error)
	FieldMut(name string) (Value, error)
}

// Map is an in-memory Store keyed by field name. Names keep insertion order.
// A Map is not safe for concurrent use; the UI and the host touch it from one
// goroutine per frame.
type Map struct {
	names  []string
	fields map[string]Value
}

// NewMap returns an empty store.
func NewMap() *Map {
	return &Map{fields: map[string]Value{}}
}

// Set stores v under name. Replacing a field keeps its position.
func (m *Map) Set(name string, v Value) *Map {
	if m.fields == nil {
		m.fields = map[string]Value{}
	}
	if _, ok := m.fields[name]; !ok {
		m.names = append(m.names, name)
	}
	m.fields[name] = v
	return m
}

// Delete removes name from the store.
func (m *Map) Delete(name string) {
	if _, ok := m.fields[name]; !ok {
		return
	}
	delete(m.fields, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
}

// Names returns the field names in insertion order.
func (m *Map) Names() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Has reports whether name is stored.
func (m *Map) Has(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.fields[name]
	return ok
}

// Field returns the value stored under name. A nil *Map is an empty store.
func (m *Map) Field(name string) (Value, error) {
	var v Value
	ok := false
	if m != nil {
		v, ok = m.fields[name]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return v, nil
}

// FieldMut returns the stored value itself; writes through DowncastMut are
// visible to later reads.
func (m *Map) FieldMut(name string) (Value, error) { return m.Field(name) }

// Trigger returns the trigger stored under name, if any.
func (m *Map) Trigger(name string) (*Trigger, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.fields[name]
	if !ok {
		return nil, false
	}
	t, ok := v.(*Trigger)
	return t, ok
}

// plain converts v into the JSON/YAML-friendly representation written by
// MarshalJSON and MarshalYAML.
func plain(v Value) any {
	switch t := v.(type) {
	case *Bool:
		return t.V
	case *Number:
		return t.V
	case *String:
		return t.V
	case *Trigger:
		return map[string]uint32{triggerKey: t.count}
	case *List:
		out := make([]any, len(t.Items))
		for i, it := range t.Items {
			out[i] = plain(it)
		}
		return out
	}
	return nil
}

// triggerKey marks a nested object as a trigger in JSON and YAML input.
const triggerKey = "trigger"
