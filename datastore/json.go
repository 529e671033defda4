package datastore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// FromJSON builds a store from a single JSON object. Booleans, numbers,
// strings and arrays map to Bool, Number, String and List; `{"trigger": n}`
// is a Trigger. Repeated keys and data after the object are errors.
func FromJSON(data []byte) (*Map, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ReadJSON is FromJSON over a stream. Field order follows the input.
func ReadJSON(r io.Reader) (*Map, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	d := jsonDecoder{dec: dec}
	if err := d.expectDelim('{', "object"); err != nil {
		return nil, err
	}
	m := NewMap()
	for dec.More() {
		name, err := d.key()
		if err != nil {
			return nil, err
		}
		if m.Has(name) {
			return nil, fmt.Errorf("datastore: duplicate field %q", name)
		}
		v, err := d.value(name)
		if err != nil {
			return nil, err
		}
		m.Set(name, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("datastore: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("datastore: unexpected trailing data")
	}
	return m, nil
}

type jsonDecoder struct {
	dec *j.Decoder
}

func (d jsonDecoder) expectDelim(want j.Delim, what string) error {
	tok, err := d.dec.Token()
	if err != nil {
		return fmt.Errorf("datastore: %w", err)
	}
	if delim, ok := tok.(j.Delim); !ok || delim != want {
		return fmt.Errorf("datastore: expected %s, found %v", what, tok)
	}
	return nil
}

func (d jsonDecoder) key() (string, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return "", fmt.Errorf("datastore: %w", err)
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("datastore: expected key, found %v", tok)
	}
	return s, nil
}

func (d jsonDecoder) value(field string) (Value, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, fmt.Errorf("datastore: field %q: %w", field, err)
	}
	switch v := tok.(type) {
	case bool:
		return &Bool{V: v}, nil
	case string:
		return &String{V: v}, nil
	case j.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("datastore: field %q: %w", field, err)
		}
		return &Number{V: f}, nil
	case float64:
		return &Number{V: v}, nil
	case j.Delim:
		switch v {
		case '[':
			l := &List{}
			for d.dec.More() {
				item, err := d.value(field)
				if err != nil {
					return nil, err
				}
				l.Append(item)
			}
			if _, err := d.dec.Token(); err != nil {
				return nil, fmt.Errorf("datastore: field %q: %w", field, err)
			}
			return l, nil
		case '{':
			return d.trigger(field)
		}
	case nil:
		return nil, fmt.Errorf("datastore: field %q: null is not a value", field)
	}
	return nil, fmt.Errorf("datastore: field %q: unexpected token %v", field, tok)
}

// trigger reads the body of `{"trigger": n}` after its opening brace.
func (d jsonDecoder) trigger(field string) (Value, error) {
	var t *Trigger
	for d.dec.More() {
		k, err := d.key()
		if err != nil {
			return nil, err
		}
		if k != triggerKey || t != nil {
			return nil, fmt.Errorf("datastore: field %q: nested objects other than {%q: n} are not supported", field, triggerKey)
		}
		tok, err := d.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("datastore: field %q: %w", field, err)
		}
		num, ok := tok.(j.Number)
		if !ok {
			return nil, fmt.Errorf("datastore: field %q: trigger count must be a number", field)
		}
		n, err := strconv.ParseUint(string(num), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("datastore: field %q: trigger count: %w", field, err)
		}
		t = NewTrigger(uint32(n))
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, fmt.Errorf("datastore: field %q: %w", field, err)
	}
	if t == nil {
		return nil, fmt.Errorf("datastore: field %q: missing %q", field, triggerKey)
	}
	return t, nil
}

// MarshalJSON writes the fields in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := j.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := j.Marshal(plain(m.fields[name]))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
