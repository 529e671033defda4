package model

import (
	"slices"

	"github.com/reoring/uiconf/binding"
	"github.com/reoring/uiconf/reader"
)

// ID identifies a named widget.
type ID uint64

// Name is a widget name and, once assigned, its identifier.
type Name struct {
	Text string
	ID   ID
	// Valid is false when the name could not be parsed into an ID; the
	// widget is then not addressable.
	Valid bool
}

// Widget is one of *Button, *Label, *Separator or *Layout.
type Widget interface {
	Base() *Common
	Kind() string
}

// Common holds the fields every widget accepts.
type Common struct {
	Name    *Name
	Visible binding.Binding[bool]
}

func newCommon() Common { return Common{Visible: binding.Value(true)} }

func (c *Common) Base() *Common { return c }

var commonFields = []string{"name", "visible"}

func (c *Common) readField(key string, v reader.Reader) (bool, error) {
	var err error
	switch key {
	case "name":
		var s string
		if s, err = reader.String(v); err == nil {
			c.Name = &Name{Text: s}
		}
	case "visible":
		c.Visible, err = readBoolBinding(v)
	default:
		return false, nil
	}
	return true, err
}

//
// Button
//

type Button struct {
	Common
	Text     RichText
	Small    bool
	Props    []ButtonProperty
	Response Response
}

func (*Button) Kind() string { return "button" }

var buttonFields = reader.Concat(commonFields, []string{"text", "small"}, buttonProps.Tags(), responseProps.Tags())

// ReadButton decodes `"text"` or `{ text = .. <properties> <response> }`.
func ReadButton(r reader.Reader) (*Button, error) {
	b := &Button{Common: newCommon()}
	if r.IsScalar() {
		t, err := readText(r)
		b.Text = RichText{Text: t}
		return b, err
	}
	seq, err := r.ReadObject()
	if err != nil {
		return nil, err
	}
	seen := reader.Unique{}
	for key, v := range seq {
		if err := seen.Mark(v, key); err != nil {
			return nil, err
		}
		var err error
		switch {
		case key == "text":
			b.Text, err = ReadRichText(v)
		case key == "small":
			b.Small, err = reader.Bool(v)
		case buttonProps.Has(key):
			var p ButtonProperty
			if p, err = buttonProps.Decode(key, v); err == nil {
				b.Props = append(b.Props, p)
			}
		default:
			err = readCommonOrResponse(&b.Common, &b.Response, key, v, buttonFields)
		}
		if err != nil {
			return nil, err
		}
	}
	if _, ok := seen["text"]; !ok {
		return nil, reader.MissingField(r, "text")
	}
	return b, nil
}

func readCommonOrResponse(c *Common, rs *Response, key string, v reader.Reader, accepted []string) error {
	if ok, err := c.readField(key, v); ok {
		return err
	}
	if ok, err := rs.readField(key, v); ok {
		return err
	}
	return reader.UnknownField(v, key, accepted)
}

//
// Label
//

type Label struct {
	Common
	Text     RichText
	Props    []LabelProperty
	Response Response
}

func (*Label) Kind() string { return "label" }

var labelFields = reader.Concat(commonFields, []string{"text"}, labelProps.Tags(), responseProps.Tags())

// ReadLabel decodes `"text"` or `{ text = .. <properties> <response> }`.
func ReadLabel(r reader.Reader) (*Label, error) {
	l := &Label{Common: newCommon()}
	if r.IsScalar() {
		t, err := readText(r)
		l.Text = RichText{Text: t}
		return l, err
	}
	seq, err := r.ReadObject()
	if err != nil {
		return nil, err
	}
	seen := reader.Unique{}
	for key, v := range seq {
		if err := seen.Mark(v, key); err != nil {
			return nil, err
		}
		var err error
		switch {
		case key == "text":
			l.Text, err = ReadRichText(v)
		case labelProps.Has(key):
			var p LabelProperty
			if p, err = labelProps.Decode(key, v); err == nil {
				l.Props = append(l.Props, p)
			}
		default:
			err = readCommonOrResponse(&l.Common, &l.Response, key, v, labelFields)
		}
		if err != nil {
			return nil, err
		}
	}
	if _, ok := seen["text"]; !ok {
		return nil, reader.MissingField(r, "text")
	}
	return l, nil
}

//
// Separator
//

type Separator struct {
	Common
	// Horizontal is nil when the orientation follows the enclosing layout.
	Horizontal *bool
	Props      []SeparatorProperty
	Response   Response
}

func (*Separator) Kind() string { return "separator" }

var separatorFields = reader.Concat(commonFields, []string{"horizontal", "vertical"}, separatorProps.Tags(), responseProps.Tags())

// ReadSeparator decodes `{}` or `{ horizontal|vertical = .. <properties> }`.
func ReadSeparator(r reader.Reader) (*Separator, error) {
	seq, err := r.ReadObject()
	if err != nil {
		return nil, err
	}
	s := &Separator{Common: newCommon()}
	seen := reader.Unique{}
	for key, v := range seq {
		if err := seen.Mark(v, key); err != nil {
			return nil, err
		}
		var err error
		switch {
		case key == "horizontal" || key == "vertical":
			if s.Horizontal != nil {
				return nil, reader.DuplicateField(v, key)
			}
			var on bool
			if on, err = reader.Bool(v); err == nil {
				h := on == (key == "horizontal")
				s.Horizontal = &h
			}
		case separatorProps.Has(key):
			var p SeparatorProperty
			if p, err = separatorProps.Decode(key, v); err == nil {
				s.Props = append(s.Props, p)
			}
		default:
			err = readCommonOrResponse(&s.Common, &s.Response, key, v, separatorFields)
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

//
// Layout
//

// Layout arranges nested content along a direction.
type Layout struct {
	Common
	Props   []LayoutProperty
	Content Content
}

func (*Layout) Kind() string { return "layout" }

// layoutFields is filled in by init once the content table exists.
var layoutFields []string

// ReadLayout decodes `left_to_right` or `{ <properties> <content> }`.
// Properties must precede content.
func ReadLayout(r reader.Reader) (*Layout, error) {
	l := &Layout{Common: newCommon()}
	if r.IsScalar() {
		d, err := directions.Read(r)
		if err != nil {
			return nil, err
		}
		l.Props = []LayoutProperty{LayoutDirection(d)}
		return l, nil
	}
	seq, err := r.ReadObject()
	if err != nil {
		return nil, err
	}
	seen := reader.Unique{}
	order := reader.NewOrder("layout properties")
	for key, v := range seq {
		if contentVariants.Has(key) {
			order.Body(key)
			w, err := contentVariants.Decode(key, v)
			if err != nil {
				return nil, err
			}
			l.Content = append(l.Content, w)
			continue
		}
		if !layoutProps.Has(key) && !slices.Contains(commonFields, key) {
			return nil, reader.UnknownField(v, key, layoutFields)
		}
		if err := order.Header(v, key); err != nil {
			return nil, err
		}
		if err := seen.Mark(v, key); err != nil {
			return nil, err
		}
		if !layoutProps.Has(key) {
			if _, err := l.readField(key, v); err != nil {
				return nil, err
			}
			continue
		}
		p, err := layoutProps.Decode(key, v)
		if err != nil {
			return nil, err
		}
		l.Props = append(l.Props, p)
	}
	return l, nil
}
