// Package model defines the typed document tree of a window description and
// the decoders that build it from a reader.Reader.
package model

import (
	"github.com/reoring/uiconf/reader"
)

// Content is an ordered list of widgets.
type Content []Widget

// Walk calls fn for every widget depth-first, descending into layouts.
func (c Content) Walk(fn func(Widget)) {
	for _, w := range c {
		fn(w)
		if l, ok := w.(*Layout); ok {
			l.Content.Walk(fn)
		}
	}
}

var contentVariants *reader.Variants[Widget]

var windowFields []string

func init() {
	contentVariants = reader.NewVariants(
		variant("button", ReadButton, func(w *Button) Widget { return w }),
		variant("label", ReadLabel, func(w *Label) Widget { return w }),
		variant("separator", ReadSeparator, func(w *Separator) Widget { return w }),
		variant("layout", ReadLayout, func(w *Layout) Widget { return w }),
	)
	windowFields = reader.Concat([]string{"title"}, windowProps.Tags(), contentVariants.Tags())
	layoutFields = reader.Concat(commonFields, layoutProps.Tags(), contentVariants.Tags())
}

// Root is the top level of a document.
type Root struct {
	Window Window
}

var rootFields = []string{"window"}

// ReadRoot decodes a document holding exactly one window.
func ReadRoot(r reader.Reader) (*Root, error) {
	seq, err := r.ReadObject()
	if err != nil {
		return nil, err
	}
	root := &Root{}
	seen := reader.Unique{}
	for key, v := range seq {
		if key != "window" {
			return nil, reader.UnknownField(v, key, rootFields)
		}
		if err := seen.Mark(v, key); err != nil {
			return nil, err
		}
		if root.Window, err = ReadWindow(v); err != nil {
			return nil, err
		}
	}
	if _, ok := seen["window"]; !ok {
		return nil, reader.MissingField(r, "window")
	}
	return root, nil
}

// Window is a titled window with properties and content.
type Window struct {
	Title   RichText
	Props   []WindowProperty
	Content Content
}

// ReadWindow decodes a window body. The title and window properties must
// precede content; a missing title is empty text.
func ReadWindow(r reader.Reader) (Window, error) {
	seq, err := r.ReadObject()
	if err != nil {
		return Window{}, err
	}
	w := Window{Title: PlainText("")}
	seen := reader.Unique{}
	order := reader.NewOrder("window properties")
	for key, v := range seq {
		switch {
		case contentVariants.Has(key):
			order.Body(key)
			c, err := contentVariants.Decode(key, v)
			if err != nil {
				return Window{}, err
			}
			w.Content = append(w.Content, c)
		case key == "title" || windowProps.Has(key):
			if err := order.Header(v, key); err != nil {
				return Window{}, err
			}
			if err := seen.Mark(v, key); err != nil {
				return Window{}, err
			}
			if key == "title" {
				if w.Title, err = ReadRichText(v); err != nil {
					return Window{}, err
				}
				continue
			}
			p, err := windowProps.Decode(key, v)
			if err != nil {
				return Window{}, err
			}
			w.Props = append(w.Props, p)
		default:
			return Window{}, reader.UnknownField(v, key, windowFields)
		}
	}
	return w, nil
}
