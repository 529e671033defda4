package model

import (
	"github.com/reoring/uiconf/binding"
	"github.com/reoring/uiconf/reader"
)

// RichText is text plus optional styling. The text itself may be bound.
type RichText struct {
	Text  binding.Binding[string]
	Props []RichTextProperty
}

// PlainText returns a RichText without properties.
func PlainText(s string) RichText { return RichText{Text: binding.Value(s)} }

// RichTextProperty is one of RichTextSize, RichTextStyles, RichTextColor,
// RichTextBackgroundColor, RichTextLineHeight or RichTextExtraLetterSpacing.
type RichTextProperty interface{ richTextProperty() }

type (
	RichTextSize               float32
	RichTextStyles             binding.List[TextStyle]
	RichTextColor              Color
	RichTextBackgroundColor    Color
	RichTextLineHeight         float32
	RichTextExtraLetterSpacing float32
)

func (RichTextSize) richTextProperty()               {}
func (RichTextStyles) richTextProperty()             {}
func (RichTextColor) richTextProperty()              {}
func (RichTextBackgroundColor) richTextProperty()    {}
func (RichTextLineHeight) richTextProperty()         {}
func (RichTextExtraLetterSpacing) richTextProperty() {}

// TextStyle is a named text style or decoration.
type TextStyle int

const (
	TextSmall TextStyle = iota
	TextBody
	TextMonospace
	TextButton
	TextHeading
	TextCode
	TextStrong
	TextWeak
	TextStrikethrough
	TextUnderline
	TextItalics
	TextRaised
)

var textStyles = reader.NewEnum(
	reader.Named[TextStyle]{Name: "small", Value: TextSmall},
	reader.Named[TextStyle]{Name: "body", Value: TextBody},
	reader.Named[TextStyle]{Name: "monospace", Value: TextMonospace},
	reader.Named[TextStyle]{Name: "button", Value: TextButton},
	reader.Named[TextStyle]{Name: "heading", Value: TextHeading},
	reader.Named[TextStyle]{Name: "code", Value: TextCode},
	reader.Named[TextStyle]{Name: "strong", Value: TextStrong},
	reader.Named[TextStyle]{Name: "weak", Value: TextWeak},
	reader.Named[TextStyle]{Name: "strikethrough", Value: TextStrikethrough},
	reader.Named[TextStyle]{Name: "underline", Value: TextUnderline},
	reader.Named[TextStyle]{Name: "italics", Value: TextItalics},
	reader.Named[TextStyle]{Name: "raised", Value: TextRaised},
)

func (s TextStyle) String() string { return textStyles.Name(s) }

// ParseTextStyle looks up a style by name.
func ParseTextStyle(name string) (TextStyle, bool) { return textStyles.Lookup(name) }

func readFloat32Prop[P interface {
	~float32
	RichTextProperty
}](r reader.Reader) (RichTextProperty, error) {
	v, err := reader.Float32(r)
	return P(v), err
}

var richTextProps = reader.NewVariants(
	reader.Named[reader.Decoder[RichTextProperty]]{Name: "size", Value: readFloat32Prop[RichTextSize]},
	reader.Named[reader.Decoder[RichTextProperty]]{Name: "style", Value: func(r reader.Reader) (RichTextProperty, error) {
		l, err := binding.ReadList[TextStyle](textStyles.Read)(r)
		return RichTextStyles(l), err
	}},
	reader.Named[reader.Decoder[RichTextProperty]]{Name: "color", Value: func(r reader.Reader) (RichTextProperty, error) {
		c, err := ReadColor(r)
		return RichTextColor(c), err
	}},
	reader.Named[reader.Decoder[RichTextProperty]]{Name: "background_color", Value: func(r reader.Reader) (RichTextProperty, error) {
		c, err := ReadColor(r)
		return RichTextBackgroundColor(c), err
	}},
	reader.Named[reader.Decoder[RichTextProperty]]{Name: "line_height", Value: readFloat32Prop[RichTextLineHeight]},
	reader.Named[reader.Decoder[RichTextProperty]]{Name: "extra_letter_spacing", Value: readFloat32Prop[RichTextExtraLetterSpacing]},
)

var richTextFields = reader.Concat([]string{"text"}, richTextProps.Tags())

var readText = binding.Read[string](reader.String)

// ReadRichText decodes `"text"`, `@name` or `{ text = .. <properties> }`.
func ReadRichText(r reader.Reader) (RichText, error) {
	if r.IsScalar() {
		t, err := readText(r)
		return RichText{Text: t}, err
	}
	seq, err := r.ReadObject()
	if err != nil {
		return RichText{}, err
	}
	var out RichText
	seen := reader.Unique{}
	for key, v := range seq {
		if err := seen.Mark(v, key); err != nil {
			return RichText{}, err
		}
		if key == "text" {
			if out.Text, err = readText(v); err != nil {
				return RichText{}, err
			}
			continue
		}
		if !richTextProps.Has(key) {
			return RichText{}, reader.UnknownField(v, key, richTextFields)
		}
		p, err := richTextProps.Decode(key, v)
		if err != nil {
			return RichText{}, err
		}
		out.Props = append(out.Props, p)
	}
	if _, ok := seen["text"]; !ok {
		return RichText{}, reader.MissingField(r, "text")
	}
	return out, nil
}

func (s TextStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
