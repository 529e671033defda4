package model

import (
	"math"

	json "github.com/goccy/go-json"

	"github.com/reoring/uiconf/reader"
)

// Vec2 is a pair of float32 components.
type Vec2 struct{ X, Y float32 }

// Align places content at the start, middle or end of an axis.
type Align int

const (
	AlignMin Align = iota
	AlignCenter
	AlignMax
)

var aligns = reader.NewEnum(
	reader.Named[Align]{Name: "min", Value: AlignMin},
	reader.Named[Align]{Name: "center", Value: AlignCenter},
	reader.Named[Align]{Name: "max", Value: AlignMax},
)

func (a Align) String() string { return aligns.Name(a) }

// Align2 holds the horizontal and vertical alignment.
type Align2 [2]Align

//
// Anchor
//

type Anchor struct {
	Align  Align2
	Offset Vec2
}

type alignment int

const (
	alignCenter alignment = iota
	alignLeft
	alignRight
	alignTop
	alignBottom
)

var alignments = reader.NewEnum(
	reader.Named[alignment]{Name: "center", Value: alignCenter},
	reader.Named[alignment]{Name: "left", Value: alignLeft},
	reader.Named[alignment]{Name: "right", Value: alignRight},
	reader.Named[alignment]{Name: "top", Value: alignTop},
	reader.Named[alignment]{Name: "bottom", Value: alignBottom},
)

func (a alignment) horizontal() bool {
	return a == alignCenter || a == alignLeft || a == alignRight
}

func (a alignment) vertical() bool {
	return a == alignCenter || a == alignTop || a == alignBottom
}

// ReadAnchor decodes `{ align valign [x y] }`. The two alignments may come in
// either order as long as one is horizontal and the other vertical.
func ReadAnchor(r reader.Reader) (Anchor, error) {
	items, err := reader.Items(r)
	if err != nil {
		return Anchor{}, err
	}
	if len(items) != 2 && len(items) != 4 {
		return Anchor{}, reader.InvalidLength(r, len(items), "{ align valign x y }")
	}
	x, err := alignments.Read(items[0])
	if err != nil {
		return Anchor{}, err
	}
	y, err := alignments.Read(items[1])
	if err != nil {
		return Anchor{}, err
	}
	switch {
	case x.horizontal() && y.vertical():
	case x.vertical() && y.horizontal():
		x, y = y, x
	default:
		return Anchor{}, reader.Custom(r, "invalid alignment: `%s %s`", alignments.Name(x), alignments.Name(y))
	}

	var a Anchor
	switch x {
	case alignLeft:
		a.Align[0] = AlignMin
	case alignCenter:
		a.Align[0] = AlignCenter
	case alignRight:
		a.Align[0] = AlignMax
	}
	switch y {
	case alignTop:
		a.Align[1] = AlignMin
	case alignCenter:
		a.Align[1] = AlignCenter
	case alignBottom:
		a.Align[1] = AlignMax
	}
	if len(items) == 4 {
		if a.Offset.X, err = reader.Float32(items[2]); err != nil {
			return Anchor{}, err
		}
		if a.Offset.Y, err = reader.Float32(items[3]); err != nil {
			return Anchor{}, err
		}
	}
	return a, nil
}

//
// Color
//

// Color is an sRGBA color with premultiplied alpha.
type Color struct{ R, G, B, A uint8 }

func rgb(r, g, b uint8) Color { return Color{r, g, b, 255} }

var colorNames = reader.NewEnum(
	reader.Named[Color]{Name: "transparent", Value: Color{}},
	reader.Named[Color]{Name: "black", Value: rgb(0, 0, 0)},
	reader.Named[Color]{Name: "dark_gray", Value: rgb(96, 96, 96)},
	reader.Named[Color]{Name: "gray", Value: rgb(160, 160, 160)},
	reader.Named[Color]{Name: "light_gray", Value: rgb(220, 220, 220)},
	reader.Named[Color]{Name: "white", Value: rgb(255, 255, 255)},
	reader.Named[Color]{Name: "brown", Value: rgb(165, 42, 42)},
	reader.Named[Color]{Name: "dark_red", Value: rgb(0x8B, 0, 0)},
	reader.Named[Color]{Name: "red", Value: rgb(255, 0, 0)},
	reader.Named[Color]{Name: "light_red", Value: rgb(255, 128, 128)},
	reader.Named[Color]{Name: "yellow", Value: rgb(255, 255, 0)},
	reader.Named[Color]{Name: "light_yellow", Value: rgb(255, 255, 0xE0)},
	reader.Named[Color]{Name: "khaki", Value: rgb(240, 230, 140)},
	reader.Named[Color]{Name: "dark_green", Value: rgb(0, 0x64, 0)},
	reader.Named[Color]{Name: "green", Value: rgb(0, 255, 0)},
	reader.Named[Color]{Name: "light_green", Value: rgb(0x90, 0xEE, 0x90)},
	reader.Named[Color]{Name: "dark_blue", Value: rgb(0, 0, 0x8B)},
	reader.Named[Color]{Name: "blue", Value: rgb(0, 0, 255)},
	reader.Named[Color]{Name: "light_blue", Value: rgb(0xAD, 0xD8, 0xE6)},
	reader.Named[Color]{Name: "gold", Value: rgb(255, 215, 0)},
	reader.Named[Color]{Name: "debug_color", Value: Color{0, 200, 0, 128}},
	reader.Named[Color]{Name: "temporary_color", Value: rgb(64, 80, 110)},
)

// ColorNames lists the accepted color names.
func ColorNames() []string { return colorNames.Names() }

// ReadColor decodes a color name or `{ r g b [a] }`.
func ReadColor(r reader.Reader) (Color, error) {
	if r.IsScalar() {
		return colorNames.Read(r)
	}
	items, err := reader.Items(r)
	if err != nil {
		return Color{}, err
	}
	if len(items) != 3 && len(items) != 4 {
		return Color{}, reader.InvalidLength(r, len(items), "{ r g b } or { r g b a }")
	}
	var c [4]uint8
	c[3] = 255
	for i, it := range items {
		if c[i], err = reader.Uint[uint8](it); err != nil {
			return Color{}, err
		}
	}
	return Color{c[0], c[1], c[2], c[3]}, nil
}

//
// Stroke
//

type Stroke struct {
	Width float32
	Color Color
}

var strokeFields = []string{"width", "color"}

// ReadStroke decodes `none`, `{ width color }` or `{ width = .. color = .. }`.
func ReadStroke(r reader.Reader) (Stroke, error) {
	if r.IsScalar() {
		s, _ := r.ReadString()
		if s == "none" {
			return Stroke{}, nil
		}
		return Stroke{}, reader.InvalidValue(r, s, "{ width color } or none")
	}
	if r.IsObject() {
		return readStrokeFields(r)
	}
	items, err := reader.Items(r)
	if err != nil {
		return Stroke{}, err
	}
	if len(items) != 2 {
		return Stroke{}, reader.InvalidLength(r, len(items), "{ width color }")
	}
	var s Stroke
	if s.Width, err = reader.Float32(items[0]); err != nil {
		return Stroke{}, err
	}
	if s.Color, err = ReadColor(items[1]); err != nil {
		return Stroke{}, err
	}
	return s, nil
}

func readStrokeFields(r reader.Reader) (Stroke, error) {
	seq, err := r.ReadObject()
	if err != nil {
		return Stroke{}, err
	}
	var s Stroke
	seen := reader.Unique{}
	for key, v := range seq {
		switch key {
		case "width":
			if err := seen.Mark(v, key); err != nil {
				return Stroke{}, err
			}
			if s.Width, err = reader.Float32(v); err != nil {
				return Stroke{}, err
			}
		case "color":
			if err := seen.Mark(v, key); err != nil {
				return Stroke{}, err
			}
			if s.Color, err = ReadColor(v); err != nil {
				return Stroke{}, err
			}
		default:
			return Stroke{}, reader.UnknownField(v, key, strokeFields)
		}
	}
	for _, f := range strokeFields {
		if _, ok := seen[f]; !ok {
			return Stroke{}, reader.MissingField(r, f)
		}
	}
	return s, nil
}

//
// Rounding
//

// Rounding holds corner radii.
type Rounding struct{ NW, NE, SE, SW float32 }

func sameRounding(v float32) Rounding { return Rounding{v, v, v, v} }

// ReadRounding decodes `none`, a single radius, or one to four radii in CSS
// corner order (top-left, top-right, bottom-right, bottom-left).
func ReadRounding(r reader.Reader) (Rounding, error) {
	if r.IsScalar() {
		s, _ := r.ReadScalar()
		if s.String() == "none" {
			return Rounding{}, nil
		}
		v, ok := s.Float64()
		if !ok {
			return Rounding{}, reader.InvalidValue(r, s.String(), "none, number, or { top-left top-right bottom-right bottom-left }")
		}
		return sameRounding(float32(v)), nil
	}
	radii, err := reader.Slice[float32](reader.Float32)(r)
	if err != nil {
		return Rounding{}, err
	}
	if len(radii) == 0 || len(radii) > 4 {
		return Rounding{}, reader.InvalidLength(r, len(radii), "1 to 4 radii")
	}
	out := sameRounding(radii[0])
	if len(radii) > 1 {
		out.NE = radii[1]
		out.SW = radii[1]
	}
	if len(radii) > 2 {
		out.SE = radii[2]
	}
	if len(radii) > 3 {
		out.SW = radii[3]
	}
	return out, nil
}

//
// Sense
//

// Sense selects which interactions a widget reacts to.
type Sense struct {
	Click     bool
	Drag      bool
	Focusable bool
}

var senseKinds = reader.NewEnum(
	reader.Named[Sense]{Name: "hover", Value: Sense{}},
	reader.Named[Sense]{Name: "focusable_noninteractive", Value: Sense{Focusable: true}},
	reader.Named[Sense]{Name: "click", Value: Sense{Click: true, Focusable: true}},
	reader.Named[Sense]{Name: "drag", Value: Sense{Drag: true, Focusable: true}},
	reader.Named[Sense]{Name: "click_and_drag", Value: Sense{Click: true, Drag: true, Focusable: true}},
)

type senseFlag int

const (
	senseClick senseFlag = iota
	senseDrag
	senseFocusable
)

var senseFlags = reader.NewEnum(
	reader.Named[senseFlag]{Name: "click", Value: senseClick},
	reader.Named[senseFlag]{Name: "drag", Value: senseDrag},
	reader.Named[senseFlag]{Name: "focusable", Value: senseFocusable},
)

// ReadSense decodes a sense kind or a flag list such as `{ click drag }`.
func ReadSense(r reader.Reader) (Sense, error) {
	if r.IsScalar() {
		return senseKinds.Read(r)
	}
	flags, err := reader.Slice[senseFlag](senseFlags.Read)(r)
	if err != nil {
		return Sense{}, err
	}
	var s Sense
	for _, f := range flags {
		switch f {
		case senseClick:
			s.Click = true
		case senseDrag:
			s.Drag = true
		case senseFocusable:
			s.Focusable = true
		}
	}
	return s, nil
}

//
// Size
//

// SizeMode selects how a size component spelled `any` is treated.
type SizeMode int

const (
	SizeAnyDisallowed SizeMode = iota
	SizeAnyIsZero
	SizeAnyIsInf
)

// ReadSize returns a decoder for `{ x y }` under mode.
func ReadSize(mode SizeMode) reader.Decoder[Vec2] {
	return func(r reader.Reader) (Vec2, error) {
		items, err := reader.Items(r)
		if err != nil {
			return Vec2{}, err
		}
		if len(items) != 2 {
			return Vec2{}, reader.InvalidLength(r, len(items), "{ x y }")
		}
		var c [2]float32
		for i, it := range items {
			if c[i], err = sizeComponent(it, mode); err != nil {
				return Vec2{}, err
			}
		}
		return Vec2{c[0], c[1]}, nil
	}
}

func sizeComponent(r reader.Reader, mode SizeMode) (float32, error) {
	if mode == SizeAnyDisallowed || !r.IsScalar() {
		return reader.Float32(r)
	}
	s, _ := r.ReadString()
	if s == "any" {
		if mode == SizeAnyIsZero {
			return 0, nil
		}
		return float32(math.Inf(1)), nil
	}
	v, err := reader.Float32(r)
	if err != nil {
		return 0, reader.InvalidValue(r, s, "number or `any`")
	}
	return v, nil
}

// MarshalText writes the alignment name.
func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// MarshalJSON writes `[x, y]`; unbounded components are written as "inf".
func (v Vec2) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{jsonFloat(v.X), jsonFloat(v.Y)})
}

func jsonFloat(f float32) any {
	if math.IsInf(float64(f), 1) {
		return "inf"
	}
	return f
}
