package model

import (
	"github.com/reoring/uiconf/binding"
	"github.com/reoring/uiconf/reader"
)

// variant builds one entry of a tag table, wrapping the decoded value into
// the property family I.
func variant[I, V any](tag string, dec reader.Decoder[V], wrap func(V) I) reader.Named[reader.Decoder[I]] {
	return reader.Named[reader.Decoder[I]]{Name: tag, Value: func(r reader.Reader) (I, error) {
		v, err := dec(r)
		if err != nil {
			var zero I
			return zero, err
		}
		return wrap(v), nil
	}}
}

var readBoolBinding = binding.Read[bool](reader.Bool)

//
// WindowProperty
//

// WindowProperty is a closed set of window settings.
type WindowProperty interface{ windowProperty() }

type (
	WindowAnchor       Anchor
	WindowTitleBar     bool
	WindowDefaultSize  Vec2
	WindowMinSize      Vec2
	WindowMaxSize      Vec2
	WindowFixedSize    Vec2
	WindowAutoSized    struct{}
	WindowResizable    bool
	WindowEnabled      bool
	WindowInteractable bool
	WindowMovable      bool
	WindowCollapsible  bool
)

func (WindowAnchor) windowProperty()       {}
func (WindowTitleBar) windowProperty()     {}
func (WindowDefaultSize) windowProperty()  {}
func (WindowMinSize) windowProperty()      {}
func (WindowMaxSize) windowProperty()      {}
func (WindowFixedSize) windowProperty()    {}
func (WindowAutoSized) windowProperty()    {}
func (WindowResizable) windowProperty()    {}
func (WindowEnabled) windowProperty()      {}
func (WindowInteractable) windowProperty() {}
func (WindowMovable) windowProperty()      {}
func (WindowCollapsible) windowProperty()  {}

func readEmpty(r reader.Reader) (struct{}, error) { return struct{}{}, reader.Empty(r) }

var windowProps = reader.NewVariants(
	variant("anchor", ReadAnchor, func(v Anchor) WindowProperty { return WindowAnchor(v) }),
	variant("title_bar", reader.Bool, func(v bool) WindowProperty { return WindowTitleBar(v) }),
	variant("default_size", ReadSize(SizeAnyDisallowed), func(v Vec2) WindowProperty { return WindowDefaultSize(v) }),
	variant("min_size", ReadSize(SizeAnyIsZero), func(v Vec2) WindowProperty { return WindowMinSize(v) }),
	variant("max_size", ReadSize(SizeAnyIsInf), func(v Vec2) WindowProperty { return WindowMaxSize(v) }),
	variant("fixed_size", ReadSize(SizeAnyDisallowed), func(v Vec2) WindowProperty { return WindowFixedSize(v) }),
	variant("auto_sized", readEmpty, func(struct{}) WindowProperty { return WindowAutoSized{} }),
	variant("resizable", reader.Bool, func(v bool) WindowProperty { return WindowResizable(v) }),
	variant("enabled", reader.Bool, func(v bool) WindowProperty { return WindowEnabled(v) }),
	variant("interactable", reader.Bool, func(v bool) WindowProperty { return WindowInteractable(v) }),
	variant("movable", reader.Bool, func(v bool) WindowProperty { return WindowMovable(v) }),
	variant("collapsible", reader.Bool, func(v bool) WindowProperty { return WindowCollapsible(v) }),
)

//
// ButtonProperty
//

type ButtonProperty interface{ buttonProperty() }

type (
	ButtonShortcutText RichText
	ButtonWrap         bool
	ButtonFill         Color
	ButtonStroke       Stroke
	ButtonSense        Sense
	ButtonFrame        bool
	ButtonMinSize      Vec2
	ButtonRounding     Rounding
	ButtonSelected     binding.Binding[bool]
)

func (ButtonShortcutText) buttonProperty() {}
func (ButtonWrap) buttonProperty()         {}
func (ButtonFill) buttonProperty()         {}
func (ButtonStroke) buttonProperty()       {}
func (ButtonSense) buttonProperty()        {}
func (ButtonFrame) buttonProperty()        {}
func (ButtonMinSize) buttonProperty()      {}
func (ButtonRounding) buttonProperty()     {}
func (ButtonSelected) buttonProperty()     {}

var buttonProps = reader.NewVariants(
	variant("shortcut_text", ReadRichText, func(v RichText) ButtonProperty { return ButtonShortcutText(v) }),
	variant("wrap", reader.Bool, func(v bool) ButtonProperty { return ButtonWrap(v) }),
	variant("fill", ReadColor, func(v Color) ButtonProperty { return ButtonFill(v) }),
	variant("stroke", ReadStroke, func(v Stroke) ButtonProperty { return ButtonStroke(v) }),
	variant("sense", ReadSense, func(v Sense) ButtonProperty { return ButtonSense(v) }),
	variant("frame", reader.Bool, func(v bool) ButtonProperty { return ButtonFrame(v) }),
	variant("min_size", ReadSize(SizeAnyIsZero), func(v Vec2) ButtonProperty { return ButtonMinSize(v) }),
	variant("rounding", ReadRounding, func(v Rounding) ButtonProperty { return ButtonRounding(v) }),
	variant("selected", readBoolBinding, func(v binding.Binding[bool]) ButtonProperty { return ButtonSelected(v) }),
)

//
// LabelProperty
//

type LabelProperty interface{ labelProperty() }

type (
	LabelWrap       bool
	LabelTruncate   bool
	LabelSelectable bool
	LabelSense      Sense
)

func (LabelWrap) labelProperty()       {}
func (LabelTruncate) labelProperty()   {}
func (LabelSelectable) labelProperty() {}
func (LabelSense) labelProperty()      {}

var labelProps = reader.NewVariants(
	variant("wrap", reader.Bool, func(v bool) LabelProperty { return LabelWrap(v) }),
	variant("truncate", reader.Bool, func(v bool) LabelProperty { return LabelTruncate(v) }),
	variant("selectable", reader.Bool, func(v bool) LabelProperty { return LabelSelectable(v) }),
	variant("sense", ReadSense, func(v Sense) LabelProperty { return LabelSense(v) }),
)

//
// SeparatorProperty
//

type SeparatorProperty interface{ separatorProperty() }

type (
	SeparatorSpacing float32
	SeparatorGrow    float32
	SeparatorShrink  float32
)

func (SeparatorSpacing) separatorProperty() {}
func (SeparatorGrow) separatorProperty()    {}
func (SeparatorShrink) separatorProperty()  {}

var separatorProps = reader.NewVariants(
	variant("spacing", reader.Float32, func(v float32) SeparatorProperty { return SeparatorSpacing(v) }),
	variant("grow", reader.Float32, func(v float32) SeparatorProperty { return SeparatorGrow(v) }),
	variant("shrink", reader.Float32, func(v float32) SeparatorProperty { return SeparatorShrink(v) }),
)

//
// LayoutProperty
//

// Direction is the main axis of a layout.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
	TopDown
	BottomUp
)

var directions = reader.NewEnum(
	reader.Named[Direction]{Name: "left_to_right", Value: LeftToRight},
	reader.Named[Direction]{Name: "right_to_left", Value: RightToLeft},
	reader.Named[Direction]{Name: "top_down", Value: TopDown},
	reader.Named[Direction]{Name: "bottom_up", Value: BottomUp},
)

func (d Direction) String() string { return directions.Name(d) }

type LayoutProperty interface{ layoutProperty() }

type (
	LayoutDirection    Direction
	LayoutMainWrap     bool
	LayoutMainAlign    Align
	LayoutMainJustify  bool
	LayoutCrossAlign   Align
	LayoutCrossJustify bool
)

func (LayoutDirection) layoutProperty()    {}
func (LayoutMainWrap) layoutProperty()     {}
func (LayoutMainAlign) layoutProperty()    {}
func (LayoutMainJustify) layoutProperty()  {}
func (LayoutCrossAlign) layoutProperty()   {}
func (LayoutCrossJustify) layoutProperty() {}

var layoutProps = reader.NewVariants(
	variant("direction", directions.Read, func(v Direction) LayoutProperty { return LayoutDirection(v) }),
	variant("main_wrap", reader.Bool, func(v bool) LayoutProperty { return LayoutMainWrap(v) }),
	variant("main_align", aligns.Read, func(v Align) LayoutProperty { return LayoutMainAlign(v) }),
	variant("main_justify", reader.Bool, func(v bool) LayoutProperty { return LayoutMainJustify(v) }),
	variant("cross_align", aligns.Read, func(v Align) LayoutProperty { return LayoutCrossAlign(v) }),
	variant("cross_justify", reader.Bool, func(v bool) LayoutProperty { return LayoutCrossJustify(v) }),
)

//
// Response
//

// Event is an interaction reported by a widget.
type Event int

const (
	Clicked Event = iota
	SecondaryClicked
	MiddleClicked
	DoubleClicked
	TripleClicked
	ClickedElsewhere
	Hovered
	Highlighted
	Changed
)

var events = []reader.Named[Event]{
	{Name: "clicked", Value: Clicked},
	{Name: "secondary_clicked", Value: SecondaryClicked},
	{Name: "middle_clicked", Value: MiddleClicked},
	{Name: "double_clicked", Value: DoubleClicked},
	{Name: "triple_clicked", Value: TripleClicked},
	{Name: "clicked_elsewhere", Value: ClickedElsewhere},
	{Name: "hovered", Value: Hovered},
	{Name: "highlighted", Value: Highlighted},
	{Name: "changed", Value: Changed},
}

var eventNames = reader.NewEnum(events...)

func (e Event) String() string { return eventNames.Name(e) }

// ResponseProperty is one of ResponseEvent, ResponseOnHover,
// ResponseOnDisabledHover, ResponseOnHoverAtPointer or ResponseHighlight.
type ResponseProperty interface{ responseProperty() }

// ResponseEvent fires the referenced trigger when Event happens.
type ResponseEvent struct {
	Event   Event
	Trigger *binding.Ref
}

type (
	ResponseOnHover          RichText
	ResponseOnDisabledHover  RichText
	ResponseOnHoverAtPointer RichText
	ResponseHighlight        binding.Binding[bool]
)

func (ResponseEvent) responseProperty()            {}
func (ResponseOnHover) responseProperty()          {}
func (ResponseOnDisabledHover) responseProperty()  {}
func (ResponseOnHoverAtPointer) responseProperty() {}
func (ResponseHighlight) responseProperty()        {}

// Response lists how a widget reacts to interaction.
type Response []ResponseProperty

var responseProps = reader.NewVariants(responseVariants()...)

func responseVariants() []reader.Named[reader.Decoder[ResponseProperty]] {
	out := make([]reader.Named[reader.Decoder[ResponseProperty]], 0, len(events)+4)
	for _, e := range events {
		out = append(out, variant(e.Name, binding.ReadRef, func(ref *binding.Ref) ResponseProperty {
			return ResponseEvent{Event: e.Value, Trigger: ref}
		}))
	}
	return append(out,
		variant("on_hover", ReadRichText, func(v RichText) ResponseProperty { return ResponseOnHover(v) }),
		variant("on_disabled_hover", ReadRichText, func(v RichText) ResponseProperty { return ResponseOnDisabledHover(v) }),
		variant("on_hover_at_pointer", ReadRichText, func(v RichText) ResponseProperty { return ResponseOnHoverAtPointer(v) }),
		variant("highlight", readBoolBinding, func(v binding.Binding[bool]) ResponseProperty { return ResponseHighlight(v) }),
	)
}

// readField appends the response property named key, reporting whether key
// belongs to the response set.
func (rs *Response) readField(key string, v reader.Reader) (bool, error) {
	if !responseProps.Has(key) {
		return false, nil
	}
	p, err := responseProps.Decode(key, v)
	if err != nil {
		return true, err
	}
	*rs = append(*rs, p)
	return true, nil
}

func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (e Event) MarshalText() ([]byte, error) { return []byte(e.String()), nil }
