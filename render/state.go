// Package render walks a parsed window once per frame, resolves its bindings
// against a datastore.Store and hands property snapshots to a host UI.
package render

import (
	"github.com/reoring/uiconf/model"
)

// Ident carries the name and identifier of a widget, when it has one.
type Ident struct {
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`
	ID   model.ID `json:"id,omitempty" yaml:"id,omitempty"`
}

// TextState is a RichText with its bindings resolved. Zero numeric fields
// and nil colors mean "unset".
type TextState struct {
	Text               string            `json:"text" yaml:"text"`
	Styles             []model.TextStyle `json:"styles,omitempty" yaml:"styles,omitempty"`
	Size               float32           `json:"size,omitempty" yaml:"size,omitempty"`
	Color              *model.Color      `json:"color,omitempty" yaml:"color,omitempty"`
	BackgroundColor    *model.Color      `json:"background_color,omitempty" yaml:"background_color,omitempty"`
	LineHeight         float32           `json:"line_height,omitempty" yaml:"line_height,omitempty"`
	ExtraLetterSpacing float32           `json:"extra_letter_spacing,omitempty" yaml:"extra_letter_spacing,omitempty"`
}

// HoverState holds the resolved hover texts and highlight flag of a response.
type HoverState struct {
	OnHover          *TextState `json:"on_hover,omitempty" yaml:"on_hover,omitempty"`
	OnDisabledHover  *TextState `json:"on_disabled_hover,omitempty" yaml:"on_disabled_hover,omitempty"`
	OnHoverAtPointer *TextState `json:"on_hover_at_pointer,omitempty" yaml:"on_hover_at_pointer,omitempty"`
	Highlight        bool       `json:"highlight,omitempty" yaml:"highlight,omitempty"`
}

type WindowState struct {
	Title        TextState     `json:"title" yaml:"title"`
	Anchor       *model.Anchor `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	TitleBar     *bool         `json:"title_bar,omitempty" yaml:"title_bar,omitempty"`
	DefaultSize  *model.Vec2   `json:"default_size,omitempty" yaml:"default_size,omitempty"`
	MinSize      *model.Vec2   `json:"min_size,omitempty" yaml:"min_size,omitempty"`
	MaxSize      *model.Vec2   `json:"max_size,omitempty" yaml:"max_size,omitempty"`
	FixedSize    *model.Vec2   `json:"fixed_size,omitempty" yaml:"fixed_size,omitempty"`
	AutoSized    bool          `json:"auto_sized,omitempty" yaml:"auto_sized,omitempty"`
	Resizable    *bool         `json:"resizable,omitempty" yaml:"resizable,omitempty"`
	Enabled      *bool         `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Interactable *bool         `json:"interactable,omitempty" yaml:"interactable,omitempty"`
	Movable      *bool         `json:"movable,omitempty" yaml:"movable,omitempty"`
	Collapsible  *bool         `json:"collapsible,omitempty" yaml:"collapsible,omitempty"`
}

type ButtonState struct {
	Ident        `yaml:",inline"`
	Text         TextState       `json:"text" yaml:"text"`
	Small        bool            `json:"small,omitempty" yaml:"small,omitempty"`
	ShortcutText *TextState      `json:"shortcut_text,omitempty" yaml:"shortcut_text,omitempty"`
	Wrap         *bool           `json:"wrap,omitempty" yaml:"wrap,omitempty"`
	Fill         *model.Color    `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke       *model.Stroke   `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	Sense        *model.Sense    `json:"sense,omitempty" yaml:"sense,omitempty"`
	Frame        *bool           `json:"frame,omitempty" yaml:"frame,omitempty"`
	MinSize      *model.Vec2     `json:"min_size,omitempty" yaml:"min_size,omitempty"`
	Rounding     *model.Rounding `json:"rounding,omitempty" yaml:"rounding,omitempty"`
	Selected     bool            `json:"selected,omitempty" yaml:"selected,omitempty"`
	Hover        HoverState      `json:"hover" yaml:"hover"`
}

type LabelState struct {
	Ident      `yaml:",inline"`
	Text       TextState    `json:"text" yaml:"text"`
	Wrap       *bool        `json:"wrap,omitempty" yaml:"wrap,omitempty"`
	Truncate   *bool        `json:"truncate,omitempty" yaml:"truncate,omitempty"`
	Selectable *bool        `json:"selectable,omitempty" yaml:"selectable,omitempty"`
	Sense      *model.Sense `json:"sense,omitempty" yaml:"sense,omitempty"`
	Hover      HoverState   `json:"hover" yaml:"hover"`
}

type SeparatorState struct {
	Ident      `yaml:",inline"`
	Horizontal *bool      `json:"horizontal,omitempty" yaml:"horizontal,omitempty"`
	Spacing    *float32   `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	Grow       *float32   `json:"grow,omitempty" yaml:"grow,omitempty"`
	Shrink     *float32   `json:"shrink,omitempty" yaml:"shrink,omitempty"`
	Hover      HoverState `json:"hover" yaml:"hover"`
}

type LayoutState struct {
	Ident        `yaml:",inline"`
	Direction    *model.Direction `json:"direction,omitempty" yaml:"direction,omitempty"`
	MainWrap     *bool            `json:"main_wrap,omitempty" yaml:"main_wrap,omitempty"`
	MainAlign    *model.Align     `json:"main_align,omitempty" yaml:"main_align,omitempty"`
	MainJustify  *bool            `json:"main_justify,omitempty" yaml:"main_justify,omitempty"`
	CrossAlign   *model.Align     `json:"cross_align,omitempty" yaml:"cross_align,omitempty"`
	CrossJustify *bool            `json:"cross_justify,omitempty" yaml:"cross_justify,omitempty"`
}

// Interaction is what the host observed for a widget during the frame.
type Interaction struct {
	Clicked          bool `json:"clicked,omitempty" yaml:"clicked,omitempty"`
	SecondaryClicked bool `json:"secondary_clicked,omitempty" yaml:"secondary_clicked,omitempty"`
	MiddleClicked    bool `json:"middle_clicked,omitempty" yaml:"middle_clicked,omitempty"`
	DoubleClicked    bool `json:"double_clicked,omitempty" yaml:"double_clicked,omitempty"`
	TripleClicked    bool `json:"triple_clicked,omitempty" yaml:"triple_clicked,omitempty"`
	ClickedElsewhere bool `json:"clicked_elsewhere,omitempty" yaml:"clicked_elsewhere,omitempty"`
	Hovered          bool `json:"hovered,omitempty" yaml:"hovered,omitempty"`
	Highlighted      bool `json:"highlighted,omitempty" yaml:"highlighted,omitempty"`
	Changed          bool `json:"changed,omitempty" yaml:"changed,omitempty"`
}

// Has reports whether e happened.
func (in Interaction) Has(e model.Event) bool {
	switch e {
	case model.Clicked:
		return in.Clicked
	case model.SecondaryClicked:
		return in.SecondaryClicked
	case model.MiddleClicked:
		return in.MiddleClicked
	case model.DoubleClicked:
		return in.DoubleClicked
	case model.TripleClicked:
		return in.TripleClicked
	case model.ClickedElsewhere:
		return in.ClickedElsewhere
	case model.Hovered:
		return in.Hovered
	case model.Highlighted:
		return in.Highlighted
	case model.Changed:
		return in.Changed
	}
	return false
}

// UI is implemented by the host. Container methods call body with the UI
// to use for their children.
type UI interface {
	Window(s WindowState, body func(UI))
	Button(s ButtonState) Interaction
	Label(s LabelState) Interaction
	Separator(s SeparatorState) Interaction
	Layout(s LayoutState, body func(UI))
}
