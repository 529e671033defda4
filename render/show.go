package render

import (
	"fmt"

	"github.com/reoring/uiconf/binding"
	"github.com/reoring/uiconf/datastore"
	"github.com/reoring/uiconf/model"
)

// Show draws w through ui for one frame. Widgets are visited depth-first;
// a widget whose visibility resolves to false is skipped, and a visibility
// that fails to resolve counts as visible. Any other resolution failure only
// drops the affected property for this frame. Events reported by ui fire the
// triggers named in the widget's response.
func Show(ui UI, w *model.Window, store datastore.Store) {
	ui.Window(windowState(w, store), func(inner UI) {
		showContent(inner, w.Content, store)
	})
}

func showContent(ui UI, c model.Content, store datastore.Store) {
	for _, w := range c {
		if !visible(w, store) {
			continue
		}
		switch w := w.(type) {
		case *model.Button:
			in := ui.Button(buttonState(w, store))
			fire(w.Response, in, store)
		case *model.Label:
			in := ui.Label(labelState(w, store))
			fire(w.Response, in, store)
		case *model.Separator:
			in := ui.Separator(separatorState(w, store))
			fire(w.Response, in, store)
		case *model.Layout:
			ui.Layout(layoutState(w), func(inner UI) {
				showContent(inner, w.Content, store)
			})
		}
	}
}

func visible(w model.Widget, store datastore.Store) bool {
	v, err := w.Base().Visible.Resolve(store)
	return err != nil || v
}

// fire increments the trigger of every response event present in in.
func fire(rs model.Response, in Interaction, store datastore.Store) {
	for _, p := range rs {
		ev, ok := p.(model.ResponseEvent)
		if !ok || !in.Has(ev.Event) {
			continue
		}
		t, err := binding.FromRef[datastore.Trigger](ev.Trigger).ResolveMut(store)
		if err != nil {
			continue
		}
		t.Fire()
	}
}

func ident(c *model.Common) Ident {
	if c.Name == nil {
		return Ident{}
	}
	id := Ident{Name: c.Name.Text}
	if c.Name.Valid {
		id.ID = c.Name.ID
	}
	return id
}

func ptr[T any](v T) *T { return &v }

func styleOf(v datastore.Value) (model.TextStyle, error) {
	s, err := datastore.Downcast[string](v)
	if err != nil {
		return 0, err
	}
	st, ok := model.ParseTextStyle(s)
	if !ok {
		return 0, fmt.Errorf("unknown text style %q", s)
	}
	return st, nil
}

// text resolves rt. ok is false when the text itself failed to resolve.
func text(rt model.RichText, store datastore.Store) (TextState, bool) {
	var out TextState
	s, err := rt.Text.Resolve(store)
	ok := err == nil
	out.Text = s
	for _, p := range rt.Props {
		switch p := p.(type) {
		case model.RichTextSize:
			out.Size = float32(p)
		case model.RichTextStyles:
			if styles, err := binding.List[model.TextStyle](p).Resolve(store, styleOf); err == nil {
				out.Styles = styles
			}
		case model.RichTextColor:
			out.Color = ptr(model.Color(p))
		case model.RichTextBackgroundColor:
			out.BackgroundColor = ptr(model.Color(p))
		case model.RichTextLineHeight:
			out.LineHeight = float32(p)
		case model.RichTextExtraLetterSpacing:
			out.ExtraLetterSpacing = float32(p)
		}
	}
	return out, ok
}

func optionalText(rt model.RichText, store datastore.Store) *TextState {
	t, ok := text(rt, store)
	if !ok {
		return nil
	}
	return &t
}

func hover(rs model.Response, store datastore.Store) HoverState {
	var h HoverState
	for _, p := range rs {
		switch p := p.(type) {
		case model.ResponseOnHover:
			h.OnHover = optionalText(model.RichText(p), store)
		case model.ResponseOnDisabledHover:
			h.OnDisabledHover = optionalText(model.RichText(p), store)
		case model.ResponseOnHoverAtPointer:
			h.OnHoverAtPointer = optionalText(model.RichText(p), store)
		case model.ResponseHighlight:
			h.Highlight, _ = binding.Binding[bool](p).Resolve(store)
		}
	}
	return h
}

func windowState(w *model.Window, store datastore.Store) WindowState {
	s := WindowState{}
	s.Title, _ = text(w.Title, store)
	for _, p := range w.Props {
		switch p := p.(type) {
		case model.WindowAnchor:
			s.Anchor = ptr(model.Anchor(p))
		case model.WindowTitleBar:
			s.TitleBar = ptr(bool(p))
		case model.WindowDefaultSize:
			s.DefaultSize = ptr(model.Vec2(p))
		case model.WindowMinSize:
			s.MinSize = ptr(model.Vec2(p))
		case model.WindowMaxSize:
			s.MaxSize = ptr(model.Vec2(p))
		case model.WindowFixedSize:
			s.FixedSize = ptr(model.Vec2(p))
		case model.WindowAutoSized:
			s.AutoSized = true
		case model.WindowResizable:
			s.Resizable = ptr(bool(p))
		case model.WindowEnabled:
			s.Enabled = ptr(bool(p))
		case model.WindowInteractable:
			s.Interactable = ptr(bool(p))
		case model.WindowMovable:
			s.Movable = ptr(bool(p))
		case model.WindowCollapsible:
			s.Collapsible = ptr(bool(p))
		}
	}
	return s
}

func buttonState(b *model.Button, store datastore.Store) ButtonState {
	s := ButtonState{Ident: ident(&b.Common), Small: b.Small}
	s.Text, _ = text(b.Text, store)
	for _, p := range b.Props {
		switch p := p.(type) {
		case model.ButtonShortcutText:
			s.ShortcutText = optionalText(model.RichText(p), store)
		case model.ButtonWrap:
			s.Wrap = ptr(bool(p))
		case model.ButtonFill:
			s.Fill = ptr(model.Color(p))
		case model.ButtonStroke:
			s.Stroke = ptr(model.Stroke(p))
		case model.ButtonSense:
			s.Sense = ptr(model.Sense(p))
		case model.ButtonFrame:
			s.Frame = ptr(bool(p))
		case model.ButtonMinSize:
			s.MinSize = ptr(model.Vec2(p))
		case model.ButtonRounding:
			s.Rounding = ptr(model.Rounding(p))
		case model.ButtonSelected:
			s.Selected, _ = binding.Binding[bool](p).Resolve(store)
		}
	}
	s.Hover = hover(b.Response, store)
	return s
}

func labelState(l *model.Label, store datastore.Store) LabelState {
	s := LabelState{Ident: ident(&l.Common)}
	s.Text, _ = text(l.Text, store)
	for _, p := range l.Props {
		switch p := p.(type) {
		case model.LabelWrap:
			s.Wrap = ptr(bool(p))
		case model.LabelTruncate:
			s.Truncate = ptr(bool(p))
		case model.LabelSelectable:
			s.Selectable = ptr(bool(p))
		case model.LabelSense:
			s.Sense = ptr(model.Sense(p))
		}
	}
	s.Hover = hover(l.Response, store)
	return s
}

func separatorState(sep *model.Separator, store datastore.Store) SeparatorState {
	s := SeparatorState{Ident: ident(&sep.Common), Horizontal: sep.Horizontal}
	for _, p := range sep.Props {
		switch p := p.(type) {
		case model.SeparatorSpacing:
			s.Spacing = ptr(float32(p))
		case model.SeparatorGrow:
			s.Grow = ptr(float32(p))
		case model.SeparatorShrink:
			s.Shrink = ptr(float32(p))
		}
	}
	s.Hover = hover(sep.Response, store)
	return s
}

func layoutState(l *model.Layout) LayoutState {
	s := LayoutState{Ident: ident(&l.Common)}
	for _, p := range l.Props {
		switch p := p.(type) {
		case model.LayoutDirection:
			s.Direction = ptr(model.Direction(p))
		case model.LayoutMainWrap:
			s.MainWrap = ptr(bool(p))
		case model.LayoutMainAlign:
			s.MainAlign = ptr(model.Align(p))
		case model.LayoutMainJustify:
			s.MainJustify = ptr(bool(p))
		case model.LayoutCrossAlign:
			s.CrossAlign = ptr(model.Align(p))
		case model.LayoutCrossJustify:
			s.CrossJustify = ptr(bool(p))
		}
	}
	return s
}
