package render_test

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/reoring/uiconf/binding"
	"github.com/reoring/uiconf/datastore"
	"github.com/reoring/uiconf/model"
	"github.com/reoring/uiconf/reader"
	"github.com/reoring/uiconf/render"
)

func window(t *testing.T, src string) *model.Window {
	t.Helper()
	r, err := reader.Parse([]byte(src), reader.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root, err := model.ReadRoot(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	root.Window.AssignIDs(model.HashLabels, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return &root.Window
}

func kinds(rec *render.Recorder) []string {
	out := make([]string, 0, len(rec.Frames))
	for _, f := range rec.Frames {
		out = append(out, f.Kind)
	}
	return out
}

func TestShow_Order(t *testing.T) {
	w := window(t, `window = {
		title = "Main"
		label = a
		layout = {
			direction = top_down
			button = b
			separator = {}
		}
		label = c
	}`)
	rec := render.NewRecorder()
	render.Show(rec, w, datastore.NewMap())
	got := kinds(rec)
	want := []string{"window", "label", "layout", "button", "separator", "label"}
	if len(got) != len(want) {
		t.Fatalf("frames: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame %d: got %s want %s (%v)", i, got[i], want[i], got)
		}
	}
	if rec.Frames[3].Depth != 2 || rec.Frames[5].Depth != 1 {
		t.Fatalf("depths: %+v", rec.Frames)
	}
	ws := rec.Frames[0].State.(render.WindowState)
	if ws.Title.Text != "Main" {
		t.Fatalf("title: %+v", ws.Title)
	}
	ls := rec.Frames[2].State.(render.LayoutState)
	if ls.Direction == nil || *ls.Direction != model.TopDown {
		t.Fatalf("direction: %+v", ls)
	}
}

func TestShow_BoundText(t *testing.T) {
	w := window(t, `window = { label = { text = { text = @greeting style = @styles color = red } } }`)
	store := datastore.NewMap().
		Set("greeting", &datastore.String{V: "hello"}).
		Set("styles", &datastore.List{Items: []datastore.Value{&datastore.String{V: "strong"}}})

	rec := render.NewRecorder()
	render.Show(rec, w, store)
	ls := rec.Frames[1].State.(render.LabelState)
	if ls.Text.Text != "hello" {
		t.Fatalf("text: %+v", ls.Text)
	}
	if len(ls.Text.Styles) != 1 || ls.Text.Styles[0] != model.TextStrong {
		t.Fatalf("styles: %+v", ls.Text.Styles)
	}
	if ls.Text.Color == nil {
		t.Fatalf("color must be set")
	}

	// Later store changes are visible on the next frame.
	store.Set("greeting", &datastore.String{V: "bye"})
	rec.Reset()
	render.Show(rec, w, store)
	if got := rec.Frames[1].State.(render.LabelState).Text.Text; got != "bye" {
		t.Fatalf("second frame text: %q", got)
	}
}

func TestShow_BadStyleDropsStylesOnly(t *testing.T) {
	w := window(t, `window = { label = { text = { text = x style = @styles } } }`)
	store := datastore.NewMap().
		Set("styles", &datastore.List{Items: []datastore.Value{&datastore.String{V: "sparkly"}}})
	rec := render.NewRecorder()
	render.Show(rec, w, store)
	ls := rec.Frames[1].State.(render.LabelState)
	if ls.Text.Text != "x" || ls.Text.Styles != nil {
		t.Fatalf("got %+v", ls.Text)
	}
}

func TestShow_Visible(t *testing.T) {
	var buf bytes.Buffer
	binding.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer binding.SetLogger(nil)

	w := window(t, `window = {
		label = { text = hidden visible = @show }
		label = { text = missing visible = @nope }
		label = { text = literal visible = no }
	}`)
	store := datastore.NewMap().Set("show", &datastore.Bool{V: false})
	rec := render.NewRecorder()
	render.Show(rec, w, store)
	labels := rec.Find("label")
	if len(labels) != 1 || labels[0].(render.LabelState).Text.Text != "missing" {
		t.Fatalf("labels: %+v", labels)
	}
	if !bytes.Contains(buf.Bytes(), []byte("@nope")) {
		t.Fatalf("expected a warning for @nope, got %q", buf.String())
	}

	store.Set("show", &datastore.Bool{V: true})
	rec.Reset()
	render.Show(rec, w, store)
	if n := len(rec.Find("label")); n != 2 {
		t.Fatalf("expected 2 labels, got %d", n)
	}
}

func TestShow_FiresTriggers(t *testing.T) {
	w := window(t, `window = {
		button = { name = save text = Save clicked = @save hovered = @hover }
		button = { name = other text = Other clicked = @missing }
	}`)
	store := datastore.NewMap().
		Set("save", datastore.NewTrigger(0)).
		Set("hover", datastore.NewTrigger(0))

	rec := render.NewRecorder().
		On("save", render.Interaction{Clicked: true}).
		On("other", render.Interaction{Clicked: true})
	render.Show(rec, w, store)

	save, _ := store.Trigger("save")
	hover, _ := store.Trigger("hover")
	if save.Count() != 1 || hover.Count() != 0 {
		t.Fatalf("counts: save=%d hover=%d", save.Count(), hover.Count())
	}
	if rec.Frames[1].Interaction == nil || !rec.Frames[1].Interaction.Clicked {
		t.Fatalf("interaction not recorded: %+v", rec.Frames[1])
	}

	// Scripts are consumed once.
	rec.Reset()
	render.Show(rec, w, store)
	if save.Count() != 1 {
		t.Fatalf("trigger fired twice: %d", save.Count())
	}
	if !save.CheckReset() || save.Count() != 0 {
		t.Fatalf("CheckReset must clear a fired trigger")
	}
}

func TestShow_TriggerTypeMismatch(t *testing.T) {
	binding.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer binding.SetLogger(nil)

	w := window(t, `window = { button = { name = go text = Go clicked = @flag } }`)
	store := datastore.NewMap().Set("flag", &datastore.Bool{V: true})
	rec := render.NewRecorder().On("go", render.Interaction{Clicked: true})
	render.Show(rec, w, store)
	v, _ := store.Field("flag")
	if b, err := datastore.Downcast[bool](v); err != nil || !b {
		t.Fatalf("flag must be untouched: %v %v", b, err)
	}
}

func TestShow_ButtonAndWindowProps(t *testing.T) {
	w := window(t, `window = {
		title = { text = @title size = 20 }
		max_size = { any 300 }
		auto_sized = {}
		button = {
			name = ok
			text = OK
			small = yes
			selected = @sel
			shortcut_text = @missing
			on_hover = "tip"
			highlight = yes
		}
	}`)
	binding.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer binding.SetLogger(nil)
	store := datastore.NewMap().
		Set("title", &datastore.String{V: "T"}).
		Set("sel", &datastore.Bool{V: true})

	rec := render.NewRecorder()
	render.Show(rec, w, store)
	ws := rec.Frames[0].State.(render.WindowState)
	if ws.Title.Text != "T" || ws.Title.Size != 20 || !ws.AutoSized {
		t.Fatalf("window: %+v", ws)
	}
	if ws.MaxSize == nil || !math.IsInf(float64(ws.MaxSize.X), 1) || ws.MaxSize.Y != 300 {
		t.Fatalf("max_size: %+v", ws.MaxSize)
	}
	bs := rec.Frames[1].State.(render.ButtonState)
	if !bs.Small || !bs.Selected || bs.ShortcutText != nil {
		t.Fatalf("button: %+v", bs)
	}
	if bs.Hover.OnHover == nil || bs.Hover.OnHover.Text != "tip" || !bs.Hover.Highlight {
		t.Fatalf("hover: %+v", bs.Hover)
	}
	if bs.Name != "ok" || bs.ID == 0 {
		t.Fatalf("ident: %+v", bs.Ident)
	}
}

func TestInteraction_Has(t *testing.T) {
	in := render.Interaction{DoubleClicked: true, Changed: true}
	if !in.Has(model.DoubleClicked) || !in.Has(model.Changed) || in.Has(model.Clicked) {
		t.Fatalf("Has: %+v", in)
	}
}
