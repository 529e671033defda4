package model

import (
	"errors"
	"hash/fnv"
	"log/slog"
)

// LabelParser turns a widget name into an identifier the host can use to
// address the widget.
type LabelParser interface {
	ParseLabel(name string) (ID, error)
}

// LabelFunc adapts a function to LabelParser.
type LabelFunc func(name string) (ID, error)

func (f LabelFunc) ParseLabel(name string) (ID, error) { return f(name) }

var errEmptyName = errors.New("empty widget name")

// HashLabels accepts any non-empty name and derives its ID from an FNV-1a
// hash of the name.
var HashLabels LabelParser = LabelFunc(func(name string) (ID, error) {
	if name == "" {
		return 0, errEmptyName
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return ID(h.Sum64()), nil
})

// AssignIDs parses the name of every named widget with p. Failures are
// logged and leave the widget unaddressable; they never fail the document.
func (w *Window) AssignIDs(p LabelParser, log *slog.Logger) {
	if p == nil {
		p = HashLabels
	}
	if log == nil {
		log = slog.Default()
	}
	seen := map[ID]string{}
	w.Content.Walk(func(wd Widget) {
		n := wd.Base().Name
		if n == nil {
			return
		}
		id, err := p.ParseLabel(n.Text)
		if err != nil {
			n.ID, n.Valid = 0, false
			log.Warn("invalid widget name", "kind", wd.Kind(), "name", n.Text, "err", err)
			return
		}
		if prev, dup := seen[id]; dup {
			log.Warn("duplicate widget identifier", "kind", wd.Kind(), "name", n.Text, "previous", prev)
		}
		seen[id] = n.Text
		n.ID, n.Valid = id, true
	})
}

// Find returns the widget with the given identifier.
func (w *Window) Find(id ID) (Widget, bool) {
	var found Widget
	w.Content.Walk(func(wd Widget) {
		if n := wd.Base().Name; found == nil && n != nil && n.Valid && n.ID == id {
			found = wd
		}
	})
	return found, found != nil
}
