package binding_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reoring/uiconf/binding"
	"github.com/reoring/uiconf/datastore"
	"github.com/reoring/uiconf/reader"
)

func value(t *testing.T, src string) reader.Reader {
	t.Helper()
	r, err := reader.Parse([]byte("v = "+src), reader.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	seq, err := r.ReadObject()
	if err != nil {
		t.Fatalf("object: %v", err)
	}
	for _, v := range seq {
		return v
	}
	t.Fatalf("no value")
	return reader.Reader{}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	binding.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { binding.SetLogger(nil) })
	return &buf
}

var readBool = binding.Read[bool](reader.Bool)

func TestRead_Grammar(t *testing.T) {
	b, err := readBool(value(t, "@flag"))
	if err != nil || !b.IsRef() || b.Ref().Name() != "flag" {
		t.Fatalf("ref: %v %v", b, err)
	}
	b, err = readBool(value(t, "yes"))
	if v, ok := b.Literal(); err != nil || !ok || !v {
		t.Fatalf("literal: %v %v", b, err)
	}
	_, err = readBool(value(t, "@"))
	e, ok := reader.AsError(err)
	if !ok || e.Code != reader.CodeInvalidValue {
		t.Fatalf("bare @ must be invalid_value, got %v", err)
	}

	// quoted text is never a reference
	s, err := binding.Read[string](reader.String)(value(t, `"@name"`))
	if v, ok := s.Literal(); err != nil || !ok || v != "@name" {
		t.Fatalf("quoted: %v %v", s, err)
	}
}

func TestResolve_MissingFieldIsRecoverable(t *testing.T) {
	captureLogs(t)
	b, _ := readBool(value(t, "@flag"))
	store := datastore.NewMap()
	_, err := b.Resolve(store)
	if !errors.Is(err, datastore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var re *binding.ResolveError
	if !errors.As(err, &re) || re.Name != "flag" {
		t.Fatalf("resolve error: %v", err)
	}

	store.Set("flag", &datastore.Bool{V: true})
	got, err := b.Resolve(store)
	if err != nil || !got {
		t.Fatalf("field added later must resolve: %v %v", got, err)
	}
}

func TestResolve_NilStore(t *testing.T) {
	captureLogs(t)
	b, _ := readBool(value(t, "@flag"))
	var m *datastore.Map
	for _, s := range []datastore.Store{nil, m} {
		if _, err := b.Resolve(s); !errors.Is(err, datastore.ErrNotFound) {
			t.Fatalf("Resolve(%T): %v", s, err)
		}
		if _, err := b.ResolveMut(s); !errors.Is(err, datastore.ErrNotFound) {
			t.Fatalf("ResolveMut(%T): %v", s, err)
		}
	}
}

func TestResolve_TypeMismatch(t *testing.T) {
	captureLogs(t)
	b := binding.Reference[string]("n")
	_, err := b.Resolve(datastore.NewMap().Set("n", &datastore.Number{V: 1}))
	var te *datastore.TypeError
	if !errors.As(err, &te) || te.Expected != "string" || te.Actual != "number" {
		t.Fatalf("type error: %v", err)
	}
	if !strings.Contains(err.Error(), "@n") {
		t.Fatalf("message must name the reference: %s", err)
	}
}

func TestResolve_WarnsOnce(t *testing.T) {
	logs := captureLogs(t)
	b := binding.Reference[bool]("missing")
	for range 3 {
		if _, err := b.Resolve(datastore.NewMap()); err == nil {
			t.Fatalf("expected failure")
		}
	}
	if n := strings.Count(logs.String(), "binding resolution failed"); n != 1 {
		t.Fatalf("want one warning, got %d:\n%s", n, logs)
	}

	// copies share the reference and its flag
	c := b
	_, _ = c.Resolve(nil)
	if n := strings.Count(logs.String(), "binding resolution failed"); n != 1 {
		t.Fatalf("copy warned again:\n%s", logs)
	}
}

func TestResolveMut(t *testing.T) {
	lit := binding.Value(3.0)
	p, err := lit.ResolveMut(nil)
	if err != nil {
		t.Fatalf("literal: %v", err)
	}
	*p = 9
	if v, _ := lit.Literal(); v != 3 {
		t.Fatalf("literal must stay independent of writes: %v", v)
	}

	store := datastore.NewMap().Set("n", &datastore.Number{V: 1})
	ref := binding.Reference[float64]("n")
	p, err = ref.ResolveMut(store)
	if err != nil {
		t.Fatalf("ref: %v", err)
	}
	*p = 5
	if v, _ := ref.Resolve(store); v != 5 {
		t.Fatalf("write through store lost: %v", v)
	}

	if _, err := binding.Reference[bool]("n").ResolveMut(store); err == nil {
		t.Fatalf("mismatch must fail before FieldMut")
	}
}

func TestList(t *testing.T) {
	captureLogs(t)
	read := binding.ReadList[string](reader.String)
	lit, err := read(value(t, "{ a b }"))
	if err != nil || lit.IsRef() {
		t.Fatalf("literal list: %v", err)
	}
	conv := datastore.Downcast[string]
	items, _ := lit.Resolve(nil, conv)
	if strings.Join(items, ",") != "a,b" {
		t.Fatalf("items: %v", items)
	}
	if _, err := lit.ResolveMut(nil); !errors.Is(err, binding.ErrLiteral) {
		t.Fatalf("literal ResolveMut: %v", err)
	}

	ref, err := read(value(t, "@styles"))
	if err != nil || !ref.IsRef() {
		t.Fatalf("ref list: %v", err)
	}
	store := datastore.NewMap().Set("styles", &datastore.List{Items: []datastore.Value{&datastore.String{V: "x"}}})
	items, err = ref.Resolve(store, conv)
	if err != nil || len(items) != 1 || items[0] != "x" {
		t.Fatalf("resolved: %v %v", items, err)
	}
	l, err := ref.ResolveMut(store)
	if err != nil {
		t.Fatalf("mut: %v", err)
	}
	l.Append(&datastore.Number{V: 1})
	if _, err := ref.Resolve(store, conv); err == nil {
		t.Fatalf("non-string item must fail conversion")
	}
}
