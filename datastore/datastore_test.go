package datastore_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/uiconf/datastore"
)

func TestMap_FieldAndOrder(t *testing.T) {
	m := datastore.NewMap().
		Set("b", &datastore.Bool{V: true}).
		Set("a", &datastore.String{V: "x"}).
		Set("b", &datastore.Bool{V: false})
	if got := strings.Join(m.Names(), ","); got != "b,a" {
		t.Fatalf("names: %s", got)
	}
	if _, err := m.Field("missing"); !errors.Is(err, datastore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	m.Delete("b")
	if m.Len() != 1 || m.Names()[0] != "a" {
		t.Fatalf("after delete: %v", m.Names())
	}
}

func TestMap_Nil(t *testing.T) {
	var m *datastore.Map
	if _, err := m.Field("a"); !errors.Is(err, datastore.ErrNotFound) {
		t.Fatalf("Field: %v", err)
	}
	if _, err := m.FieldMut("a"); !errors.Is(err, datastore.ErrNotFound) {
		t.Fatalf("FieldMut: %v", err)
	}
	if m.Len() != 0 || m.Has("a") || m.Names() != nil {
		t.Fatalf("nil map must be empty")
	}
	if _, ok := m.Trigger("a"); ok {
		t.Fatalf("Trigger on nil map")
	}
}

func TestDowncast(t *testing.T) {
	m := datastore.NewMap().Set("n", &datastore.Number{V: 2})
	v, _ := m.Field("n")
	if f, err := datastore.Downcast[float64](v); err != nil || f != 2 {
		t.Fatalf("downcast: %v %v", f, err)
	}
	_, err := datastore.Downcast[string](v)
	var te *datastore.TypeError
	if !errors.As(err, &te) || te.Expected != "string" || te.Actual != "number" {
		t.Fatalf("type error: %v", err)
	}

	mv, _ := m.FieldMut("n")
	p, err := datastore.DowncastMut[float64](mv)
	if err != nil {
		t.Fatalf("downcast mut: %v", err)
	}
	*p = 7
	v, _ = m.Field("n")
	if f, _ := datastore.Downcast[float64](v); f != 7 {
		t.Fatalf("write through pointer lost: %v", f)
	}
}

func TestTrigger(t *testing.T) {
	tr := datastore.NewTrigger(0)
	if tr.CheckReset() {
		t.Fatalf("fresh trigger must not report")
	}
	tr.Fire()
	tr.Fire()
	if tr.Count() != 2 {
		t.Fatalf("count: %d", tr.Count())
	}
	if !tr.CheckReset() || tr.Count() != 0 {
		t.Fatalf("check reset")
	}
	m := datastore.NewMap().Set("go", tr)
	v, _ := m.FieldMut("go")
	p, err := datastore.DowncastMut[datastore.Trigger](v)
	if err != nil {
		t.Fatalf("downcast trigger: %v", err)
	}
	p.Fire()
	if got, _ := m.Trigger("go"); got.Count() != 1 {
		t.Fatalf("trigger not shared")
	}
}

func TestFromJSON(t *testing.T) {
	m, err := datastore.FromJSON([]byte(`{"z": true, "count": 3, "title": "hi", "styles": ["strong", "italics"], "clicked": {"trigger": 2}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(m.Names(), ","); got != "z,count,title,styles,clicked" {
		t.Fatalf("order: %s", got)
	}
	v, _ := m.Field("styles")
	l, err := datastore.Downcast[datastore.List](v)
	if err != nil || l.Len() != 2 {
		t.Fatalf("list: %v %v", l, err)
	}
	if tr, ok := m.Trigger("clicked"); !ok || tr.Count() != 2 {
		t.Fatalf("trigger: %v", tr)
	}

	for _, src := range []string{
		`[1]`,
		`{"a": null}`,
		`{"a": {"b": 1}}`,
		`{"a": {"trigger": -1}}`,
		`{"a": true} {"b": 1}`,
		`{"a": true} garbage`,
		`{"a": 1, "a": true}`,
	} {
		if _, err := datastore.FromJSON([]byte(src)); err == nil {
			t.Fatalf("%s: expected error", src)
		}
	}
}

func TestFromYAML(t *testing.T) {
	src := "enabled: yes\nsize: 12\nratio: 0.5\nname: ok\nitems: [a, b]\nfire: {trigger: 1}\n"
	m, err := datastore.FromYAML([]byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(m.Names(), ","); got != "enabled,size,ratio,name,items,fire" {
		t.Fatalf("order: %s", got)
	}
	v, _ := m.Field("size")
	if f, err := datastore.Downcast[float64](v); err != nil || f != 12 {
		t.Fatalf("size: %v %v", f, err)
	}
	v, _ = m.Field("enabled")
	// yaml.v3 follows YAML 1.2, where `yes` is a string.
	if _, err := datastore.Downcast[string](v); err != nil {
		t.Fatalf("enabled: %v", err)
	}
	if _, err := datastore.FromYAML([]byte("- 1\n- 2\n")); err == nil {
		t.Fatalf("sequence root must fail")
	}
	if _, err := datastore.FromYAML([]byte("a: 1\na: true\n")); err == nil {
		t.Fatalf("repeated key must fail")
	}
	empty, err := datastore.FromYAML(nil)
	if err != nil || empty.Len() != 0 {
		t.Fatalf("empty: %v %v", empty, err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	m := datastore.NewMap().
		Set("title", &datastore.String{V: "hi"}).
		Set("n", &datastore.Number{V: 1.5}).
		Set("go", datastore.NewTrigger(3))
	b, err := j.Marshal(m)
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	if string(b) != `{"title":"hi","n":1.5,"go":{"trigger":3}}` {
		t.Fatalf("json: %s", b)
	}
	back, err := datastore.FromJSON(b)
	if err != nil || strings.Join(back.Names(), ",") != "title,n,go" {
		t.Fatalf("json back: %v %v", back.Names(), err)
	}

	y, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	back, err = datastore.FromYAML(y)
	if err != nil {
		t.Fatalf("yaml back: %v\n%s", err, y)
	}
	if tr, ok := back.Trigger("go"); !ok || tr.Count() != 3 {
		t.Fatalf("yaml trigger lost:\n%s", y)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "store.yml")
	if err := os.WriteFile(p, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := datastore.Load(p)
	if err != nil || m.Len() != 1 {
		t.Fatalf("load: %v %v", m, err)
	}
	bad := filepath.Join(dir, "store.txt")
	_ = os.WriteFile(bad, []byte("a"), 0o644)
	if _, err := datastore.Load(bad); err == nil {
		t.Fatalf("unknown extension must fail")
	}
}
