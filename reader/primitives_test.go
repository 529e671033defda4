package reader_test

import (
	"strings"
	"testing"

	"github.com/reoring/uiconf/reader"
)

func TestBool(t *testing.T) {
	cases := map[string]bool{"yes": true, "no": false, "TRUE": true, "False": false}
	for src, want := range cases {
		r := field(t, mustParse(t, "v = "+src), "v")
		got, err := reader.Bool(r)
		if err != nil || got != want {
			t.Fatalf("%s: got %v, %v", src, got, err)
		}
	}
	_, err := reader.Bool(field(t, mustParse(t, "v = maybe"), "v"))
	expectCode(t, err, reader.CodeInvalidValue)
}

func TestInt_WidthChecks(t *testing.T) {
	r := field(t, mustParse(t, "v = 300"), "v")
	if _, err := reader.Uint[uint8](r); err == nil {
		t.Fatalf("expected overflow")
	} else {
		e := expectCode(t, err, reader.CodeInvalidValue)
		if e.Actual != "300" || e.Expected != "uint8" {
			t.Fatalf("detail: %+v", e)
		}
	}
	if v, err := reader.Uint[uint16](r); err != nil || v != 300 {
		t.Fatalf("uint16: %v %v", v, err)
	}

	r = field(t, mustParse(t, "v = -129"), "v")
	_, err := reader.Int[int8](r)
	expectCode(t, err, reader.CodeInvalidValue)
	if v, err := reader.Int[int32](r); err != nil || v != -129 {
		t.Fatalf("int32: %v %v", v, err)
	}
	_, err = reader.Uint[uint32](r)
	expectCode(t, err, reader.CodeInvalidValue)

	r = field(t, mustParse(t, "v = 1.5"), "v")
	_, err = reader.Int[int64](r)
	expectCode(t, err, reader.CodeInvalidValue)
}

func TestFloat(t *testing.T) {
	r := field(t, mustParse(t, "v = -2.5"), "v")
	if v, err := reader.Float32(r); err != nil || v != -2.5 {
		t.Fatalf("float32: %v %v", v, err)
	}
	for _, src := range []string{"inf", "nan", "0x10", "abc"} {
		_, err := reader.Float64(field(t, mustParse(t, "v = "+src), "v"))
		expectCode(t, err, reader.CodeInvalidValue)
	}
	for _, src := range []string{"1e39", "-1e39"} {
		_, err := reader.Float32(field(t, mustParse(t, "v = "+src), "v"))
		expectCode(t, err, reader.CodeInvalidValue)
	}
	if v, err := reader.Float64(field(t, mustParse(t, "v = 1e39"), "v")); err != nil || v != 1e39 {
		t.Fatalf("float64: %v %v", v, err)
	}
}

func TestSlice(t *testing.T) {
	r := field(t, mustParse(t, "v = { 1 2 3 }"), "v")
	got, err := reader.Slice[int64](reader.Int[int64])(r)
	if err != nil || len(got) != 3 || got[2] != 3 {
		t.Fatalf("got %v, %v", got, err)
	}
	r = field(t, mustParse(t, "v = { 1 x }"), "v")
	_, err = reader.Slice[int64](reader.Int[int64])(r)
	e := expectCode(t, err, reader.CodeInvalidValue)
	if e.Path.String() != "v.1" {
		t.Fatalf("path: %s", e.Path)
	}
}

func TestEmpty(t *testing.T) {
	if err := reader.Empty(field(t, mustParse(t, "v = {}"), "v")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectCode(t, reader.Empty(field(t, mustParse(t, "v = { a }"), "v")), reader.CodeInvalidType)
	expectCode(t, reader.Empty(field(t, mustParse(t, "v = yes"), "v")), reader.CodeInvalidType)
}

type color int

const (
	red color = iota
	dark
)

var colors = reader.NewEnum(
	reader.Named[color]{Name: "red", Value: red},
	reader.Named[color]{Name: "dark_gray", Value: dark},
)

func TestEnum(t *testing.T) {
	got, err := colors.Read(field(t, mustParse(t, "v = DARK_GRAY"), "v"))
	if err != nil || got != dark {
		t.Fatalf("got %v, %v", got, err)
	}
	if colors.Name(dark) != "dark_gray" {
		t.Fatalf("name: %s", colors.Name(dark))
	}
	_, err = colors.Read(field(t, mustParse(t, "v = blue"), "v"))
	e := expectCode(t, err, reader.CodeUnknownVariant)
	if !strings.Contains(e.Error(), "`red`, `dark_gray`") {
		t.Fatalf("message must list variants: %s", e.Error())
	}
}

func TestVariants(t *testing.T) {
	table := reader.NewVariants(
		reader.Named[reader.Decoder[any]]{Name: "n", Value: func(r reader.Reader) (any, error) { return reader.Int[int64](r) }},
		reader.Named[reader.Decoder[any]]{Name: "s", Value: func(r reader.Reader) (any, error) { return reader.String(r) }},
	)
	if !table.Has("n") || table.Has("x") {
		t.Fatalf("Has")
	}
	v, err := table.Decode("n", field(t, mustParse(t, "n = 4"), "n"))
	if err != nil || v.(int64) != 4 {
		t.Fatalf("decode: %v %v", v, err)
	}
	_, err = table.Decode("x", field(t, mustParse(t, "x = 4"), "x"))
	e := expectCode(t, err, reader.CodeUnknownField)
	if strings.Join(e.Accepted, ",") != "n,s" {
		t.Fatalf("accepted: %v", e.Accepted)
	}
}

func TestUniqueAndOrder(t *testing.T) {
	r := mustParse(t, "a = 1")
	u := reader.Unique{}
	if err := u.Mark(r, "title"); err != nil {
		t.Fatalf("first mark: %v", err)
	}
	expectCode(t, u.Mark(r, "title"), reader.CodeDuplicateField)

	o := reader.NewOrder("window properties")
	if err := o.Header(r, "title"); err != nil {
		t.Fatalf("header before body: %v", err)
	}
	o.Body("button")
	e := expectCode(t, o.Header(r, "movable"), reader.CodeCustom)
	if !strings.Contains(e.Message, "`movable`") || !strings.Contains(e.Message, "`button`") {
		t.Fatalf("message must name both fields: %s", e.Message)
	}
}

func TestConcat(t *testing.T) {
	a := []string{"x"}
	got := reader.Concat(a, []string{"y", "z"})
	if strings.Join(got, ",") != "x,y,z" {
		t.Fatalf("got %v", got)
	}
	got[0] = "changed"
	if a[0] != "x" {
		t.Fatalf("Concat must copy")
	}
}
