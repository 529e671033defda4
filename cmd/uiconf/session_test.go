package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/uiconf"
	"github.com/reoring/uiconf/datastore"
	"github.com/reoring/uiconf/render"
)

func newSession(t *testing.T, src string) (*session, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.ui")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	s := &session{
		path:   path,
		opt:    uiconf.Options{},
		format: "json",
		store:  datastore.NewMap(),
		rec:    render.NewRecorder(),
		out:    &buf,
	}
	if err := s.reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	return s, &buf
}

func run(t *testing.T, s *session, lines ...string) {
	t.Helper()
	for _, l := range lines {
		if _, err := s.exec(l); err != nil {
			t.Fatalf("%s: %v", l, err)
		}
	}
}

func TestSession_ClickFiresTrigger(t *testing.T) {
	s, buf := newSession(t, `window = { button = { name = go text = @label clicked = @go } }`)
	run(t, s, `set label "Go!"`, `set go {"trigger": 0}`, "click go", "show")
	if !strings.Contains(buf.String(), `"Go!"`) {
		t.Fatalf("frame must show the bound label: %s", buf.String())
	}
	buf.Reset()
	run(t, s, "triggers")
	if strings.TrimSpace(buf.String()) != "go 1" {
		t.Fatalf("triggers: %q", buf.String())
	}
	buf.Reset()
	run(t, s, "triggers")
	if strings.TrimSpace(buf.String()) != "go 0" {
		t.Fatalf("triggers must reset: %q", buf.String())
	}
}

func TestSession_Errors(t *testing.T) {
	s, _ := newSession(t, `window = { label = x }`)
	for _, l := range []string{"bogus", "click", "click x wiggled", "set x", "set x {", "get missing"} {
		if _, err := s.exec(l); err == nil {
			t.Fatalf("%s: expected error", l)
		}
	}
	if quit, _ := s.exec("quit"); !quit {
		t.Fatalf("quit must end the session")
	}
}

func TestSession_Complete(t *testing.T) {
	s, _ := newSession(t, `window = { button = { name = save text = s } label = { name = status text = t } }`)
	got := s.complete("click s")
	if len(got) != 2 {
		t.Fatalf("completions: %v", got)
	}
	if got := s.complete("tri"); len(got) != 1 || got[0] != "triggers" {
		t.Fatalf("completions: %v", got)
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" a, ,b,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("splitCSV: %v", got)
	}
}
