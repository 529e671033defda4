package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/reoring/uiconf"
	"github.com/reoring/uiconf/datastore"
	"github.com/reoring/uiconf/model"
	"github.com/reoring/uiconf/render"
)

const historyFile = ".uiconf_history"

const sessionHelp = `commands:
  show                  draw a frame and print it
  click NAME [EVENT]    interact with NAME on the next frame (default clicked)
  set NAME JSON         replace a store field, e.g. set title "Hello"
  get NAME              print a store field
  triggers              print and reset every trigger
  reload                re-read the document
  quit`

// session holds the state of an interactive run.
type session struct {
	path   string
	opt    uiconf.Options
	format string
	root   *model.Root
	store  *datastore.Map
	rec    *render.Recorder
	out    io.Writer
}

// sessionCmd draws the document on demand and lets the user script
// interactions and edit the store between frames.
func sessionCmd(args []string) {
	fs := flag.NewFlagSet("session", flag.ExitOnError)
	var lim limits
	var storePath, format string
	var verbose bool
	lim.register(fs)
	fs.StringVar(&storePath, "store", "", "data store file (.json, .yaml or .yml)")
	fs.StringVar(&format, "format", "yaml", "frame output format (json or yaml)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	s := &session{
		path:   fs.Arg(0),
		opt:    lim.options(newLogger(verbose)),
		format: format,
		store:  datastore.NewMap(),
		rec:    render.NewRecorder(),
		out:    os.Stdout,
	}
	if err := s.reload(); err != nil {
		fatalf("%s: %v", s.path, err)
	}
	if storePath != "" {
		st, err := datastore.Load(storePath)
		if err != nil {
			fatalf("store: %v", err)
		}
		s.store = st
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.complete)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("uiconf> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		quit, err := s.exec(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if quit {
			return
		}
	}
}

func (s *session) reload() error {
	root, err := uiconf.ParseFile(s.path, s.opt)
	if err != nil {
		return err
	}
	s.root = root
	return nil
}

func (s *session) exec(line string) (quit bool, err error) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(s.out, sessionHelp)
	case "show":
		s.rec.Reset()
		render.Show(s.rec, &s.root.Window, s.store)
		return false, write(s.out, s.format, s.rec.Frames)
	case "click":
		return false, s.click(rest)
	case "set":
		return false, s.set(rest)
	case "get":
		v, err := s.store.Field(rest)
		if err != nil {
			return false, err
		}
		return false, write(s.out, "json", datastore.NewMap().Set(rest, v))
	case "triggers":
		for _, name := range s.store.Names() {
			if t, ok := s.store.Trigger(name); ok {
				n := t.Count()
				fmt.Fprintf(s.out, "%s %d\n", name, n)
				t.CheckReset()
			}
		}
	case "reload":
		return false, s.reload()
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return false, nil
}

func (s *session) click(args string) error {
	name, event, _ := strings.Cut(args, " ")
	if name == "" {
		return errors.New("usage: click NAME [EVENT]")
	}
	var in render.Interaction
	switch strings.TrimSpace(event) {
	case "", "clicked":
		in.Clicked = true
	case "secondary_clicked":
		in.SecondaryClicked = true
	case "middle_clicked":
		in.MiddleClicked = true
	case "double_clicked":
		in.DoubleClicked = true
	case "triple_clicked":
		in.TripleClicked = true
	case "clicked_elsewhere":
		in.ClickedElsewhere = true
	case "hovered":
		in.Hovered = true
	case "highlighted":
		in.Highlighted = true
	case "changed":
		in.Changed = true
	default:
		return fmt.Errorf("unknown event %q", event)
	}
	s.rec.On(name, in)
	return nil
}

// set decodes value as a single-field JSON store and copies the field over.
func (s *session) set(args string) error {
	name, value, _ := strings.Cut(args, " ")
	if name == "" || strings.TrimSpace(value) == "" {
		return errors.New("usage: set NAME JSON")
	}
	quoted, err := jsonString(name)
	if err != nil {
		return err
	}
	m, err := datastore.FromJSON([]byte("{" + quoted + ":" + value + "}"))
	if err != nil {
		return err
	}
	v, err := m.Field(name)
	if err != nil {
		return err
	}
	s.store.Set(name, v)
	return nil
}

func (s *session) complete(line string) []string {
	words := []string{"show", "click ", "set ", "get ", "triggers", "reload", "help", "quit"}
	if cmd, prefix, ok := strings.Cut(line, " "); ok {
		words = words[:0]
		switch cmd {
		case "click":
			s.root.Window.Content.Walk(func(w model.Widget) {
				if n := w.Base().Name; n != nil {
					words = append(words, cmd+" "+n.Text)
				}
			})
		case "set", "get":
			for _, n := range s.store.Names() {
				words = append(words, cmd+" "+n)
			}
		}
		line = cmd + " " + prefix
	}
	var out []string
	for _, w := range words {
		if strings.HasPrefix(w, line) {
			out = append(out, w)
		}
	}
	return out
}
