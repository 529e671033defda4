package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/uiconf"
	"github.com/reoring/uiconf/datastore"
	"github.com/reoring/uiconf/i18n"
	"github.com/reoring/uiconf/model"
	"github.com/reoring/uiconf/reader"
	"github.com/reoring/uiconf/render"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "render":
		renderCmd(os.Args[2:])
	case "codes":
		codesCmd(os.Args[2:])
	case "session":
		sessionCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "uiconf CLI\n\nUsage:\n  uiconf check [-lang en|ja] [-max-depth N] [-max-bytes N] file...\n  uiconf render [-store state.json|state.yaml] [-click name[,name...]] [-frames N] [-format json|yaml] [-save out.json] file\n  uiconf session [-store state.json] [-format yaml|json] file\n  uiconf codes [-lang en|ja]")
}

type limits struct {
	depth int
	bytes int64
	lang  string
}

func (l *limits) register(fs *flag.FlagSet) {
	fs.IntVar(&l.depth, "max-depth", 0, "maximum nesting depth (0 disables)")
	fs.Int64Var(&l.bytes, "max-bytes", 0, "maximum document size in bytes (0 disables)")
	fs.StringVar(&l.lang, "lang", "en", "message language (en or ja)")
}

func (l *limits) options(logger *slog.Logger) uiconf.Options {
	i18n.SetLanguage(l.lang)
	return uiconf.Options{MaxDepth: l.depth, MaxBytes: l.bytes, Logger: logger}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// checkCmd parses every file and reports the first error of each.
func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var lim limits
	var verbose bool
	lim.register(fs)
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	logger := newLogger(verbose)
	opt := lim.options(logger)
	failed := 0
	for _, path := range fs.Args() {
		root, err := uiconf.ParseFile(path, opt)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		n := 0
		root.Window.Content.Walk(func(model.Widget) { n++ })
		logger.Debug("document ok", "file", path, "widgets", n)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// renderCmd draws the document headlessly and prints the recorded frames.
func renderCmd(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var lim limits
	var storePath, clicks, format, save string
	var frames int
	var verbose bool
	lim.register(fs)
	fs.StringVar(&storePath, "store", "", "data store file (.json, .yaml or .yml)")
	fs.StringVar(&clicks, "click", "", "comma-separated widget names clicked in the first frame")
	fs.IntVar(&frames, "frames", 1, "number of frames to draw")
	fs.StringVar(&format, "format", "json", "output format (json or yaml)")
	fs.StringVar(&save, "save", "", "write the data store here after the last frame")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	if fs.NArg() != 1 || frames < 1 {
		fs.Usage()
		os.Exit(2)
	}
	logger := newLogger(verbose)
	root, err := uiconf.ParseFile(fs.Arg(0), lim.options(logger))
	if err != nil {
		fatalf("%s: %v", fs.Arg(0), err)
	}

	store := datastore.NewMap()
	if storePath != "" {
		if store, err = datastore.Load(storePath); err != nil {
			fatalf("store: %v", err)
		}
	}

	rec := render.NewRecorder()
	for _, name := range splitCSV(clicks) {
		rec.On(name, render.Interaction{Clicked: true})
	}
	var out [][]render.Frame
	for i := 0; i < frames; i++ {
		rec.Reset()
		render.Show(rec, &root.Window, store)
		out = append(out, append([]render.Frame(nil), rec.Frames...))
		logger.Debug("frame drawn", "frame", i, "calls", len(rec.Frames))
	}

	if err := write(os.Stdout, format, out); err != nil {
		fatalf("output: %v", err)
	}
	if save != "" {
		if err := saveStore(save, store); err != nil {
			fatalf("save: %v", err)
		}
	}
}

// codesCmd lists the error codes with their localized headlines.
func codesCmd(args []string) {
	fs := flag.NewFlagSet("codes", flag.ExitOnError)
	var lang string
	fs.StringVar(&lang, "lang", "en", "message language (en or ja)")
	_ = fs.Parse(args)
	i18n.SetLanguage(lang)
	for _, code := range reader.Codes {
		fmt.Printf("%-22s %s\n", code, i18n.T(code, nil))
	}
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func saveStore(path string, store *datastore.Map) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(store)
	} else {
		data, err = json.MarshalIndent(store, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func jsonString(s string) (string, error) {
	b, err := json.Marshal(s)
	return string(b), err
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
