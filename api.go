package uiconf

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reoring/uiconf/binding"
	"github.com/reoring/uiconf/model"
	"github.com/reoring/uiconf/reader"
)

// Options configures parsing. The zero value applies no limits, assigns
// widget identifiers with model.HashLabels and logs to slog.Default().
type Options struct {
	// MaxDepth limits container nesting below the document root; braces
	// around the whole document do not count (0 disables).
	MaxDepth int
	// MaxBytes limits the document size (0 disables).
	MaxBytes int64
	// Labels turns widget names into identifiers.
	Labels model.LabelParser
	// Logger receives identifier warnings during Parse. When set it is also
	// installed with binding.SetLogger, which is process-wide: binding
	// warnings of every document, including ones parsed earlier, go to the
	// most recently installed logger. Leave it nil and call binding.SetLogger
	// once when several documents share a process.
	Logger *slog.Logger
}

func resolveOptions(opts []Options) Options {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Labels == nil {
		opt.Labels = model.HashLabels
	}
	return opt
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Parse decodes a document and assigns widget identifiers. When several
// Options are given the last one wins. Errors are *reader.Error.
func Parse(data []byte, opts ...Options) (*model.Root, error) {
	opt := resolveOptions(opts)
	if opt.Logger != nil {
		binding.SetLogger(opt.Logger)
	}
	r, err := reader.Parse(data, reader.Options{MaxDepth: opt.MaxDepth, MaxBytes: opt.MaxBytes})
	if err != nil {
		return nil, err
	}
	root, err := model.ReadRoot(r)
	if err != nil {
		return nil, err
	}
	root.Window.AssignIDs(opt.Labels, opt.logger())
	return root, nil
}

// ParseReader reads the whole of rd and parses it. With MaxBytes set, at most
// MaxBytes+1 bytes are read so oversized input is rejected without buffering
// all of it.
func ParseReader(rd io.Reader, opts ...Options) (*model.Root, error) {
	opt := resolveOptions(opts)
	if opt.MaxBytes > 0 {
		rd = io.LimitReader(rd, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("uiconf: read: %w", err)
	}
	return Parse(data, opt)
}

// ParseFile parses the document stored at path.
func ParseFile(path string, opts ...Options) (*model.Root, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("uiconf: %w", err)
	}
	defer f.Close()
	return ParseReader(f, opts...)
}
