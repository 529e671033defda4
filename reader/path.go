package reader

import (
	"strconv"
	"strings"
)

// Path lists the keys and indices leading from the document root to a node.
// It is only used to localize diagnostics.
type Path []string

// Field returns a new path extended by the key name.
func (p Path) Field(name string) Path {
	return append(append(Path{}, p...), name)
}

// Index returns a new path extended by a positional segment.
func (p Path) Index(i int) Path {
	return append(append(Path{}, p...), strconv.Itoa(i))
}

// String renders the path dotted (window.button.text); the root is "(root)".
func (p Path) String() string {
	if len(p) == 0 {
		return "(root)"
	}
	return strings.Join(p, ".")
}
