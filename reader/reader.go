package reader

import (
	"errors"
	"iter"

	"github.com/reoring/uiconf/internal/tape"
)

// Options controls input limits applied while tokenizing a document.
type Options struct {
	MaxDepth int
	MaxBytes int64
}

// Reader is an immutable view over one node of a parsed tape plus the path
// leading to it. Readers are cheap values; children never outlive the tape
// they were read from.
type Reader struct {
	tape *tape.Tape
	idx  int
	path Path
}

// Parse tokenizes data and returns a Reader positioned at the root object.
// Tokenizer failures are reported as parse_error.
func Parse(data []byte, opt Options) (Reader, error) {
	t, err := tape.Parse(data, tape.Options{MaxDepth: opt.MaxDepth, MaxBytes: opt.MaxBytes})
	if err != nil {
		var te *tape.Error
		if errors.As(err, &te) {
			return Reader{}, &Error{Code: CodeParseError, Cause: te}
		}
		return Reader{}, err
	}
	return Reader{tape: t}, nil
}

func (r Reader) token() tape.Token { return r.tape.Token(r.idx) }

// Path returns the segments from the root to this node.
func (r Reader) Path() Path { return r.path }

// TokenType names the kind of the underlying token for diagnostics.
func (r Reader) TokenType() string { return r.token().Kind.String() }

// IsScalar reports whether the node is a quoted or unquoted leaf.
func (r Reader) IsScalar() bool {
	k := r.token().Kind
	return k == tape.KindQuoted || k == tape.KindUnquoted
}

// IsUnquoted reports whether the node is an unquoted leaf.
func (r Reader) IsUnquoted() bool { return r.token().Kind == tape.KindUnquoted }

// IsObject reports whether the node is a container holding keyed entries.
func (r Reader) IsObject() bool { return r.token().Kind == tape.KindObject }

// IsContainer reports whether the node is a container of any shape.
func (r Reader) IsContainer() bool { return r.token().Kind.IsContainer() }

// ReadScalar returns the leaf token, or InvalidType for containers.
func (r Reader) ReadScalar() (Scalar, error) {
	tok := r.token()
	switch tok.Kind {
	case tape.KindQuoted:
		return Scalar{text: tok.Text, quoted: true}, nil
	case tape.KindUnquoted:
		return Scalar{text: tok.Text}, nil
	}
	return Scalar{}, InvalidType(r, r.TokenType(), "scalar")
}

// ReadString returns the text of a leaf token.
func (r Reader) ReadString() (string, error) {
	s, err := r.ReadScalar()
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// ReadObject iterates over the keyed entries of an object (arrays are
// accepted as field lists too). Inline operators other than `=` and trailing
// un-keyed values are rejected before anything is yielded.
func (r Reader) ReadObject() (iter.Seq2[string, Reader], error) {
	tok := r.token()
	if tok.Kind != tape.KindObject && tok.Kind != tape.KindArray {
		return nil, InvalidType(r, r.TokenType(), "object")
	}
	split := tok.Split
	if tok.Kind == tape.KindArray {
		split = r.idx + 1
	}
	for i := r.idx + 1; i < split; {
		i++ // key
		if op := r.tape.Token(i); op.Kind == tape.KindOperator {
			return nil, &Error{Code: CodeUnexpectedOperator, Path: r.path, Actual: op.Op.String()}
		}
		i = r.tape.Next(i)
	}
	if split < tok.End {
		rem := r.tape.Token(split)
		text := ""
		if !rem.Kind.IsContainer() {
			text = rem.Text
		}
		return nil, &Error{Code: CodeUnexpectedRemainder, Path: r.path, Actual: text}
	}
	return func(yield func(string, Reader) bool) {
		for i := r.idx + 1; i < split; {
			key := r.tape.Token(i).Text
			v := i + 1
			if !yield(key, Reader{tape: r.tape, idx: v, path: r.path.Field(key)}) {
				return
			}
			i = r.tape.Next(v)
		}
	}, nil
}

// ReadArray iterates over the positional children of a container. Objects
// are accepted and yield key, value, key, value, ... in order.
func (r Reader) ReadArray() (iter.Seq[Reader], error) {
	tok := r.token()
	if tok.Kind != tape.KindObject && tok.Kind != tape.KindArray {
		return nil, InvalidType(r, r.TokenType(), "array")
	}
	return func(yield func(Reader) bool) {
		n := 0
		for i := r.idx + 1; i < tok.End; i = r.tape.Next(i) {
			if r.tape.Token(i).Kind == tape.KindOperator {
				continue
			}
			if !yield(Reader{tape: r.tape, idx: i, path: r.path.Index(n)}) {
				return
			}
			n++
		}
	}, nil
}

// Len returns the number of positional children ReadArray would yield, or 0
// for scalars.
func (r Reader) Len() int {
	seq, err := r.ReadArray()
	if err != nil {
		return 0
	}
	n := 0
	for range seq {
		n++
	}
	return n
}
