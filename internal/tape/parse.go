package tape

import (
	"fmt"
	"strings"
)

// Options controls input limits applied while building a tape.
type Options struct {
	// MaxDepth limits container nesting below the root (0 disables).
	MaxDepth int
	// MaxBytes limits the accepted input size (0 disables).
	MaxBytes int64
}

// Error reports a lexical or structural failure together with its location.
type Error struct {
	Offset int64
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Line, e.Column)
}

func newError(src string, offset int64, msg string) *Error {
	if offset > int64(len(src)) {
		offset = int64(len(src))
	}
	before := src[:offset]
	line := strings.Count(before, "\n") + 1
	col := int(offset) - strings.LastIndexByte(before, '\n')
	return &Error{Offset: offset, Line: line, Column: col, Msg: msg}
}

// Parse tokenizes data into a Tape. The whole input is treated as the body of
// an implicit root object; an input consisting of exactly one bare container
// is unwrapped so that `{ a = b }` and `a = b` produce the same tape.
func Parse(data []byte, opt Options) (*Tape, error) {
	src := string(data)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, newError(src, opt.MaxBytes, "max bytes exceeded")
	}
	b := &builder{lx: newLexer(src), src: src, opt: opt, deepAt: -1}
	if err := b.container(false, 0); err != nil {
		return nil, err
	}
	t, unwrapped := unwrap(&Tape{tokens: b.tokens})
	// An unwrapped outer container does not count towards MaxDepth.
	if !unwrapped && b.deepAt >= 0 {
		return nil, newError(src, b.deepAt, "max depth exceeded")
	}
	return t, nil
}

type builder struct {
	lx     *lexer
	src    string
	opt    Options
	tokens []Token
	depth  int
	// deepAt is the offset of the first container nested deeper than
	// MaxDepth, or -1.
	deepAt int64
}

// container reads entries until the matching `}` (or EOF for the root) and
// classifies the container once all entries are known.
func (b *builder) container(closing bool, offset int64) error {
	idx := len(b.tokens)
	b.tokens = append(b.tokens, Token{Kind: KindArray, Offset: offset})

	keyed, bare, mixed := false, false, false
	split := -1
	for {
		lx, err := b.lx.next()
		if err != nil {
			return err
		}
		switch lx.kind {
		case lexEOF:
			if closing {
				return newError(b.src, offset, "unterminated container")
			}
			return b.finish(idx, keyed, mixed, split)
		case lexClose:
			if !closing {
				return newError(b.src, lx.offset, "unexpected '}'")
			}
			return b.finish(idx, keyed, mixed, split)
		case lexOperator:
			return newError(b.src, lx.offset, fmt.Sprintf("operator `%s` without a key", lx.op))
		}

		entry := len(b.tokens)
		if err := b.value(lx); err != nil {
			return err
		}
		nx, err := b.lx.peek()
		if err != nil {
			return err
		}
		if nx.kind != lexOperator {
			if split < 0 {
				split = entry
			}
			bare = true
			continue
		}
		_, _ = b.lx.next()
		if b.tokens[entry].Kind.IsContainer() {
			return newError(b.src, lx.offset, "container used as a key")
		}
		if bare {
			mixed = true
		}
		keyed = true
		if nx.op != OpEqual {
			b.tokens = append(b.tokens, Token{Kind: KindOperator, Op: nx.op, Offset: nx.offset})
		}
		vx, err := b.lx.next()
		if err != nil {
			return err
		}
		switch vx.kind {
		case lexOpen, lexUnquoted, lexQuoted:
		default:
			return newError(b.src, nx.offset, fmt.Sprintf("missing value after `%s`", nx.op))
		}
		if err := b.value(vx); err != nil {
			return err
		}
	}
}

func (b *builder) value(lx lexeme) error {
	switch lx.kind {
	case lexOpen:
		b.depth++
		if limit := b.opt.MaxDepth; limit > 0 && b.depth > limit {
			if b.depth > limit+1 {
				return newError(b.src, lx.offset, "max depth exceeded")
			}
			if b.deepAt < 0 {
				b.deepAt = lx.offset
			}
		}
		if err := b.container(true, lx.offset); err != nil {
			return err
		}
		b.depth--
	case lexUnquoted:
		b.tokens = append(b.tokens, Token{Kind: KindUnquoted, Text: lx.text, Offset: lx.offset})
	case lexQuoted:
		b.tokens = append(b.tokens, Token{Kind: KindQuoted, Text: lx.text, Offset: lx.offset})
	}
	return nil
}

func (b *builder) finish(idx int, keyed, mixed bool, split int) error {
	end := len(b.tokens)
	b.tokens = append(b.tokens, Token{Kind: KindEnd, Offset: b.tokens[idx].Offset})
	tok := &b.tokens[idx]
	switch {
	case mixed:
		tok.Kind = KindMixed
	case keyed:
		tok.Kind = KindObject
	default:
		tok.Kind = KindArray
	}
	tok.End = end
	tok.Split = end
	if tok.Kind == KindObject && split >= 0 {
		tok.Split = split
	}
	return nil
}

// unwrap drops the implicit root when it holds nothing but one bare container
// and reports whether it did.
func unwrap(t *Tape) (*Tape, bool) {
	root := t.tokens[0]
	if root.Kind != KindArray || len(t.tokens) < 3 {
		return t, false
	}
	inner := t.tokens[1]
	if !inner.Kind.IsContainer() || inner.End != root.End-1 {
		return t, false
	}
	out := make([]Token, 0, len(t.tokens)-2)
	for _, tok := range t.tokens[1:root.End] {
		if tok.Kind.IsContainer() {
			tok.End--
			tok.Split--
		}
		out = append(out, tok)
	}
	return &Tape{tokens: out}, true
}
