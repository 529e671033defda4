package tape

import (
	"strings"
)

type lexKind int

const (
	lexEOF lexKind = iota
	lexOpen
	lexClose
	lexOperator
	lexUnquoted
	lexQuoted
)

type lexeme struct {
	kind   lexKind
	text   string
	op     Operator
	offset int64
}

type lexer struct {
	src    string
	pos    int
	peeked *lexeme
}

func newLexer(src string) *lexer { return &lexer{src: src} }

func (l *lexer) peek() (lexeme, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	lx, err := l.scan()
	if err != nil {
		return lexeme{}, err
	}
	l.peeked = &lx
	return lx, nil
}

func (l *lexer) next() (lexeme, error) {
	if l.peeked != nil {
		lx := *l.peeked
		l.peeked = nil
		return lx, nil
	}
	return l.scan()
}

func (l *lexer) scan() (lexeme, error) {
	l.skipSpaceAndComments()
	if l.pos >= len(l.src) {
		return lexeme{kind: lexEOF, offset: int64(l.pos)}, nil
	}
	start := l.pos
	c := l.src[l.pos]
	switch c {
	case '{':
		l.pos++
		return lexeme{kind: lexOpen, offset: int64(start)}, nil
	case '}':
		l.pos++
		return lexeme{kind: lexClose, offset: int64(start)}, nil
	case '"':
		return l.scanQuoted()
	}
	if op, n, ok := l.operatorAt(l.pos); ok {
		l.pos += n
		return lexeme{kind: lexOperator, op: op, offset: int64(start)}, nil
	}
	for l.pos < len(l.src) {
		if isDelimiter(l.src[l.pos]) {
			break
		}
		if _, _, ok := l.operatorAt(l.pos); ok {
			break
		}
		l.pos++
	}
	return lexeme{kind: lexUnquoted, text: l.src[start:l.pos], offset: int64(start)}, nil
}

func (l *lexer) scanQuoted() (lexeme, error) {
	start := l.pos
	l.pos++ // opening quote
	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '"':
			l.pos++
			return lexeme{kind: lexQuoted, text: b.String(), offset: int64(start)}, nil
		case '\\':
			if l.pos+1 < len(l.src) {
				switch l.src[l.pos+1] {
				case '"', '\\':
					b.WriteByte(l.src[l.pos+1])
					l.pos += 2
					continue
				case 'n':
					b.WriteByte('\n')
					l.pos += 2
					continue
				case 't':
					b.WriteByte('\t')
					l.pos += 2
					continue
				}
			}
		}
		b.WriteByte(c)
		l.pos++
	}
	return lexeme{}, newError(l.src, int64(start), "unterminated quoted scalar")
}

// operatorAt reports the operator starting at byte i, if any. `!` and `?`
// only start an operator when followed by `=`.
func (l *lexer) operatorAt(i int) (Operator, int, bool) {
	next := byte(0)
	if i+1 < len(l.src) {
		next = l.src[i+1]
	}
	switch l.src[i] {
	case '=':
		if next == '=' {
			return OpExact, 2, true
		}
		return OpEqual, 1, true
	case '<':
		if next == '=' {
			return OpLessEqual, 2, true
		}
		return OpLess, 1, true
	case '>':
		if next == '=' {
			return OpGreaterEqual, 2, true
		}
		return OpGreater, 1, true
	case '!':
		if next == '=' {
			return OpNotEqual, 2, true
		}
	case '?':
		if next == '=' {
			return OpExists, 2, true
		}
	}
	return 0, 0, false
}

func (l *lexer) skipSpaceAndComments() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case isSpace(c):
			l.pos++
		default:
			return
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v', ';':
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case '{', '}', '"', '#':
		return true
	}
	return isSpace(c)
}
