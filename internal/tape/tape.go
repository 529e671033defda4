package tape

import "fmt"

// Kind represents the kind of a token on the tape.
type Kind int

const (
	// KindArray is a container whose entries are all bare values. The empty
	// container `{}` is an array.
	KindArray Kind = iota
	// KindObject is a container of `key op value` entries, optionally
	// followed by trailing bare values (the remainder).
	KindObject
	// KindMixed is a container where keyed entries follow bare values.
	KindMixed
	KindUnquoted
	KindQuoted
	KindOperator
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindMixed:
		return "mixed container"
	case KindUnquoted:
		return "unquoted scalar"
	case KindQuoted:
		return "quoted scalar"
	case KindOperator:
		return "operator"
	case KindEnd:
		return "end"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsContainer reports whether tokens of this kind open a container.
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindObject || k == KindMixed
}

// Operator is an inline operator between a key and its value.
type Operator int

const (
	OpEqual Operator = iota
	OpExact
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpExists
)

func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "="
	case OpExact:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpExists:
		return "?="
	default:
		return "?"
	}
}

// Token is a single entry on the tape.
//
// Containers are laid out flat: the container token is followed by its
// entries and closed by a KindEnd token whose index is stored in End. Object
// entries are `key [operator] value`; the operator token is only present when
// it is not `=`. Split marks the first trailing bare value of an object and
// equals End when there is none.
type Token struct {
	Kind   Kind
	Text   string
	Op     Operator
	End    int
	Split  int
	Offset int64
}

// Tape is the flat token sequence of one parsed document. Index 0 is always
// the root container.
type Tape struct {
	tokens []Token
}

// Len returns the number of tokens on the tape.
func (t *Tape) Len() int { return len(t.tokens) }

// Token returns the token at index i.
func (t *Tape) Token(i int) Token { return t.tokens[i] }

// Next returns the index of the first token after the value starting at i.
func (t *Tape) Next(i int) int {
	tok := t.tokens[i]
	if tok.Kind.IsContainer() {
		return tok.End + 1
	}
	return i + 1
}
