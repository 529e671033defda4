package reader

import (
	"strconv"
	"strings"
)

// Scalar is a leaf token of the tape.
type Scalar struct {
	text   string
	quoted bool
}

func (s Scalar) String() string { return s.text }

// Quoted reports whether the scalar was written in double quotes.
func (s Scalar) Quoted() bool { return s.quoted }

// Bool accepts yes/no/true/false, case-insensitively.
func (s Scalar) Bool() (bool, bool) {
	switch strings.ToLower(s.text) {
	case "yes", "true":
		return true, true
	case "no", "false":
		return false, true
	}
	return false, false
}

// Int64 parses an optionally signed base-10 integer.
func (s Scalar) Int64() (int64, bool) {
	v, err := strconv.ParseInt(s.text, 10, 64)
	return v, err == nil
}

// Uint64 parses an unsigned base-10 integer. A leading `+` is accepted.
func (s Scalar) Uint64() (uint64, bool) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s.text, "+"), 10, 64)
	return v, err == nil
}

// Float64 parses a decimal number such as 12, -0.5 or 1e3. Special values
// (inf, nan) and hexadecimal forms are rejected.
func (s Scalar) Float64() (float64, bool) {
	if !isDecimal(s.text) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s.text, 64)
	return v, err == nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	digits := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '+', c == '-', c == '.', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return digits
}
