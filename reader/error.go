package reader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/uiconf/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType         = "invalid_type"
	CodeInvalidValue        = "invalid_value"
	CodeInvalidLength       = "invalid_length"
	CodeUnknownVariant      = "unknown_variant"
	CodeUnknownField        = "unknown_field"
	CodeDuplicateField      = "duplicate_field"
	CodeMissingField        = "missing_field"
	CodeUnexpectedOperator  = "unexpected_operator"
	CodeUnexpectedRemainder = "unexpected_remainder"
	CodeParseError          = "parse_error"
	// Cross-field rules such as the header-before-body ordering.
	CodeCustom = "custom"
)

// Codes lists every error code in declaration order.
var Codes = []string{
	CodeInvalidType,
	CodeInvalidValue,
	CodeInvalidLength,
	CodeUnknownVariant,
	CodeUnknownField,
	CodeDuplicateField,
	CodeMissingField,
	CodeUnexpectedOperator,
	CodeUnexpectedRemainder,
	CodeParseError,
	CodeCustom,
}

// Error is the single failure type of a parse. It is terminal: no partial
// document accompanies it.
type Error struct {
	Code string
	Path Path
	// Actual is the offending token type, value, field name or operator.
	Actual string
	// Expected is a human-readable expectation.
	Expected string
	// Accepted carries the closed set for unknown_field and unknown_variant.
	Accepted []string
	// Message is used by custom errors.
	Message string
	// Cause is an optional underlying error (for example a tape error).
	Cause error
}

func (e *Error) Error() string {
	head := i18n.T(e.Code, nil)
	var body string
	switch e.Code {
	case CodeInvalidType, CodeInvalidValue, CodeInvalidLength:
		body = fmt.Sprintf("%s %s, expected %s", head, e.Actual, e.Expected)
	case CodeUnknownVariant:
		body = fmt.Sprintf("%s %s, expected one of %s", head, e.Actual, quoteList(e.Accepted))
	case CodeUnknownField:
		body = fmt.Sprintf("%s `%s`, expected one of %s", head, e.Actual, quoteList(e.Accepted))
	case CodeDuplicateField, CodeMissingField, CodeUnexpectedOperator, CodeUnexpectedRemainder:
		body = fmt.Sprintf("%s `%s`", head, e.Actual)
	case CodeParseError:
		body = fmt.Sprintf("%s: %v", head, e.Cause)
	default:
		body = e.Message
	}
	return fmt.Sprintf("%s (at %s)", body, e.Path)
}

func (e *Error) Unwrap() error { return e.Cause }

// AsError extracts *Error from an error using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func quoteList(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = "`" + n + "`"
	}
	return strings.Join(q, ", ")
}

// InvalidType reports a token shape mismatch.
func InvalidType(r Reader, actual, expected string) *Error {
	return &Error{Code: CodeInvalidType, Path: r.Path(), Actual: actual, Expected: expected}
}

// InvalidValue reports a value outside the accepted domain or grammar.
func InvalidValue(r Reader, actual, expected string) *Error {
	return &Error{Code: CodeInvalidValue, Path: r.Path(), Actual: actual, Expected: expected}
}

// InvalidLength reports an array arity mismatch.
func InvalidLength(r Reader, actual int, expected string) *Error {
	return &Error{Code: CodeInvalidLength, Path: r.Path(), Actual: fmt.Sprint(actual), Expected: expected}
}

func UnknownVariant(r Reader, actual string, accepted []string) *Error {
	return &Error{Code: CodeUnknownVariant, Path: r.Path(), Actual: actual, Accepted: accepted}
}

func UnknownField(r Reader, field string, accepted []string) *Error {
	return &Error{Code: CodeUnknownField, Path: r.Path(), Actual: field, Accepted: accepted}
}

func DuplicateField(r Reader, field string) *Error {
	return &Error{Code: CodeDuplicateField, Path: r.Path(), Actual: field}
}

func MissingField(r Reader, field string) *Error {
	return &Error{Code: CodeMissingField, Path: r.Path(), Actual: field}
}

// Custom reports a cross-field rule violation.
func Custom(r Reader, format string, args ...any) *Error {
	return &Error{Code: CodeCustom, Path: r.Path(), Message: fmt.Sprintf(format, args...)}
}
