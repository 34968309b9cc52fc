package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindNullInNonNullable         Kind = "null_in_non_nullable"
	KindTypeMismatch              Kind = "type_mismatch"
	KindUnknownEnumValue          Kind = "unknown_enum_value"
	KindInvalidCharLiteral        Kind = "invalid_char_literal"
	KindArrayDecodeFailure        Kind = "array_decode_failure"
	KindMalformedEmbeddedDocument Kind = "malformed_embedded_document"
	KindTemporalParseFailure      Kind = "temporal_parse_failure"
	KindColumnOutOfRange          Kind = "column_out_of_range"
	KindInvalidSchema             Kind = "invalid_schema"
	KindRowRead                   Kind = "row_read"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Kind     Kind
	Expected string
	Label    string
	Detail   string
	Path     []string
	Column   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("[decode] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Column > 0 {
		b.WriteString(" (column ")
		b.WriteString(strconv.Itoa(e.Column))
		if e.Label != "" {
			b.WriteString(" ")
			b.WriteString(strconv.Quote(e.Label))
		}
		b.WriteByte(')')
	}

	if e.Expected != "" {
		b.WriteString(": expected ")
		b.WriteString(e.Expected)
	}

	if e.Detail != "" {
		if e.Expected != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is (or wraps) an Error of the given kind
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(kind Kind) *Builder {
	return &Builder{
		err: Error{
			Kind: kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Column sets the 1-indexed column position and its resolved label
func (b *Builder) Column(pos int, label string) *Builder {
	b.err.Column = pos
	b.err.Label = label
	return b
}

// Expected sets the expected target kind name
func (b *Builder) Expected(kind string) *Builder {
	b.err.Expected = kind
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NullInNonNullable creates an error for an absent value in a required field
func NullInNonNullable(path []string, column int, label, expected string) *Error {
	return &Error{
		Kind:     KindNullInNonNullable,
		Path:     path,
		Column:   column,
		Label:    label,
		Expected: expected,
		Detail:   "null value in non-nullable field",
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(path []string, expected string, value any) *Error {
	return &Error{
		Kind:     KindTypeMismatch,
		Path:     path,
		Expected: expected,
		Value:    value,
		Detail:   fmt.Sprintf("cannot represent %T value", value),
	}
}

// UnknownEnumValue creates an error for text matching no declared enum case
func UnknownEnumValue(path []string, text string, cases []string) *Error {
	return &Error{
		Kind:   KindUnknownEnumValue,
		Path:   path,
		Value:  text,
		Detail: fmt.Sprintf("%q is not one of [%s]", text, strings.Join(cases, ", ")),
	}
}

// InvalidCharLiteral creates an error for text that is not exactly one character
func InvalidCharLiteral(path []string, text string) *Error {
	return &Error{
		Kind:   KindInvalidCharLiteral,
		Path:   path,
		Value:  text,
		Detail: fmt.Sprintf("%q is not a single character", text),
	}
}

// ArrayDecodeFailure creates an error for array materialization or release failure
func ArrayDecodeFailure(path []string, cause error) *Error {
	return &Error{
		Kind:   KindArrayDecodeFailure,
		Path:   path,
		Cause:  cause,
		Detail: "cannot materialize array column",
	}
}

// MalformedEmbeddedDocument creates an error for unparseable embedded text
func MalformedEmbeddedDocument(path []string, cause error) *Error {
	return &Error{
		Kind:  KindMalformedEmbeddedDocument,
		Path:  path,
		Cause: cause,
	}
}

// TemporalParseFailure creates an error for timestamp text that cannot be normalized
func TemporalParseFailure(path []string, text string, cause error) *Error {
	return &Error{
		Kind:   KindTemporalParseFailure,
		Path:   path,
		Value:  text,
		Cause:  cause,
		Detail: fmt.Sprintf("cannot parse %q as timestamp", text),
	}
}

// ColumnOutOfRange creates an error for a cursor position past the row's width
func ColumnOutOfRange(path []string, column, count int) *Error {
	return &Error{
		Kind:   KindColumnOutOfRange,
		Path:   path,
		Column: column,
		Detail: fmt.Sprintf("column %d out of range (row has %d columns)", column, count),
	}
}

// InvalidSchema creates an error for a malformed schema descriptor
func InvalidSchema(detail string, args ...any) *Error {
	return &Error{
		Kind:   KindInvalidSchema,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// RowRead wraps a row-source read failure
func RowRead(path []string, column int, cause error) *Error {
	return &Error{
		Kind:   KindRowRead,
		Path:   path,
		Column: column,
		Cause:  cause,
		Detail: "row source read failed",
	}
}
