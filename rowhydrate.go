package rowhydrate

import (
	"github.com/rowgraph/rowhydrate/decode"
	"github.com/rowgraph/rowhydrate/schema"
	"github.com/rowgraph/rowhydrate/source"
)

// Re-exports so simple callers need only the root package.

type Schema = schema.Schema
type Field = schema.Field
type Kind = schema.Kind

type Row = source.Row
type ArrayValue = source.ArrayValue

type Decoder = decode.Decoder
type Option = decode.Option

// DecodeOne decodes exactly one row into one value, starting at column 1
// unless overridden.
func DecodeOne(s *schema.Schema, row source.Row, opts ...decode.Option) (map[string]any, error) {
	return decode.DecodeOne(s, row, opts...)
}

// NewDecoder builds a reusable decoder.
func NewDecoder(opts ...decode.Option) *decode.Decoder {
	return decode.NewDecoder(opts...)
}

// Width returns the number of physical columns a schema consumes.
func Width(s *schema.Schema) int {
	return schema.Width(s)
}
