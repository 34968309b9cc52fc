// Package decode converts one tabular result row into a nested, typed
// object graph driven by a schema descriptor, without reflection.
//
// The decoder walks the schema in field order, consuming row columns
// strictly left to right through a single forward-only cursor. Nested
// shapes recurse: a child walk starts at the parent's current column and
// reports its final position back, so sibling and parent structures never
// mis-align. Before a nested optional shape is decoded, its whole column
// range is peeked; if every column in the range is absent the value is
// null and the cursor skips the range without further reads.
//
// Lists and embedded documents, however internally complex, occupy exactly
// one physical column. Embedded document text is parsed in a fully
// independent pass that never touches the row cursor.
//
// # Decoding Flow
//
//  1. NewDecoder(opts...) — configure start column, embedded parser, logging
//  2. Decoder.DecodeOne(schema, row) → map[string]any
//
// Leaf values decode to canonical Go types: int8..int64, float32/64,
// string, rune, bool, []byte, time.Time, decimal.Decimal, []string for
// lists, and nested map[string]any for shapes and documents.
//
// # Failure Semantics
//
// Any leaf failure aborts the whole decode of the current row; no partial
// object is returned and nothing is retried. Errors carry the field path,
// column position, and a resolved (or synthetic) column label.
//
// # Thread Safety
//
// A Decoder maintains internal caches and is NOT safe for concurrent use.
// Use separate instances per goroutine.
package decode
