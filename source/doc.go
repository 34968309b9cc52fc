// Package source defines the row boundary the decoder consumes, plus
// adapters for common row producers.
//
// A Row is an ordered, 1-indexed sequence of columns from one result
// record. Each column exposes a raw value together with a was-null flag
// (some backends report a zero-like default value and a separate absence
// flag), a best-effort display label, a declared source type name used
// only for diagnostics, and a native array handle accessor.
//
// The row is lent to the decoder for the duration of one decode call;
// the decoder never outlives it and never reads it concurrently.
//
// # Adapters
//
//   - FromValues: in-memory row over a []any, for tests and harnesses
//   - WrapSQL: database/sql result sets, one Row view per scanned record
//   - SliceArray / TextArray: array handles over Go slices and Postgres
//     text-format array literals
package source
