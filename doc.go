// Package rowhydrate decodes tabular database result rows into nested,
// statically-described object graphs without runtime reflection.
//
// The engine walks a schema-time description of the target shape and
// consumes row columns in strict left-to-right order through a single
// forward-only cursor shared across recursive calls:
//
//	┌────────────────────────────────────────────────────────────┐
//	│ Row columns ──[cursor]──> Decoder ──> nested object graph │
//	└────────────────────────────────────────────────────────────┘
//
// # Column Model
//
// Every schema has a static column width, computable before any data is
// read:
//
//	Shape               Columns
//	───────────────────────────
//	primitive           1
//	enum                1
//	list                1
//	embedded document   1
//	nested shape        sum of its fields
//
// A nested shape spreads across contiguous columns; an embedded document
// packs its whole child shape into one column of document text, decoded
// in an independent pass that never touches the row cursor. Before an
// optional nested shape is decoded, its full column range is peeked: if
// every column is absent the value is null and the range is skipped.
//
// # Key Packages
//
//	schema  - field descriptors, structural kinds, width calculation
//	source  - the Row boundary and adapters (database/sql, in-memory)
//	decode  - the orchestrating row decoder
//	session - query execution with per-row decode isolation
//	query   - canonical value to driver parameter binding
//	errors  - structured decode errors with field and column context
//
// # Decoding Flow
//
//	sch := schema.New(
//		schema.F("id", schema.KindInt64),
//		schema.Group("owner", schema.New(
//			schema.F("name", schema.KindString),
//		)).Opt(),
//	)
//	value, err := rowhydrate.DecodeOne(sch, row)
//
// # Error Handling
//
// Any leaf failure aborts the current row's decode; no partial object is
// returned. Errors carry the field path, column position, and a resolved
// or synthetic column label:
//
//	[decode] null_in_non_nullable at owner.name (column 2 "name"): expected string
//
// Failures are per-row: when decoding a multi-row result through
// session.Session, one row's failure leaves the other rows intact.
//
// # Thread Safety
//
// Decoders and sessions maintain internal state and are NOT safe for
// concurrent use. Schemas are immutable after construction and may be
// shared freely.
package rowhydrate
