package source

// Row is one record from a tabular query result. Columns are addressed
// by 1-indexed position. Implementations are not safe for concurrent use.
type Row interface {
	// ColumnCount returns the number of columns in the row.
	ColumnCount() int

	// Value returns the raw backend value at position i together with a
	// was-null flag. The flag is authoritative: a backend may report a
	// zero-like value and absence at the same time.
	Value(i int) (v any, wasNull bool, err error)

	// Label returns the column's display name. It is best-effort and may
	// fail; callers must substitute a synthetic label on error.
	Label(i int) (string, error)

	// TypeName returns the declared source type of the column. Used only
	// for diagnostics, never for dispatch.
	TypeName(i int) string

	// Array returns a native array handle for the column, or a nil handle
	// when the column is NULL. The caller owns a non-nil handle and must
	// release it.
	Array(i int) (ArrayValue, error)
}

// ArrayValue is a native array handle for one column. Materialize returns
// the underlying elements (nil elements represent SQL NULLs); Release
// frees the handle's backing resource. Release must be called exactly
// once, whether or not materialization succeeded.
type ArrayValue interface {
	Materialize() ([]any, error)
	Release() error
}

// Rows iterates a multi-row result, yielding one Row view per record.
type Rows interface {
	Next() bool
	Row() (Row, error)
	Err() error
	Close() error
}
