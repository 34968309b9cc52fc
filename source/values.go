package source

import "fmt"

// MemRow is an in-memory Row over a value slice. Labels and type names
// are optional; absent labels make Label fail, exercising the synthetic
// label path in callers.
type MemRow struct {
	vals   []any
	labels []string
	types  []string
}

// MemOption configures a MemRow.
type MemOption func(*MemRow)

// WithLabels sets column display names, positionally.
func WithLabels(labels ...string) MemOption {
	return func(r *MemRow) { r.labels = labels }
}

// WithTypeNames sets declared source type names, positionally.
func WithTypeNames(types ...string) MemOption {
	return func(r *MemRow) { r.types = types }
}

// FromValues builds an in-memory row. A nil element is a NULL column.
func FromValues(vals []any, opts ...MemOption) *MemRow {
	r := &MemRow{vals: vals}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemRow) ColumnCount() int {
	return len(r.vals)
}

func (r *MemRow) Value(i int) (any, bool, error) {
	if i < 1 || i > len(r.vals) {
		return nil, false, fmt.Errorf("column %d out of range (1..%d)", i, len(r.vals))
	}
	v := r.vals[i-1]
	return v, v == nil, nil
}

func (r *MemRow) Label(i int) (string, error) {
	if i < 1 || i > len(r.labels) {
		return "", fmt.Errorf("no label for column %d", i)
	}
	return r.labels[i-1], nil
}

func (r *MemRow) TypeName(i int) string {
	if i < 1 || i > len(r.types) {
		return ""
	}
	return r.types[i-1]
}

func (r *MemRow) Array(i int) (ArrayValue, error) {
	v, _, err := r.Value(i)
	if err != nil {
		return nil, err
	}
	return arrayFromValue(v)
}

// MemRows iterates a slice of in-memory rows.
type MemRows struct {
	rows []*MemRow
	pos  int
}

// FromRows builds a Rows iterator over pre-built in-memory rows.
func FromRows(rows ...*MemRow) *MemRows {
	return &MemRows{rows: rows}
}

func (m *MemRows) Next() bool {
	if m.pos >= len(m.rows) {
		return false
	}
	m.pos++
	return true
}

func (m *MemRows) Row() (Row, error) {
	if m.pos == 0 || m.pos > len(m.rows) {
		return nil, fmt.Errorf("Row called without a successful Next")
	}
	return m.rows[m.pos-1], nil
}

func (m *MemRows) Err() error   { return nil }
func (m *MemRows) Close() error { return nil }
