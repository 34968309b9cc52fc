package source

import (
	"database/sql"
	"fmt"
)

// SQLRows wraps a *sql.Rows as a Rows iterator, producing one Row view
// per scanned record. Column metadata is fetched once and cached.
type SQLRows struct {
	rows *sql.Rows
	cols []*sql.ColumnType
	vals []any
	ptrs []any
}

// WrapSQL adapts a database/sql result set.
func WrapSQL(rows *sql.Rows) *SQLRows {
	return &SQLRows{rows: rows}
}

func (s *SQLRows) Next() bool {
	return s.rows.Next()
}

// Row scans the current record and returns a view over it. The view is
// valid until the next call to Next.
func (s *SQLRows) Row() (Row, error) {
	if s.cols == nil {
		cols, err := s.rows.ColumnTypes()
		if err != nil {
			return nil, err
		}
		s.cols = cols
		s.vals = make([]any, len(cols))
		s.ptrs = make([]any, len(cols))
	}
	for i := range s.vals {
		s.ptrs[i] = &s.vals[i]
	}
	if err := s.rows.Scan(s.ptrs...); err != nil {
		return nil, err
	}
	return &sqlRow{vals: s.vals, cols: s.cols}, nil
}

func (s *SQLRows) Err() error {
	return s.rows.Err()
}

func (s *SQLRows) Close() error {
	return s.rows.Close()
}

type sqlRow struct {
	vals []any
	cols []*sql.ColumnType
}

func (r *sqlRow) ColumnCount() int {
	return len(r.vals)
}

func (r *sqlRow) Value(i int) (any, bool, error) {
	if i < 1 || i > len(r.vals) {
		return nil, false, fmt.Errorf("column %d out of range (1..%d)", i, len(r.vals))
	}
	v := r.vals[i-1]
	return v, v == nil, nil
}

func (r *sqlRow) Label(i int) (string, error) {
	if i < 1 || i > len(r.cols) {
		return "", fmt.Errorf("no metadata for column %d", i)
	}
	name := r.cols[i-1].Name()
	if name == "" {
		return "", fmt.Errorf("driver reports no name for column %d", i)
	}
	return name, nil
}

func (r *sqlRow) TypeName(i int) string {
	if i < 1 || i > len(r.cols) {
		return ""
	}
	return r.cols[i-1].DatabaseTypeName()
}

func (r *sqlRow) Array(i int) (ArrayValue, error) {
	v, _, err := r.Value(i)
	if err != nil {
		return nil, err
	}
	return arrayFromValue(v)
}
