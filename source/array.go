package source

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// pgMap resolves Postgres wire representations. Safe for concurrent use.
var pgMap = pgtype.NewMap()

// SliceArray is an array handle over an in-memory element slice.
type SliceArray struct {
	elems    []any
	released bool
}

// NewSliceArray wraps elements as an array handle. A nil element is a
// NULL array member.
func NewSliceArray(elems []any) *SliceArray {
	return &SliceArray{elems: elems}
}

func (a *SliceArray) Materialize() ([]any, error) {
	if a.released {
		return nil, fmt.Errorf("array handle already released")
	}
	return a.elems, nil
}

func (a *SliceArray) Release() error {
	a.released = true
	a.elems = nil
	return nil
}

// Released reports whether the handle has been released.
func (a *SliceArray) Released() bool {
	return a.released
}

// TextArray is an array handle over a Postgres text-format array literal
// such as {a,NULL,c}. Materialization parses the literal with pgtype.
type TextArray struct {
	src      []byte
	released bool
}

// NewTextArray wraps a text-format array literal as an array handle.
func NewTextArray(src []byte) *TextArray {
	return &TextArray{src: src}
}

func (a *TextArray) Materialize() ([]any, error) {
	if a.released {
		return nil, fmt.Errorf("array handle already released")
	}
	var elems []*string
	if err := pgMap.Scan(pgtype.TextArrayOID, pgtype.TextFormatCode, a.src, &elems); err != nil {
		return nil, fmt.Errorf("parse array literal: %w", err)
	}
	out := make([]any, len(elems))
	for i, e := range elems {
		if e == nil {
			continue
		}
		out[i] = *e
	}
	return out, nil
}

func (a *TextArray) Release() error {
	a.released = true
	a.src = nil
	return nil
}

// Released reports whether the handle has been released.
func (a *TextArray) Released() bool {
	return a.released
}

// arrayFromValue adapts a raw column value into an array handle. A NULL
// column yields a nil handle, not an error.
func arrayFromValue(v any) (ArrayValue, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case ArrayValue:
		return v, nil
	case []any:
		return NewSliceArray(v), nil
	case []string:
		elems := make([]any, len(v))
		for i, s := range v {
			elems[i] = s
		}
		return NewSliceArray(elems), nil
	case string:
		return NewTextArray([]byte(v)), nil
	case []byte:
		return NewTextArray(v), nil
	default:
		return nil, fmt.Errorf("cannot treat %T as array column", v)
	}
}
