package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemRow_Value(t *testing.T) {
	row := FromValues([]any{int64(1), "x", nil})

	assert.Equal(t, 3, row.ColumnCount())

	v, wasNull, err := row.Value(1)
	require.NoError(t, err)
	assert.False(t, wasNull)
	assert.Equal(t, int64(1), v)

	v, wasNull, err = row.Value(3)
	require.NoError(t, err)
	assert.True(t, wasNull)
	assert.Nil(t, v)

	_, _, err = row.Value(0)
	assert.Error(t, err, "positions are 1-indexed")
	_, _, err = row.Value(4)
	assert.Error(t, err)
}

func TestMemRow_Labels(t *testing.T) {
	plain := FromValues([]any{1, 2})
	_, err := plain.Label(1)
	assert.Error(t, err, "labels are best-effort and absent here")

	labelled := FromValues([]any{1, 2}, WithLabels("id", "count"), WithTypeNames("int8", "int4"))
	name, err := labelled.Label(2)
	require.NoError(t, err)
	assert.Equal(t, "count", name)
	assert.Equal(t, "int4", labelled.TypeName(2))
	assert.Equal(t, "", labelled.TypeName(5))
}

func TestMemRow_Array(t *testing.T) {
	row := FromValues([]any{
		[]string{"a", "b"},
		[]any{"x", nil},
		"{p,q}",
		42,
		nil,
	})

	av, err := row.Array(1)
	require.NoError(t, err)
	elems, err := av.Materialize()
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, elems)
	require.NoError(t, av.Release())

	av, err = row.Array(2)
	require.NoError(t, err)
	elems, err = av.Materialize()
	require.NoError(t, err)
	assert.Equal(t, []any{"x", nil}, elems)

	_, err = row.Array(4)
	assert.Error(t, err, "an int column is not an array")

	av, err = row.Array(5)
	require.NoError(t, err)
	assert.Nil(t, av, "a NULL column yields a nil handle")
}

func TestSliceArray_Release(t *testing.T) {
	a := NewSliceArray([]any{"a"})
	_, err := a.Materialize()
	require.NoError(t, err)
	require.NoError(t, a.Release())
	assert.True(t, a.Released())

	_, err = a.Materialize()
	assert.Error(t, err, "materialize after release must fail")
}

func TestTextArray_Materialize(t *testing.T) {
	a := NewTextArray([]byte("{a,NULL,c}"))
	elems, err := a.Materialize()
	require.NoError(t, err)
	require.Len(t, elems, 3)
	assert.Equal(t, "a", elems[0])
	assert.Nil(t, elems[1])
	assert.Equal(t, "c", elems[2])
	require.NoError(t, a.Release())
	assert.True(t, a.Released())
}

func TestTextArray_Empty(t *testing.T) {
	a := NewTextArray([]byte("{}"))
	elems, err := a.Materialize()
	require.NoError(t, err)
	assert.Empty(t, elems)
}

func TestTextArray_Malformed(t *testing.T) {
	a := NewTextArray([]byte("not an array"))
	_, err := a.Materialize()
	assert.Error(t, err)
}

func TestFromRows(t *testing.T) {
	rows := FromRows(
		FromValues([]any{int64(1)}),
		FromValues([]any{int64(2)}),
	)

	_, err := rows.Row()
	assert.Error(t, err, "Row before Next must fail")

	var got []any
	for rows.Next() {
		r, err := rows.Row()
		require.NoError(t, err)
		v, _, err := r.Value(1)
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []any{int64(1), int64(2)}, got)
	assert.NoError(t, rows.Err())
	assert.NoError(t, rows.Close())
}
