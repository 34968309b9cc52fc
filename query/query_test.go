package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindArgs(t *testing.T) {
	ts := time.Date(2026, 2, 4, 3, 31, 16, 0, time.UTC)
	got, err := BindArgs([]any{
		int64(1),
		"text",
		nil,
		decimal.RequireFromString("10.50"),
		ts,
		true,
	})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), "text", nil, "10.50", ts, true}, got)
}

func TestBindArgs_StringSlice(t *testing.T) {
	got, err := BindArgs([]any{[]string{"a", "b"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "{a,b}", got[0])
}

func TestBindArgs_Empty(t *testing.T) {
	got, err := BindArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", Placeholders(3, true))
	assert.Equal(t, "?, ?", Placeholders(2, false))
	assert.Equal(t, "", Placeholders(0, true))
	assert.Equal(t, "", Placeholders(-1, false))
}
