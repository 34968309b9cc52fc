package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var pgMap = pgtype.NewMap()

// BindArgs converts canonical values into driver-acceptable parameters:
// decimals render as text, string slices render as Postgres array
// literals, timestamps pass through, nil stays NULL.
func BindArgs(args []any) ([]any, error) {
	out := make([]any, len(args))
	for i, a := range args {
		v, err := bindArg(a)
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func bindArg(a any) (any, error) {
	switch v := a.(type) {
	case nil:
		return nil, nil
	case decimal.Decimal:
		return v.String(), nil
	case time.Time:
		return v, nil
	case []string:
		buf, err := pgMap.Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, v, nil)
		if err != nil {
			return nil, fmt.Errorf("encode array: %w", err)
		}
		return string(buf), nil
	default:
		return a, nil
	}
}

// Placeholders renders n positional placeholders: "$1, $2, ..." when
// dollar is true (Postgres convention), "?, ?, ..." otherwise.
func Placeholders(n int, dollar bool) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteString(", ")
		}
		if dollar {
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(i))
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}
