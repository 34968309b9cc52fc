package decode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rowgraph/rowhydrate/errors"
	"github.com/rowgraph/rowhydrate/source"
)

// extractList materializes one column's array handle into an ordered
// string sequence. NULL elements are dropped, not preserved as gaps. The
// handle is always released, whether or not materialization succeeded.
func (d *Decoder) extractList(handle source.ArrayValue, row source.Row, col int, path []string) ([]string, error) {
	elems, merr := handle.Materialize()
	rerr := handle.Release()
	if merr != nil {
		return nil, d.annotate(errors.ArrayDecodeFailure(path, merr), row, col)
	}
	if rerr != nil {
		return nil, d.annotate(errors.ArrayDecodeFailure(path, rerr), row, col)
	}

	out := make([]string, 0, len(elems))
	for _, e := range elems {
		if e == nil {
			continue
		}
		out = append(out, canonicalText(e))
	}
	return out, nil
}

// canonicalText renders one array element as text.
func canonicalText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case decimal.Decimal:
		return v.String()
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
