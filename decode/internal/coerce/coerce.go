package coerce

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ToInt64 widens a raw value to int64. Accepted sources: 64-bit integers
// unchanged, narrower integers by arithmetic widening, floating point by
// truncation toward zero, timestamps by their epoch-millisecond value,
// and arbitrary-precision decimals by integer truncation.
func ToInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case float64:
		// The nearest float64 to MaxInt64 is 2^63 itself, so the upper
		// bound must be strict or 2^63 converts to MinInt64.
		if v >= math.MinInt64 && v < float64(1<<63) {
			return int64(v), true
		}
	case float32:
		f := float64(v)
		if f >= math.MinInt64 && f < float64(1<<63) {
			return int64(f), true
		}
	case time.Time:
		return v.UnixMilli(), true
	case decimal.Decimal:
		return v.IntPart(), true
	}
	return 0, false
}

// FitsSigned reports whether v fits a signed integer of the given bit width.
func FitsSigned(v int64, bits int) bool {
	switch bits {
	case 8:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case 16:
		return v >= math.MinInt16 && v <= math.MaxInt16
	case 32:
		return v >= math.MinInt32 && v <= math.MaxInt32
	default:
		return true
	}
}

// ToFloat64 converts a raw value to float64. Integers widen; decimals
// convert with possible precision loss.
func ToFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint:
		return float64(v), true
	case decimal.Decimal:
		return v.InexactFloat64(), true
	}
	return 0, false
}

// ToBool converts a raw value to bool. Integer 0/1 is accepted because
// several backends surface booleans as tinyint.
func ToBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case int8, int16, int32, int64, int, uint8, uint16, uint32, uint64, uint:
		i, ok := ToInt64(v)
		if ok && (i == 0 || i == 1) {
			return i == 1, true
		}
	}
	return false, false
}

// ToString converts a raw value to text.
func ToString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	}
	return "", false
}

// ToBytes converts a raw value to a byte slice.
func ToBytes(value any) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	}
	return nil, false
}

// ToChar extracts the single character from text. Fails for empty text,
// text longer than one character, and invalid UTF-8. A literal U+FFFD
// character is valid; RuneError only signals bad input when the decoded
// size is 1.
func ToChar(text string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size < len(text) {
		return 0, false
	}
	if r == utf8.RuneError && size == 1 {
		return 0, false
	}
	return r, true
}

// ToDecimal converts a raw value to an arbitrary-precision decimal.
func ToDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	case []byte:
		d, err := decimal.NewFromString(string(v))
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	default:
		if i, ok := ToInt64(value); ok {
			return decimal.NewFromInt(i), true
		}
	}
	return decimal.Decimal{}, false
}
