package decode

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/rowgraph/rowhydrate/decode/internal/coerce"
	"github.com/rowgraph/rowhydrate/errors"
	"github.com/rowgraph/rowhydrate/schema"
	"github.com/rowgraph/rowhydrate/source"
)

// Decoder walks a schema against one row at a time. Widths are cached per
// schema descriptor across calls.
type Decoder struct {
	widths         *schema.Calculator
	parser         jsoniter.API
	log            *zap.Logger
	start          int
	strictEmbedded bool
}

// NewDecoder builds a decoder with the default configuration: columns
// start at index 1, embedded documents tolerate undeclared fields.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		widths: schema.NewCalculator(),
		parser: jsoniter.Config{UseNumber: true}.Froze(),
		log:    zap.NewNop(),
		start:  1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DecodeOne decodes exactly one row into one value, starting at the
// configured start column. Decoding is a pure function of (schema, row,
// start): the same inputs always yield the same result.
func (d *Decoder) DecodeOne(s *schema.Schema, row source.Row) (map[string]any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	value, end, err := d.decodeStruct(s, row, d.start, nil)
	if err != nil {
		return nil, err
	}
	d.log.Debug("row decoded",
		zap.Int("start_column", d.start),
		zap.Int("columns_consumed", end-d.start),
		zap.Int("fields", len(s.Fields)))
	return value, nil
}

// DecodeOne decodes one row with a throwaway decoder.
func DecodeOne(s *schema.Schema, row source.Row, opts ...Option) (map[string]any, error) {
	return NewDecoder(opts...).DecodeOne(s, row)
}

// decodeStruct walks one shape's fields starting at column start and
// returns the decoded value together with the final cursor position. The
// returned position is how a child walk reports back to its parent.
func (d *Decoder) decodeStruct(s *schema.Schema, row source.Row, start int, path []string) (map[string]any, int, error) {
	cur := start
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		value, next, err := d.decodeField(f, row, cur, childPath(path, f.Name))
		if err != nil {
			return nil, cur, err
		}
		out[f.Name] = value
		cur = next
	}
	return out, cur, nil
}

// decodeField consumes one field's columns at position col and returns
// the value and the next cursor position.
func (d *Decoder) decodeField(f schema.Field, row source.Row, col int, path []string) (any, int, error) {
	width := d.widths.FieldWidth(f)
	if last := col + width - 1; last >= d.start+row.ColumnCount() {
		return nil, col, errors.ColumnOutOfRange(path, last, row.ColumnCount())
	}

	if f.Kind == schema.KindStruct {
		if f.Optional {
			allNull, err := d.groupAllNull(row, col, width, path)
			if err != nil {
				return nil, col, err
			}
			if allNull {
				return nil, col + width, nil
			}
		}
		value, end, err := d.decodeStruct(f.Child, row, col, path)
		if err != nil {
			return nil, col, err
		}
		return value, end, nil
	}

	// A list column is read through the array accessor only; reading it
	// again via the generic value accessor would touch the column twice.
	if f.Kind == schema.KindList {
		handle, err := row.Array(col)
		if err != nil {
			return nil, col, d.annotate(errors.ArrayDecodeFailure(path, err), row, col)
		}
		if handle == nil {
			if f.Optional {
				return nil, col + 1, nil
			}
			return nil, col, errors.NullInNonNullable(path, col, d.labelFor(row, col), f.Kind.String())
		}
		value, err := d.extractList(handle, row, col, path)
		if err != nil {
			return nil, col, err
		}
		return value, col + 1, nil
	}

	raw, wasNull, err := row.Value(col)
	if err != nil {
		return nil, col, errors.RowRead(path, col, err)
	}
	if wasNull {
		if f.Optional {
			return nil, col + 1, nil
		}
		return nil, col, errors.NullInNonNullable(path, col, d.labelFor(row, col), f.Kind.String())
	}

	value, err := d.decodeLeaf(f, raw, row, col, path)
	if err != nil {
		return nil, col, err
	}
	return value, col + 1, nil
}

// decodeLeaf converts one present column value for a single-column field.
func (d *Decoder) decodeLeaf(f schema.Field, raw any, row source.Row, col int, path []string) (any, error) {
	switch f.Kind {
	case schema.KindBool:
		if v, ok := coerce.ToBool(raw); ok {
			return v, nil
		}
	case schema.KindInt8:
		if v, ok := coerce.ToInt64(raw); ok && coerce.FitsSigned(v, 8) {
			return int8(v), nil
		}
	case schema.KindInt16:
		if v, ok := coerce.ToInt64(raw); ok && coerce.FitsSigned(v, 16) {
			return int16(v), nil
		}
	case schema.KindInt32:
		if v, ok := coerce.ToInt64(raw); ok && coerce.FitsSigned(v, 32) {
			return int32(v), nil
		}
	case schema.KindInt64:
		if v, ok := coerce.ToInt64(raw); ok {
			return v, nil
		}
	case schema.KindFloat32:
		if v, ok := coerce.ToFloat64(raw); ok {
			return float32(v), nil
		}
	case schema.KindFloat64:
		if v, ok := coerce.ToFloat64(raw); ok {
			return v, nil
		}
	case schema.KindString:
		if v, ok := coerce.ToString(raw); ok {
			return v, nil
		}
	case schema.KindBytes:
		if v, ok := coerce.ToBytes(raw); ok {
			return v, nil
		}
	case schema.KindChar:
		text, ok := coerce.ToString(raw)
		if !ok {
			break
		}
		r, ok := coerce.ToChar(text)
		if !ok {
			return nil, d.annotate(errors.InvalidCharLiteral(path, text), row, col)
		}
		return r, nil
	case schema.KindDecimal:
		if v, ok := coerce.ToDecimal(raw); ok {
			return v, nil
		}
	case schema.KindTimestamp:
		return d.normalizeTimestamp(raw, row, col, path)
	case schema.KindEnum:
		text, ok := coerce.ToString(raw)
		if !ok {
			break
		}
		v, err := resolveEnum(f, text, path)
		if err != nil {
			return nil, d.annotate(err, row, col)
		}
		return v, nil
	case schema.KindEmbedded:
		text, ok := coerce.ToString(raw)
		if !ok {
			break
		}
		return d.decodeEmbedded(text, f.Child, path)
	}
	return nil, d.mismatch(f, raw, row, col, path)
}

// groupAllNull peeks the columns [col, col+width) without consuming them
// and reports whether every one is absent.
func (d *Decoder) groupAllNull(row source.Row, col, width int, path []string) (bool, error) {
	for i := col; i < col+width; i++ {
		_, wasNull, err := row.Value(i)
		if err != nil {
			return false, errors.RowRead(path, i, err)
		}
		if !wasNull {
			return false, nil
		}
	}
	return true, nil
}

// labelFor resolves a column's display label, falling back to a synthetic
// column_<n> label when metadata access fails.
func (d *Decoder) labelFor(row source.Row, col int) string {
	label, err := row.Label(col)
	if err != nil || label == "" {
		return syntheticLabel(col)
	}
	return label
}

func syntheticLabel(col int) string {
	return "column_" + strconv.Itoa(col)
}

func (d *Decoder) mismatch(f schema.Field, raw any, row source.Row, col int, path []string) *errors.Error {
	return errors.New(errors.KindTypeMismatch).
		Path(path...).
		Column(col, d.labelFor(row, col)).
		Expected(f.Kind.String()).
		Value(raw).
		Detail("cannot represent %T value (source type %q)", raw, row.TypeName(col)).
		Build()
}

// annotate attaches column position and label to an error built without them.
func (d *Decoder) annotate(err *errors.Error, row source.Row, col int) *errors.Error {
	err.Column = col
	err.Label = d.labelFor(row, col)
	return err
}

func resolveEnum(f schema.Field, text string, path []string) (string, *errors.Error) {
	for _, c := range f.Cases {
		if c == text {
			return c, nil
		}
	}
	return "", errors.UnknownEnumValue(path, text, f.Cases)
}

// childPath copies rather than appends: sibling fields at the same depth
// must not share backing arrays.
func childPath(path []string, name string) []string {
	p := make([]string, len(path)+1)
	copy(p, path)
	p[len(p)-1] = name
	return p
}
