package decode

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rowgraph/rowhydrate/decode/internal/coerce"
	"github.com/rowgraph/rowhydrate/errors"
	"github.com/rowgraph/rowhydrate/schema"
)

// decodeEmbedded parses one column's document text and converts it
// against the child schema. This is a fully independent pass: it never
// touches the row cursor.
func (d *Decoder) decodeEmbedded(text string, s *schema.Schema, path []string) (map[string]any, error) {
	var doc map[string]any
	if err := d.parser.UnmarshalFromString(text, &doc); err != nil {
		return nil, errors.MalformedEmbeddedDocument(path, err)
	}
	return d.convertDoc(doc, s, path)
}

// convertDoc checks a parsed document against a schema. Fields present in
// the document but not declared are ignored unless strict mode is on.
func (d *Decoder) convertDoc(doc map[string]any, s *schema.Schema, path []string) (map[string]any, error) {
	if d.strictEmbedded {
		declared := make(map[string]struct{}, len(s.Fields))
		for _, f := range s.Fields {
			declared[f.Name] = struct{}{}
		}
		for key := range doc {
			if _, ok := declared[key]; !ok {
				return nil, errors.New(errors.KindMalformedEmbeddedDocument).
					Path(path...).
					Detail("undeclared field %q", key).
					Build()
			}
		}
	}

	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		fpath := childPath(path, f.Name)
		raw, present := doc[f.Name]
		if !present || raw == nil {
			if f.Optional {
				out[f.Name] = nil
				continue
			}
			return nil, errors.NullInNonNullable(fpath, 0, "", f.Kind.String())
		}
		value, err := d.convertDocValue(f, raw, fpath)
		if err != nil {
			return nil, err
		}
		out[f.Name] = value
	}
	return out, nil
}

// convertDocValue converts one parsed document value to the field's kind.
// The parser yields string, bool, json.Number (or float64 with a custom
// parser), []any, and map[string]any.
func (d *Decoder) convertDocValue(f schema.Field, raw any, path []string) (any, error) {
	switch f.Kind {
	case schema.KindString:
		if v, ok := raw.(string); ok {
			return v, nil
		}
	case schema.KindBool:
		if v, ok := raw.(bool); ok {
			return v, nil
		}
	case schema.KindInt8:
		if v, ok := docInt64(raw); ok && coerce.FitsSigned(v, 8) {
			return int8(v), nil
		}
	case schema.KindInt16:
		if v, ok := docInt64(raw); ok && coerce.FitsSigned(v, 16) {
			return int16(v), nil
		}
	case schema.KindInt32:
		if v, ok := docInt64(raw); ok && coerce.FitsSigned(v, 32) {
			return int32(v), nil
		}
	case schema.KindInt64:
		if v, ok := docInt64(raw); ok {
			return v, nil
		}
	case schema.KindFloat32:
		if v, ok := docFloat64(raw); ok {
			return float32(v), nil
		}
	case schema.KindFloat64:
		if v, ok := docFloat64(raw); ok {
			return v, nil
		}
	case schema.KindChar:
		if text, ok := raw.(string); ok {
			r, ok := coerce.ToChar(text)
			if !ok {
				return nil, errors.InvalidCharLiteral(path, text)
			}
			return r, nil
		}
	case schema.KindBytes:
		if text, ok := raw.(string); ok {
			return []byte(text), nil
		}
	case schema.KindDecimal:
		switch v := raw.(type) {
		case json.Number:
			dec, err := decimal.NewFromString(v.String())
			if err == nil {
				return dec, nil
			}
		case string:
			dec, err := decimal.NewFromString(v)
			if err == nil {
				return dec, nil
			}
		case float64:
			return decimal.NewFromFloat(v), nil
		}
	case schema.KindTimestamp:
		if text, ok := raw.(string); ok {
			normalized := normalizeTimestampText(text)
			for _, layout := range timestampLayouts {
				if t, err := time.Parse(layout, normalized); err == nil {
					return t, nil
				}
			}
			return nil, errors.TemporalParseFailure(path, text, nil)
		}
	case schema.KindEnum:
		if text, ok := raw.(string); ok {
			v, derr := resolveEnum(f, text, path)
			if derr != nil {
				return nil, derr
			}
			return v, nil
		}
	case schema.KindList:
		if elems, ok := raw.([]any); ok {
			out := make([]string, 0, len(elems))
			for _, e := range elems {
				if e == nil {
					continue
				}
				out = append(out, canonicalText(e))
			}
			return out, nil
		}
	case schema.KindStruct, schema.KindEmbedded:
		if child, ok := raw.(map[string]any); ok {
			return d.convertDoc(child, f.Child, path)
		}
	}
	return nil, errors.TypeMismatch(path, f.Kind.String(), raw)
}

func docInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		if f, err := v.Float64(); err == nil {
			return coerce.ToInt64(f)
		}
		return 0, false
	default:
		return coerce.ToInt64(raw)
	}
}

func docFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return coerce.ToFloat64(raw)
	}
}
