package schema

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/rowgraph/rowhydrate/errors"
)

var jsonStd = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonSchema struct {
	Fields []jsonField `json:"fields"`
}

type jsonField struct {
	Name     string      `json:"name"`
	Kind     string      `json:"kind"`
	Optional bool        `json:"optional,omitempty"`
	Cases    []string    `json:"cases,omitempty"`
	Fields   []jsonField `json:"fields,omitempty"`
}

// ParseJSON decodes a schema from its JSON form:
//
//	{"fields": [
//	  {"name": "id", "kind": "int64"},
//	  {"name": "status", "kind": "enum", "cases": ["OPEN", "CLOSED"]},
//	  {"name": "owner", "kind": "struct", "optional": true, "fields": [...]}
//	]}
//
// The result is validated before being returned.
func ParseJSON(data []byte) (*Schema, error) {
	var js jsonSchema
	if err := jsonStd.Unmarshal(data, &js); err != nil {
		return nil, errors.New(errors.KindInvalidSchema).
			Detail("malformed schema document").
			Cause(err).
			Build()
	}
	s, err := fromJSONFields(js.Fields)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func fromJSONFields(jfs []jsonField) (*Schema, error) {
	fields := make([]Field, 0, len(jfs))
	for _, jf := range jfs {
		kind, ok := KindFromString(jf.Kind)
		if !ok {
			return nil, errors.InvalidSchema("field %q has unknown kind %q", jf.Name, jf.Kind)
		}
		f := Field{
			Name:     jf.Name,
			Kind:     kind,
			Optional: jf.Optional,
			Cases:    jf.Cases,
		}
		if len(jf.Fields) > 0 {
			child, err := fromJSONFields(jf.Fields)
			if err != nil {
				return nil, err
			}
			f.Child = child
		}
		fields = append(fields, f)
	}
	return New(fields...), nil
}

// MarshalJSON renders a schema in the form accepted by ParseJSON.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return jsonStd.Marshal(toJSONSchema(s))
}

func toJSONSchema(s *Schema) jsonSchema {
	js := jsonSchema{Fields: make([]jsonField, 0, len(s.Fields))}
	for _, f := range s.Fields {
		jf := jsonField{
			Name:     f.Name,
			Kind:     f.Kind.String(),
			Optional: f.Optional,
			Cases:    f.Cases,
		}
		if f.Child != nil {
			jf.Fields = toJSONSchema(f.Child).Fields
		}
		js.Fields = append(js.Fields, jf)
	}
	return js
}
