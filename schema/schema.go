package schema

import (
	"github.com/rowgraph/rowhydrate/errors"
)

// Field describes one field of a target shape.
type Field struct {
	Child    *Schema
	Name     string
	Kind     Kind
	Cases    []string
	Optional bool
}

// Schema is the ordered field list for one target shape.
type Schema struct {
	Fields []Field
}

// New builds a schema from fields in declaration order.
func New(fields ...Field) *Schema {
	return &Schema{Fields: fields}
}

// F builds a required leaf field.
func F(name string, kind Kind) Field {
	return Field{Name: name, Kind: kind}
}

// Enum builds a required enum field with its declared ordered case names.
func Enum(name string, cases ...string) Field {
	return Field{Name: name, Kind: KindEnum, Cases: cases}
}

// List builds a required ordered-list field. The list occupies one column.
func List(name string) Field {
	return Field{Name: name, Kind: KindList}
}

// Group builds a nested-shape field spanning the child schema's width.
func Group(name string, child *Schema) Field {
	return Field{Name: name, Kind: KindStruct, Child: child}
}

// Doc builds an embedded-document field. Unlike Group, the whole child
// shape collapses to exactly one physical column of document text.
func Doc(name string, child *Schema) Field {
	return Field{Name: name, Kind: KindEmbedded, Child: child}
}

// Opt returns a copy of the field marked optional.
func (f Field) Opt() Field {
	f.Optional = true
	return f
}

// Validate checks structural well-formedness: non-empty field names,
// child schemas present exactly where the kind requires them, and enum
// fields carrying at least one case.
func (s *Schema) Validate() error {
	if s == nil {
		return errors.InvalidSchema("nil schema")
	}
	for _, f := range s.Fields {
		if f.Name == "" {
			return errors.InvalidSchema("field with empty name")
		}
		if f.Kind.HasChild() {
			if f.Child == nil {
				return errors.InvalidSchema("field %q (%s) missing child schema", f.Name, f.Kind)
			}
			if err := f.Child.Validate(); err != nil {
				return err
			}
		} else if f.Child != nil {
			return errors.InvalidSchema("field %q (%s) cannot carry a child schema", f.Name, f.Kind)
		}
		if f.Kind == KindEnum && len(f.Cases) == 0 {
			return errors.InvalidSchema("enum field %q declares no cases", f.Name)
		}
		if f.Kind != KindEnum && len(f.Cases) > 0 {
			return errors.InvalidSchema("field %q (%s) cannot declare enum cases", f.Name, f.Kind)
		}
	}
	return nil
}
