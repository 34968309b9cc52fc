package decode

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rowgraph/rowhydrate/errors"
	"github.com/rowgraph/rowhydrate/schema"
	"github.com/rowgraph/rowhydrate/source"
)

func TestEmbedded_IgnoresUndeclaredFields(t *testing.T) {
	s := schema.New(schema.Doc("meta", schema.New(
		schema.F("value", schema.KindString),
	)))
	row := source.FromValues([]any{`{"value":"x","extra":1}`})

	got, err := DecodeOne(s, row)
	if err != nil {
		t.Fatalf("DecodeOne failed: %v", err)
	}
	want := map[string]any{"meta": map[string]any{"value": "x"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbedded_StrictRejectsUndeclaredFields(t *testing.T) {
	s := schema.New(schema.Doc("meta", schema.New(
		schema.F("value", schema.KindString),
	)))
	row := source.FromValues([]any{`{"value":"x","extra":1}`})

	_, err := DecodeOne(s, row, WithStrictEmbeddedFields())
	if !errors.IsKind(err, errors.KindMalformedEmbeddedDocument) {
		t.Errorf("expected MalformedEmbeddedDocument, got %v", err)
	}
}

func TestEmbedded_MalformedText(t *testing.T) {
	s := schema.New(schema.Doc("meta", schema.New(
		schema.F("value", schema.KindString),
	)))
	_, err := DecodeOne(s, source.FromValues([]any{`{"value":`}))
	if !errors.IsKind(err, errors.KindMalformedEmbeddedDocument) {
		t.Errorf("expected MalformedEmbeddedDocument, got %v", err)
	}
}

func TestEmbedded_ShapeMismatch(t *testing.T) {
	s := schema.New(schema.Doc("meta", schema.New(
		schema.F("value", schema.KindString),
	)))
	// A field expected to be text contains a number.
	_, err := DecodeOne(s, source.FromValues([]any{`{"value":12}`}))
	if !errors.IsKind(err, errors.KindTypeMismatch) {
		t.Errorf("expected TypeMismatch, got %v", err)
	}
}

func TestEmbedded_DoesNotTouchCursor(t *testing.T) {
	// The embedded field occupies exactly one physical column no matter
	// how many logical fields its child schema declares.
	s := schema.New(
		schema.Doc("meta", schema.New(
			schema.F("a", schema.KindString),
			schema.F("b", schema.KindInt64),
			schema.F("c", schema.KindBool),
		)),
		schema.F("after", schema.KindString),
	)
	row := source.FromValues([]any{`{"a":"x","b":2,"c":true}`, "next"})

	got, err := DecodeOne(s, row)
	if err != nil {
		t.Fatalf("DecodeOne failed: %v", err)
	}
	if got["after"] != "next" {
		t.Errorf("cursor advanced past one column: after = %v", got["after"])
	}
	want := map[string]any{"a": "x", "b": int64(2), "c": true}
	if diff := cmp.Diff(want, got["meta"]); diff != "" {
		t.Errorf("meta mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbedded_OptionalAndRequiredFields(t *testing.T) {
	s := schema.New(schema.Doc("meta", schema.New(
		schema.F("required", schema.KindString),
		schema.F("missing", schema.KindString).Opt(),
	)))

	got, err := DecodeOne(s, source.FromValues([]any{`{"required":"x"}`}))
	if err != nil {
		t.Fatalf("DecodeOne failed: %v", err)
	}
	meta := got["meta"].(map[string]any)
	if meta["missing"] != nil {
		t.Errorf("missing optional should be nil, got %v", meta["missing"])
	}

	_, err = DecodeOne(s, source.FromValues([]any{`{"missing":"y"}`}))
	if !errors.IsKind(err, errors.KindNullInNonNullable) {
		t.Errorf("expected NullInNonNullable for absent required field, got %v", err)
	}

	// Explicit JSON null counts as absent.
	_, err = DecodeOne(s, source.FromValues([]any{`{"required":null}`}))
	if !errors.IsKind(err, errors.KindNullInNonNullable) {
		t.Errorf("expected NullInNonNullable for null required field, got %v", err)
	}
}

func TestEmbedded_NestedDocument(t *testing.T) {
	s := schema.New(schema.Doc("meta", schema.New(
		schema.F("name", schema.KindString),
		schema.Group("inner", schema.New(
			schema.F("count", schema.KindInt32),
			schema.Enum("state", "ON", "OFF"),
		)),
		schema.List("tags"),
	)))
	row := source.FromValues([]any{`{
		"name": "top",
		"inner": {"count": 3, "state": "OFF", "junk": []},
		"tags": ["a", null, "c"]
	}`})

	got, err := DecodeOne(s, row)
	if err != nil {
		t.Fatalf("DecodeOne failed: %v", err)
	}
	want := map[string]any{
		"name":  "top",
		"inner": map[string]any{"count": int32(3), "state": "OFF"},
		"tags":  []string{"a", "c"},
	}
	if diff := cmp.Diff(want, got["meta"]); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbedded_NumberPrecision(t *testing.T) {
	s := schema.New(schema.Doc("meta", schema.New(
		schema.F("big", schema.KindInt64),
		schema.F("dec", schema.KindDecimal),
		schema.F("frac", schema.KindInt64),
	)))
	row := source.FromValues([]any{`{"big":9007199254740993,"dec":"12.34","frac":3.9}`})

	got, err := DecodeOne(s, row)
	if err != nil {
		t.Fatalf("DecodeOne failed: %v", err)
	}
	meta := got["meta"].(map[string]any)
	if meta["big"] != int64(9007199254740993) {
		t.Errorf("int64 precision lost: %v", meta["big"])
	}
	if meta["frac"] != int64(3) {
		t.Errorf("fractional number should truncate: %v", meta["frac"])
	}
}

func TestEmbedded_NullColumn(t *testing.T) {
	child := schema.New(schema.F("value", schema.KindString))
	required := schema.New(schema.Doc("meta", child))
	optional := schema.New(schema.Doc("meta", child).Opt())

	_, err := DecodeOne(required, source.FromValues([]any{nil}))
	if !errors.IsKind(err, errors.KindNullInNonNullable) {
		t.Errorf("expected NullInNonNullable, got %v", err)
	}

	got, err := DecodeOne(optional, source.FromValues([]any{nil}))
	if err != nil {
		t.Fatalf("DecodeOne failed: %v", err)
	}
	if got["meta"] != nil {
		t.Errorf("optional null document should be nil, got %v", got["meta"])
	}
}
