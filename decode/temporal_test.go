package decode

import (
	"testing"
	"time"

	"github.com/rowgraph/rowhydrate/errors"
	"github.com/rowgraph/rowhydrate/schema"
	"github.com/rowgraph/rowhydrate/source"
)

func decodeTimestamp(t *testing.T, raw any) (any, error) {
	t.Helper()
	s := schema.New(schema.F("ts", schema.KindTimestamp))
	got, err := DecodeOne(s, source.FromValues([]any{raw}))
	if err != nil {
		return nil, err
	}
	return got["ts"], nil
}

func TestNormalizeTimestampText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-02-04 03:31:16.935337", "2026-02-04T03:31:16.935337Z"},
		{"2026-02-04 04:31:16.935337+01", "2026-02-04T04:31:16.935337+01"},
		{"2026-02-04T05:00:00Z", "2026-02-04T05:00:00Z"},
		{"2026-02-04 05:00:00-07:00", "2026-02-04T05:00:00-07:00"},
		{"2026-02-04 05:00:00", "2026-02-04T05:00:00Z"},
	}
	for _, tt := range tests {
		if got := normalizeTimestampText(tt.in); got != tt.want {
			t.Errorf("normalizeTimestampText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTimestamp_NoOffsetAssumesUTC(t *testing.T) {
	v, err := decodeTimestamp(t, "2026-02-04 03:31:16.935337")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	got := v.(time.Time)
	want := time.Date(2026, 2, 4, 3, 31, 16, 935_337_000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, offset := got.Zone(); offset != 0 {
		t.Errorf("expected UTC, got offset %d", offset)
	}
}

func TestTimestamp_HourOnlyOffset(t *testing.T) {
	v, err := decodeTimestamp(t, "2026-02-04 04:31:16.935337+01")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	got := v.(time.Time)
	want := time.Date(2026, 2, 4, 4, 31, 16, 935_337_000, time.FixedZone("", 3600))
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, offset := got.Zone(); offset != 3600 {
		t.Errorf("expected +01:00 offset, got %d", offset)
	}
}

func TestTimestamp_NativeValuePassesThrough(t *testing.T) {
	native := time.Date(2026, 2, 4, 3, 31, 16, 0, time.UTC)
	v, err := decodeTimestamp(t, native)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !v.(time.Time).Equal(native) {
		t.Errorf("got %v, want %v", v, native)
	}
}

func TestTimestamp_ColonOffset(t *testing.T) {
	v, err := decodeTimestamp(t, "2026-02-04 04:31:16+02:00")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if _, offset := v.(time.Time).Zone(); offset != 7200 {
		t.Errorf("expected +02:00 offset, got %d", offset)
	}
}

func TestTimestamp_ParseFailure(t *testing.T) {
	for _, bad := range []string{"not a timestamp", "2026-02-04", "04:31:16"} {
		_, err := decodeTimestamp(t, bad)
		if !errors.IsKind(err, errors.KindTemporalParseFailure) {
			t.Errorf("decodeTimestamp(%q): expected TemporalParseFailure, got %v", bad, err)
		}
	}
}

func TestTimestamp_NonTextMismatch(t *testing.T) {
	_, err := decodeTimestamp(t, 12345)
	if !errors.IsKind(err, errors.KindTypeMismatch) {
		t.Errorf("expected TypeMismatch for int source, got %v", err)
	}
}
