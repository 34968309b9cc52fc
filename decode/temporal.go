package decode

import (
	"strings"
	"time"

	"github.com/rowgraph/rowhydrate/decode/internal/coerce"
	"github.com/rowgraph/rowhydrate/errors"
	"github.com/rowgraph/rowhydrate/source"
)

// Accepted after normalization: RFC 3339 with optional fraction, plus the
// hour-only and compact offset forms some drivers emit.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z07",
	"2006-01-02T15:04:05.999999999-0700",
}

// normalizeTimestamp converts a raw column value into a timestamp with
// offset. Native temporal values pass through. Text is normalized first:
// drivers that stringify timestamptz columns use a space separator and
// omit the offset when the value is already UTC.
func (d *Decoder) normalizeTimestamp(raw any, row source.Row, col int, path []string) (any, error) {
	if t, ok := raw.(time.Time); ok {
		return t, nil
	}
	text, ok := coerce.ToString(raw)
	if !ok {
		return nil, d.annotate(errors.TypeMismatch(path, "timestamp", raw), row, col)
	}

	normalized := normalizeTimestampText(text)
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, normalized)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return nil, d.annotate(errors.TemporalParseFailure(path, text, lastErr), row, col)
}

// normalizeTimestampText rewrites backend timestamp text into ISO-8601:
// the first space becomes a 'T' separator, and if the last 8 characters
// carry no offset marker ('+' or '-') and the text does not end in 'Z',
// the value is assumed UTC and 'Z' is appended. The 8-character window
// keeps date-part hyphens from being mistaken for an offset.
func normalizeTimestampText(s string) string {
	s = strings.Replace(s, " ", "T", 1)
	tail := s
	if len(s) > 8 {
		tail = s[len(s)-8:]
	}
	if !strings.ContainsAny(tail, "+-") && !strings.HasSuffix(s, "Z") {
		s += "Z"
	}
	return s
}
