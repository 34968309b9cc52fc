package decode

import (
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithStartColumn overrides the expected starting column index. The
// default is 1; backends with 0-based conventions pass 0.
func WithStartColumn(col int) Option {
	return func(d *Decoder) { d.start = col }
}

// WithStrictEmbeddedFields makes embedded-document decoding reject fields
// present in the document text but not declared in the child schema. The
// default is tolerant: undeclared fields are ignored silently.
func WithStrictEmbeddedFields() Option {
	return func(d *Decoder) { d.strictEmbedded = true }
}

// WithEmbeddedParser replaces the embedded-document text parser. The
// default parser preserves number precision via json.Number.
func WithEmbeddedParser(api jsoniter.API) Option {
	return func(d *Decoder) { d.parser = api }
}

// WithLogger attaches a logger for decode tracing. The default is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(d *Decoder) {
		if log != nil {
			d.log = log
		}
	}
}
