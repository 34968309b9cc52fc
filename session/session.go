package session

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/rowgraph/rowhydrate/decode"
	"github.com/rowgraph/rowhydrate/query"
	"github.com/rowgraph/rowhydrate/schema"
	"github.com/rowgraph/rowhydrate/source"
)

// Session runs statements and decodes their results. Not safe for
// concurrent use; create one session per goroutine.
type Session struct {
	db  *sql.DB
	dec *decode.Decoder
	log *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger. The default is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithDecoder replaces the default decoder, carrying its configuration
// (start column, embedded parser, strictness) into the session.
func WithDecoder(dec *decode.Decoder) Option {
	return func(s *Session) {
		if dec != nil {
			s.dec = dec
		}
	}
}

// New builds a session over an open database handle.
func New(db *sql.DB, opts ...Option) *Session {
	s := &Session{
		db:  db,
		dec: decode.NewDecoder(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RowResult is one decoded row, or its decode error. Index is 1-based.
type RowResult struct {
	Value map[string]any
	Err   error
	Index int
}

// QueryAll executes stmt and decodes every result row against sch.
// Row-level decode failures land in the returned results; the error
// return covers execution and iteration failures only.
func (s *Session) QueryAll(ctx context.Context, sch *schema.Schema, stmt string, args ...any) ([]RowResult, error) {
	bound, err := query.BindArgs(args)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := s.db.QueryContext(ctx, stmt, bound...)
	if err != nil {
		return nil, err
	}
	results, err := s.DecodeAll(sch, source.WrapSQL(rows))
	s.log.Debug("query decoded",
		zap.Int("rows", len(results)),
		zap.Duration("elapsed", time.Since(start)))
	return results, err
}

// QueryOne executes stmt and decodes the first result row. Returns
// sql.ErrNoRows when the result is empty.
func (s *Session) QueryOne(ctx context.Context, sch *schema.Schema, stmt string, args ...any) (map[string]any, error) {
	results, err := s.QueryAll(ctx, sch, stmt, args...)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, sql.ErrNoRows
	}
	first := results[0]
	if first.Err != nil {
		return nil, first.Err
	}
	return first.Value, nil
}

// DecodeAll drains a row iterator, decoding each row independently.
// The iterator is closed before returning.
func (s *Session) DecodeAll(sch *schema.Schema, rows source.Rows) ([]RowResult, error) {
	defer rows.Close()

	var results []RowResult
	idx := 0
	for rows.Next() {
		idx++
		row, err := rows.Row()
		if err != nil {
			// A scan failure poisons the iterator, unlike a decode failure.
			return results, err
		}
		value, derr := s.dec.DecodeOne(sch, row)
		if derr != nil {
			s.log.Warn("row decode failed",
				zap.Int("row", idx),
				zap.Error(derr))
		}
		results = append(results, RowResult{Index: idx, Value: value, Err: derr})
	}
	if err := rows.Err(); err != nil {
		return results, err
	}
	return results, nil
}
