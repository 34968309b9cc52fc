// Package session wraps query execution and the per-row decode loop.
//
// A Session owns a database handle, a decoder, and a logger. QueryAll
// runs a statement and decodes every row of the result independently:
// one row's decode failure does not abort the others, and each failure
// is reported alongside its row index.
package session
