// Package coerce provides pure value coercion for row decoding.
//
// Each function converts one raw backend value into one canonical target
// type, reporting success with an ok flag. Backends disagree on numeric
// width, text vs byte-slice strings, and temporal representations; these
// helpers implement the widening and truncation rules in one place.
//
// This package is internal to the decoder.
package coerce
