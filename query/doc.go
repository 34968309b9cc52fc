// Package query maps canonical typed values into driver-bound parameters.
//
// This is the outbound twin of the decode package: where decode coerces
// backend representations into canonical values, BindArgs renders
// canonical values back into forms any database/sql driver accepts.
// It is simple value mapping, kept deliberately thin.
package query
