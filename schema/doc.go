// Package schema defines the static descriptors that drive row decoding.
//
// A Schema is an ordered list of Fields describing one target shape. Each
// field carries a name, an optionality flag, and a structural Kind. Struct
// and Embedded fields additionally carry a child schema. A field's kind is
// fixed for a given target type and never depends on row contents.
//
// # Width
//
// Every schema has a column width: the number of physical row columns a
// value of that shape consumes. Leaf fields (including lists and embedded
// documents, however internally complex) occupy exactly one column; a
// struct field's width is the sum of its own fields' widths, computed
// recursively. Width is independent of row values, so it can be used to
// look ahead without consuming columns.
//
// # Key Types
//
//   - Schema: ordered field list for one target shape
//   - Field: name + optionality + structural kind
//   - Kind: closed structural discriminator
//   - Calculator: width computation with per-schema caching
package schema
