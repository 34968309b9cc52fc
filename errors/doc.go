// Package errors provides structured error types for the rowhydrate library.
//
// Errors are categorized by Kind (error category). The Error type includes
// rich context: field path, 1-indexed column position, resolved column label,
// the expected target kind, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.KindTypeMismatch).
//		Path("user", "age").
//		Column(3, "age").
//		Expected("int64").
//		Detail("cannot represent value as integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NullInNonNullable(path, 3, "age", "int64")
//	err := errors.TypeMismatch(path, "int64", rawValue)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
