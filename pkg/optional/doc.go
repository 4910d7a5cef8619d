// Package optional provides a two-variant container for presence/absence
// semantics. The zero value is None, so Optionals embed safely.
//
// Common usage:
// - Some/None: construct variants directly
// - FromOk/FromPtr: lift Go's (value, ok) and pointer conventions
// - Map/FlatMap: transform the wrapped value without unwrapping
// - Flatten: collapse one level of nesting explicitly
// - UnwrapOr/Fold: leave the container with a total function
//
// Combinators never recover a panic raised by a transform; a failing
// transform surfaces to the caller instead of becoming None.
package optional
