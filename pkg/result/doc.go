// Package result provides a two-variant container for the outcome of an
// operation: a success value of type T or a failure value of type E.
//
// Common usage:
// - Ok/Err: construct variants directly
// - Catch/FromTuple: bridge from Go's (T, error) execution model
// - Map/FlatMap: transform the success channel
// - MapErr: translate the failure payload, the only combinator that touches it
// - UnwrapOr/Fold: leave the container with a total function
//
// Map, FlatMap and MapErr assume their transforms are total: a panic raised
// by a transform is not recovered here. Only Catch converts an error signal
// into the failure variant, and it does so for exactly one synchronous
// invocation with no retry.
package result
