// Package laws verifies the functor and monad laws of the optional and
// result packages, and the functor laws of plain int sequences, over batches
// of randomly generated inputs.
//
// Key constructs:
// - Config: trial count, generation bounds, seed, worker count
// - Catalogue/OptionalCatalogue/ResultCatalogue: fixed pools of named pure
//   functions the laws are instantiated with
// - Law: one algebraic law, checked by evaluating both sides on one input
// - Harness: runs Configured -> Running -> Reported and yields a Report that
//   is either all-passed or the first counterexample by trial index
//
// Trials share no mutable state, so the harness fans them out over a fixed
// number of workers. Generation for trial t is derived from Seed+t, which
// keeps the report independent of the worker count.
package laws
