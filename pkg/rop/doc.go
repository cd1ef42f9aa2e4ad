// Package rop contains the Outcome algebra: a value that is either a success,
// with or without a payload, or a failure carrying a failure.Description.
//
// Operations return an Outcome instead of panicking or returning (T, error),
// and pipelines are built by chaining combinators:
// - Success/Done/Fail: construct an Outcome
// - Attempt/AttemptContext: run a fallible supplier and capture its error or panic
// - Map: transform the payload
// - FlatMap: switch to the Outcome returned by the next step
// - Fold: reduce to a concrete value via per-variant handlers
// - OrElse/OrElseGet: recover from a failure
// - Act/IfSuccess/IfFailure: side-effect hooks
//
// A failed Outcome is never transformed: Map and FlatMap return it re-typed
// without invoking their function.
package rop
