// Package chain provides a fluent wrapper around Outcome[T]
// for building synchronous Railway-Oriented chains over the rop combinators.
//
// Every step receives the chain's context. A successful chain whose context
// is done stops with a failure.Interrupted outcome and sets the context's
// interrupt flag, if it carries one.
//
// Key operations:
// - Start/FromValue/Attempt: begin a chain
// - Then: switch to a new Outcome[U] via a function (FlatMap)
// - ThenTry: call a function (U, error) and convert the error to a failure
// - Map: transform the successful value (T -> U)
// - Validate: reject a successful value with a message
// - Ensure/OnFailure: run side effects without changing the outcome
// - Recover: replace a failure with a fallback supplier
// - Finally: collapse the chain into a final value via handlers (Fold)
package chain
