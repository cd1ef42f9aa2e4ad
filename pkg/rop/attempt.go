package rop

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/outcome/pkg/rop/failure"
)

// ErrPanicked wraps non-error values recovered from a panicking supplier.
var ErrPanicked = errors.New("panicked")

// Attempt runs supplier and converts its result into an Outcome.
//
// A returned error becomes a failure tagged failure.CheckedError, a panic
// becomes failure.RuntimeError and an interrupt (see IsInterrupt) becomes
// failure.Interrupted. The error is kept as the cause.
func Attempt[T any](supplier func() (T, error)) Outcome[T] {
	if supplier == nil {
		panic(invalidArgument("supplier"))
	}
	return AttemptContext(context.Background(), func(context.Context) (T, error) {
		return supplier()
	})
}

// AttemptContext is Attempt with a context passed to supplier.
// When the supplier is interrupted, the interrupt flag carried by ctx (see
// WithInterruptFlag) is set before the failure is returned.
func AttemptContext[T any](ctx context.Context, supplier func(ctx context.Context) (T, error)) (out Outcome[T]) {
	if supplier == nil {
		panic(invalidArgument("supplier"))
	}

	defer func() {
		if r := recover(); r != nil {
			out = failFromError[T](ctx, panicError(r), failure.RuntimeError)
		}
	}()

	v, err := supplier(ctx)
	if err != nil {
		return failFromError[T](ctx, err, failure.CheckedError)
	}
	return Success(v)
}

func failFromError[T any](ctx context.Context, err error, c failure.Generic) Outcome[T] {
	if IsInterrupt(err) {
		c = failure.Interrupted
		Interrupt(ctx)
	}
	return Fail[T](failure.WrapCategorized(err, c))
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPanicked, r)
}
