package rop

import (
	"context"
	"fmt"

	"github.com/ib-77/outcome/pkg/rop/failure"
)

// Map transforms the payload of a success with f. A nil result yields an
// unqualified success. An unqualified input calls f with the zero value.
// A failure is returned re-typed and f is not called.
func Map[In, Out any](input Outcome[In], f func(In) Out) Outcome[Out] {
	if f == nil {
		panic(invalidArgument("map function"))
	}
	if input.kind == Failed {
		return FailFrom[In, Out](input)
	}
	return Success(f(input.payload))
}

// FlatMap returns the Outcome produced by f for a success, unchanged.
// A panic raised by f becomes a failure tagged failure.CheckedError.
// A failure is returned re-typed and f is not called.
func FlatMap[In, Out any](input Outcome[In], f func(In) Outcome[Out]) (out Outcome[Out]) {
	if f == nil {
		panic(invalidArgument("flatMap function"))
	}
	if input.kind == Failed {
		return FailFrom[In, Out](input)
	}

	defer func() {
		if r := recover(); r != nil {
			out = Fail[Out](failure.WrapCategorized(panicError(r), failure.CheckedError))
		}
	}()
	return f(input.payload)
}

// Fold reduces input to a single value.
func Fold[T, V any](input Outcome[T], onSuccess func(T) V, onFailure func(*failure.Description) V) V {
	if onSuccess == nil {
		panic(invalidArgument("fold success function"))
	}
	if onFailure == nil {
		panic(invalidArgument("fold failure function"))
	}

	switch input.kind {
	case Quantified, Unqualified:
		return onSuccess(input.payload)
	case Failed:
		return onFailure(input.failure)
	default:
		panic(fmt.Errorf("%w: unknown outcome kind %s", ErrIllegalState, input.kind))
	}
}

// OrElse returns o on success and alternate on failure.
func (o Outcome[T]) OrElse(alternate Outcome[T]) Outcome[T] {
	if o.kind != Failed {
		return o
	}
	return alternate
}

// OrElseGet returns o on success. On failure it runs supplier the way
// Attempt does. The supplier is never called for a success.
func (o Outcome[T]) OrElseGet(supplier func() (T, error)) Outcome[T] {
	if supplier == nil {
		panic(invalidArgument("supplier"))
	}
	if o.kind != Failed {
		return o
	}
	return Attempt(supplier)
}

// OrElseGetContext is OrElseGet with a context; see AttemptContext.
func (o Outcome[T]) OrElseGetContext(ctx context.Context,
	supplier func(ctx context.Context) (T, error)) Outcome[T] {
	if supplier == nil {
		panic(invalidArgument("supplier"))
	}
	if o.kind != Failed {
		return o
	}
	return AttemptContext(ctx, supplier)
}

// Act calls onSuccess or onFailure depending on the variant and returns o.
// Panics raised by the hooks propagate.
func (o Outcome[T]) Act(onSuccess func(T), onFailure func(*failure.Description)) Outcome[T] {
	if onSuccess == nil {
		panic(invalidArgument("success hook"))
	}
	if onFailure == nil {
		panic(invalidArgument("failure hook"))
	}
	if o.kind == Failed {
		onFailure(o.failure)
	} else {
		onSuccess(o.payload)
	}
	return o
}

// IfSuccess calls hook with the payload (zero for an unqualified success)
// and returns o. It does nothing on failure.
func (o Outcome[T]) IfSuccess(hook func(T)) Outcome[T] {
	if hook == nil {
		panic(invalidArgument("success hook"))
	}
	if o.kind != Failed {
		hook(o.payload)
	}
	return o
}

// IfFailure calls hook with the description and returns o.
// It does nothing on success.
func (o Outcome[T]) IfFailure(hook func(*failure.Description)) Outcome[T] {
	if hook == nil {
		panic(invalidArgument("failure hook"))
	}
	if o.kind == Failed {
		hook(o.failure)
	}
	return o
}
