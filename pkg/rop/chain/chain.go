package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/failure"
)

// Chain wraps a rop.Outcome with context to enable fluent chaining
type Chain[T any] struct {
	ctx     context.Context
	outcome rop.Outcome[T]
}

// Start creates a new chain from a rop.Outcome
func Start[T any](ctx context.Context, outcome rop.Outcome[T]) *Chain[T] {
	return &Chain[T]{
		ctx:     ctx,
		outcome: outcome,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Attempt starts a chain from a fallible supplier
func Attempt[T any](ctx context.Context, supplier func(context.Context) (T, error)) *Chain[T] {
	return Start(ctx, rop.AttemptContext(ctx, supplier))
}

// Outcome returns the underlying rop.Outcome
func (c *Chain[T]) Outcome() rop.Outcome[T] {
	return c.outcome
}

func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

// Then chains a function that returns rop.Outcome[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Outcome[U]) *Chain[U] {
	if stopped, ok := halted[T, U](c); ok {
		return stopped
	}
	return &Chain[U]{
		ctx: c.ctx,
		outcome: rop.FlatMap(c.outcome, func(v T) rop.Outcome[U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Then(c, func(ctx context.Context, v T) rop.Outcome[U] {
		return rop.AttemptContext(ctx, func(ctx context.Context) (U, error) {
			return tryOnSuccess(ctx, v)
		})
	})
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	if stopped, ok := halted[T, U](c); ok {
		return stopped
	}
	return &Chain[U]{
		ctx: c.ctx,
		outcome: rop.Map(c.outcome, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Validate keeps a success that passes validate. A rejected value fails the
// chain with an Unspecified failure whose detail is errMsg.
func (c *Chain[T]) Validate(validate func(ctx context.Context, in T) (valid bool, errMsg string)) *Chain[T] {
	return Then(c, func(ctx context.Context, v T) rop.Outcome[T] {
		if valid, errMsg := validate(ctx, v); !valid {
			return rop.Fail[T](failure.NewBuilder().Detail(errMsg).Build())
		}
		return rop.Success(v)
	})
}

// Ensure performs a side effect on success without changing the outcome
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	c.outcome.IfSuccess(func(v T) { onSuccess(c.ctx, v) })
	return c
}

// OnFailure performs a side effect on failure without changing the outcome
func (c *Chain[T]) OnFailure(onFailure func(context.Context, *failure.Description)) *Chain[T] {
	c.outcome.IfFailure(func(d *failure.Description) { onFailure(c.ctx, d) })
	return c
}

// Recover replaces a failure with the outcome of supplier
func (c *Chain[T]) Recover(supplier func(context.Context) (T, error)) *Chain[T] {
	return &Chain[T]{
		ctx:     c.ctx,
		outcome: c.outcome.OrElseGetContext(c.ctx, supplier),
	}
}

// Finally collapses the chain into a final value using rop.Fold
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, *failure.Description) U) U {
	return rop.Fold(c.outcome,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(d *failure.Description) U { return onFailure(c.ctx, d) })
}

// halted stops a successful chain whose context is already done.
func halted[T, U any](c *Chain[T]) (*Chain[U], bool) {
	if c.outcome.IsFailure() {
		return &Chain[U]{ctx: c.ctx, outcome: rop.FailFrom[T, U](c.outcome)}, true
	}
	if c.ctx.Err() == nil {
		return nil, false
	}
	return &Chain[U]{
		ctx: c.ctx,
		outcome: rop.AttemptContext(c.ctx, func(ctx context.Context) (U, error) {
			var zero U
			return zero, ctx.Err()
		}),
	}, true
}
