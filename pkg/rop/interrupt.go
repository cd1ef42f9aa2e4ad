package rop

import (
	"context"
	"errors"
	"sync/atomic"
)

type OptionKey string

const InterruptFlagKey OptionKey = "interrupt_flag"

// ErrInterrupted signals that a blocking call gave up because it was
// interrupted. Context cancellation errors are treated the same way.
var ErrInterrupted = errors.New("interrupted")

type interruptFlag struct {
	set atomic.Bool
}

// WithInterruptFlag returns a context carrying a fresh, cleared interrupt flag.
func WithInterruptFlag(ctx context.Context) context.Context {
	return context.WithValue(ctx, InterruptFlagKey, &interruptFlag{})
}

// Interrupt sets the interrupt flag carried by ctx.
// It reports false when ctx carries no flag.
func Interrupt(ctx context.Context) bool {
	flag, ok := flagFrom(ctx)
	if ok {
		flag.set.Store(true)
	}
	return ok
}

// Interrupted reports whether the interrupt flag carried by ctx is set.
func Interrupted(ctx context.Context) bool {
	flag, ok := flagFrom(ctx)
	return ok && flag.set.Load()
}

// ClearInterrupt clears the flag and returns its previous state.
func ClearInterrupt(ctx context.Context) bool {
	flag, ok := flagFrom(ctx)
	return ok && flag.set.Swap(false)
}

// IsInterrupt reports whether err is ErrInterrupted or a context
// cancellation error.
func IsInterrupt(err error) bool {
	return errors.Is(err, ErrInterrupted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func flagFrom(ctx context.Context) (*interruptFlag, bool) {
	if ctx == nil {
		return nil, false
	}
	flag, ok := ctx.Value(InterruptFlagKey).(*interruptFlag)
	return flag, ok
}
