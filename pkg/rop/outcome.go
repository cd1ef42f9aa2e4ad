package rop

import (
	"errors"
	"fmt"

	"github.com/ib-77/outcome/pkg/rop/failure"
)

var (
	// ErrIllegalState is the panic value (wrapped) for an operation that is
	// invalid for the variant it is called on.
	ErrIllegalState = errors.New("illegal state")
	// ErrInvalidArgument is the panic value (wrapped) for a missing required argument.
	ErrInvalidArgument = failure.ErrInvalidArgument
)

// Kind identifies the variant of an Outcome.
type Kind int

const (
	// Unqualified is a success without a payload.
	Unqualified Kind = iota
	// Quantified is a success holding a payload.
	Quantified
	// Failed holds a failure description and never a payload.
	Failed
)

func (k Kind) String() string {
	switch k {
	case Unqualified:
		return "unqualified"
	case Quantified:
		return "quantified"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Outcome is the result of an operation. The zero value is an unqualified
// success.
type Outcome[T any] struct {
	kind    Kind
	payload T
	failure *failure.Description
}

// Done returns a success without a payload.
func Done[T any]() Outcome[T] {
	return Outcome[T]{kind: Unqualified}
}

// Success returns a quantified success holding v, or an unqualified success
// when v is nil.
func Success[T any](v T) Outcome[T] {
	if IsNil(v) {
		return Done[T]()
	}
	return Outcome[T]{kind: Quantified, payload: v}
}

// Fail returns a failed Outcome wrapping d. It panics if d is nil.
func Fail[T any](d *failure.Description) Outcome[T] {
	if d == nil {
		panic(invalidArgument("failure description"))
	}
	return Outcome[T]{kind: Failed, failure: d}
}

// FailFrom re-types a failed Outcome. It panics if from is a success.
func FailFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	if from.kind != Failed {
		panic(fmt.Errorf("%w: %s outcome cannot be re-typed as a failure", ErrIllegalState, from.kind))
	}
	return Outcome[Out]{kind: Failed, failure: from.failure}
}

func (o Outcome[T]) Kind() Kind {
	return o.kind
}

func (o Outcome[T]) IsSuccess() bool {
	return o.kind != Failed
}

func (o Outcome[T]) IsFailure() bool {
	return o.kind == Failed
}

// HasPayload reports whether o is a quantified success.
func (o Outcome[T]) HasPayload() bool {
	return o.kind == Quantified
}

// Payload returns the payload, or the zero value for an unqualified success.
// It panics on a failed Outcome.
func (o Outcome[T]) Payload() T {
	if o.kind == Failed {
		panic(fmt.Errorf("%w: payload requested from a failed outcome: %v", ErrIllegalState, o.failure))
	}
	return o.payload
}

// Get returns the payload and whether one is present. It never panics.
func (o Outcome[T]) Get() (T, bool) {
	if o.kind != Quantified {
		var zero T
		return zero, false
	}
	return o.payload, true
}

// Description returns the failure description. It panics on a success.
func (o Outcome[T]) Description() *failure.Description {
	if o.kind != Failed {
		panic(fmt.Errorf("%w: description requested from a %s success", ErrIllegalState, o.kind))
	}
	return o.failure
}

// Err returns the failure description as an error, or nil on success.
func (o Outcome[T]) Err() error {
	if o.kind != Failed {
		return nil
	}
	return o.failure
}

func (o Outcome[T]) String() string {
	switch o.kind {
	case Quantified:
		return fmt.Sprintf("Success(%v)", o.payload)
	case Failed:
		return fmt.Sprintf("Failure(%s)", o.failure.Error())
	}
	return "Success()"
}

func invalidArgument(name string) error {
	return fmt.Errorf("%w: %s must not be nil", ErrInvalidArgument, name)
}
