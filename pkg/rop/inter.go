package rop

import "github.com/ib-77/outcome/pkg/rop/failure"

type PayloadProvider[T any] interface {
	// Payload returns the success payload; it panics on failure
	Payload() T
	// HasPayload returns true for a quantified success
	HasPayload() bool
}

// WithFailure defines an interface for types that hold a payload or a failure description
type WithFailure[T any] interface {
	PayloadProvider[T]
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Err returns the failure as an error, nil on success
	Err() error
	// Description returns the failure description; it panics on success
	Description() *failure.Description
}

var _ WithFailure[int] = Outcome[int]{}
