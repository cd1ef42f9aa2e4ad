package failure

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidArgument is the panic value (wrapped) for a missing required argument.
var ErrInvalidArgument = errors.New("invalid argument")

// Description is the immutable record of why an operation failed.
// It implements error so it can cross plain Go error boundaries.
type Description struct {
	category Category
	title    string
	detail   string
	cause    error
}

// Category returns the failure category; it is never nil.
func (d *Description) Category() Category {
	if d == nil || d.category == nil {
		return Unspecified
	}
	return d.category
}

func (d *Description) Title() string {
	if d == nil {
		return ""
	}
	return d.title
}

func (d *Description) Detail() string {
	if d == nil {
		return ""
	}
	return d.detail
}

// Cause returns the underlying error, if any.
func (d *Description) Cause() error {
	if d == nil {
		return nil
	}
	return d.cause
}

// Error implements the error interface.
func (d *Description) Error() string {
	if d == nil {
		return ""
	}
	switch {
	case d.title != "" && d.detail != "":
		return fmt.Sprintf("%s: %s", d.title, d.detail)
	case d.detail != "":
		return d.detail
	case d.title != "":
		return d.title
	}
	return "failure"
}

// Unwrap returns the cause so errors.Is and errors.As see through a Description.
func (d *Description) Unwrap() error {
	if d == nil {
		return nil
	}
	return d.cause
}

// HasCategory reports whether err is, or wraps, a Description of category c.
func HasCategory(err error, c Category) bool {
	var d *Description
	if !errors.As(err, &d) {
		return false
	}
	return sameCategory(d.Category(), c)
}

// sameCategory compares categories without panicking on dynamic types that
// are not comparable; those match when deeply equal.
func sameCategory(a, b Category) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
