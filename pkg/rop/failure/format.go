package failure

import (
	"errors"
	"fmt"
	"strings"
)

// UserString returns a user-safe message for err.
// Descriptions render as their detail, falling back to their title;
// other errors render as err.Error().
func UserString(err error) string {
	if err == nil {
		return ""
	}
	var d *Description
	if errors.As(err, &d) {
		if d.detail != "" {
			return d.detail
		}
		if d.title != "" {
			return d.title
		}
	}
	return err.Error()
}

// DebugString returns a verbose rendering of err and its cause chain.
func DebugString(err error) string {
	if err == nil {
		return ""
	}
	chain := flattenChain(err)
	var b strings.Builder
	for i, item := range chain {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch typed := item.(type) {
		case *Description:
			b.WriteString(fmt.Sprintf("%d: %T: %s", i+1, typed, typed.Error()))
			b.WriteString(fmt.Sprintf(" | category=%q", categoryName(typed.Category())))
			if typed.title != "" {
				b.WriteString(fmt.Sprintf(" | title=%q", typed.title))
			}
			if typed.detail != "" {
				b.WriteString(fmt.Sprintf(" | detail=%q", typed.detail))
			}
		default:
			b.WriteString(fmt.Sprintf("%d: %T: %s", i+1, item, item.Error()))
		}
	}
	return b.String()
}

func categoryName(c Category) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return c.Title()
}

// flattenChain lists err and everything it wraps, breadth first, so the
// branches of a joined error appear before their own causes.
func flattenChain(err error) []error {
	const maxEntries = 64

	var out []error
	for level := []error{err}; len(level) > 0 && len(out) < maxEntries; {
		var next []error
		for _, e := range level {
			if e == nil || len(out) == maxEntries {
				continue
			}
			out = append(out, e)
			next = append(next, causes(e)...)
		}
		level = next
	}
	return out
}

// causes returns the errors directly wrapped by err.
func causes(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	if next := errors.Unwrap(err); next != nil {
		return []error{next}
	}
	return nil
}
