package failure

import "fmt"

// New creates an Unspecified failure.
func New() *Description {
	return NewBuilder().Build()
}

// Newf creates an Unspecified failure whose detail is the expanded template.
//
// Example:
//
//	d := failure.Newf("quota of {} exceeded by {}", "alice", 3)
func Newf(tpl string, args ...any) *Description {
	return NewBuilder().Template(tpl).Args(args...).Build()
}

// Titled creates an Unspecified failure with a custom title.
func Titled(title string) *Description {
	return NewBuilder().Title(title).Build()
}

// Titledf creates a failure with a custom title and a templated detail.
func Titledf(title, tpl string, args ...any) *Description {
	return NewBuilder().Title(title).Template(tpl).Args(args...).Build()
}

// Categorized creates a failure of category c, expanding the category's
// template with args. When the category template takes no placeholders and a
// single argument is given, that argument is used as the detail template.
func Categorized(c Category, args ...any) *Description {
	b := NewBuilder().Category(c)
	if c != nil && c.TemplateParameterCount() == 0 && len(args) == 1 {
		return b.Template(fmt.Sprint(args[0])).Build()
	}
	return b.Args(args...).Build()
}

// Wrap creates a CheckedError failure from cause alone.
func Wrap(cause error) *Description {
	return NewBuilder().Cause(cause).Build()
}

// WrapCategorized creates a failure of category c caused by cause.
// Without args the detail is the cause's message.
func WrapCategorized(cause error, c Category, args ...any) *Description {
	b := NewBuilder().Cause(cause).Category(c)
	if c != nil && len(args) > 0 {
		b = b.Template(c.Template()).Args(args...)
	}
	return b.Build()
}

// Wrapf creates a CheckedError failure caused by cause with a templated detail.
func Wrapf(cause error, tpl string, args ...any) *Description {
	return NewBuilder().Cause(cause).Template(tpl).Args(args...).Build()
}
