package failure

import (
	"fmt"
	"reflect"

	"github.com/ib-77/outcome/pkg/rop/diag"
	"github.com/ib-77/outcome/pkg/rop/template"
)

// MsgCauseOnly is the diagnostic emitted when a description is built from a
// cause and nothing else.
const MsgCauseOnly = "failure built from a cause only; category, title and detail are defaulted"

// Builder accumulates the optional inputs of a Description.
// Setters return a new Builder and never modify the receiver, so the order in
// which they are called does not matter.
type Builder struct {
	category    Category
	title       string
	detail      string
	template    string
	cause       error
	args        []any
	titleSet    bool
	detailSet   bool
	templateSet bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() Builder {
	return Builder{}
}

// From seeds a Builder with every field of d, for partial overrides.
// It panics if d is nil.
func From(d *Description) Builder {
	if d == nil {
		panic(fmt.Errorf("%w: source description is nil", ErrInvalidArgument))
	}
	return Builder{
		category:  d.Category(),
		title:     d.title,
		detail:    d.detail,
		cause:     d.cause,
		titleSet:  true,
		detailSet: true,
	}
}

// Category sets the category. A nil category leaves it unset.
func (b Builder) Category(c Category) Builder {
	b.category = c
	return b
}

func (b Builder) Title(title string) Builder {
	b.title = title
	b.titleSet = true
	return b
}

func (b Builder) Detail(detail string) Builder {
	b.detail = detail
	b.detailSet = true
	return b
}

// Template sets the detail template expanded with Args.
func (b Builder) Template(tpl string) Builder {
	b.template = tpl
	b.templateSet = true
	return b
}

// Cause sets the underlying error. A nil error, typed nil included, leaves
// the cause unset.
func (b Builder) Cause(cause error) Builder {
	if isNilError(cause) {
		cause = nil
	}
	b.cause = cause
	return b
}

// Args replaces the template arguments.
func (b Builder) Args(args ...any) Builder {
	b.args = append([]any(nil), args...)
	return b
}

// Build resolves the accumulated inputs into a Description.
func (b Builder) Build() *Description {
	if b.causeOnly() {
		diag.Warn("failure", MsgCauseOnly, "cause", b.cause.Error())
	}

	resolved := b.resolveCategory()
	return &Description{
		category: resolved,
		title:    b.resolveTitle(resolved),
		detail:   b.resolveDetail(resolved),
		cause:    b.cause,
	}
}

func (b Builder) causeOnly() bool {
	return b.cause != nil && b.category == nil && !b.titleSet && !b.templateSet && !b.detailSet
}

func (b Builder) resolveCategory() Category {
	switch {
	case b.category != nil:
		return b.category
	case b.cause != nil:
		return CheckedError
	default:
		return Unspecified
	}
}

func (b Builder) resolveDetail(c Category) string {
	switch {
	case b.detailSet:
		return b.detail
	case b.templateSet:
		return template.Expand(b.template, b.args...)
	case b.cause != nil:
		return b.cause.Error()
	default:
		return template.Expand(c.Template(), b.args...)
	}
}

func (b Builder) resolveTitle(c Category) string {
	if b.titleSet {
		return b.title
	}
	return c.Title()
}

func isNilError(err error) bool {
	if err == nil {
		return true
	}
	switch v := reflect.ValueOf(err); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
