package failure

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/rop/template"
)

// Category classifies a family of failures with a reusable title and
// message template.
type Category interface {
	// Title is the default title of failures in this category.
	Title() string
	// Template is the default detail template; it may contain "{}" placeholders.
	Template() string
	// TemplateParameterCount is the number of placeholders in Template.
	TemplateParameterCount() int
}

// Generic enumerates the built-in categories.
type Generic int

const (
	// Unspecified is used when nothing more specific is known.
	Unspecified Generic = iota
	// CheckedError tags failures produced from a returned error.
	CheckedError
	// RuntimeError tags failures produced from a recovered panic.
	RuntimeError
	// Interrupted tags failures produced from a cancellation or interrupt.
	Interrupted
)

var genericSpecs = [...]struct {
	name     string
	title    string
	template string
}{
	Unspecified:  {name: "unspecified", title: "Unspecified failure"},
	CheckedError: {name: "checked-error", title: "Operation returned an error"},
	RuntimeError: {name: "runtime-error", title: "Operation panicked"},
	Interrupted:  {name: "interrupted", title: "Operation interrupted"},
}

// Generics returns the built-in categories in declaration order.
func Generics() []Category {
	out := make([]Category, 0, len(genericSpecs))
	for i := range genericSpecs {
		out = append(out, Generic(i))
	}
	return out
}

func (g Generic) valid() bool {
	return g >= 0 && int(g) < len(genericSpecs)
}

func (g Generic) Title() string {
	if !g.valid() {
		return genericSpecs[Unspecified].title
	}
	return genericSpecs[g].title
}

func (g Generic) Template() string {
	if !g.valid() {
		return genericSpecs[Unspecified].template
	}
	return genericSpecs[g].template
}

func (g Generic) TemplateParameterCount() int {
	return template.Count(g.Template())
}

// String returns the stable name of the category.
func (g Generic) String() string {
	if !g.valid() {
		return fmt.Sprintf("generic(%d)", int(g))
	}
	return genericSpecs[g].name
}

type category struct {
	title    string
	template string
}

// NewCategory defines a user category.
func NewCategory(title, template string) Category {
	return category{title: title, template: template}
}

func (c category) Title() string    { return c.title }
func (c category) Template() string { return c.template }

func (c category) TemplateParameterCount() int {
	return template.Count(c.template)
}

func (c category) String() string {
	return c.title
}
