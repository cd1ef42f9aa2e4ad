package template

import (
	"fmt"
	"strings"

	"github.com/ib-77/outcome/pkg/rop/diag"
)

const (
	// Placeholder is the positional marker substituted by Expand.
	Placeholder = "{}"
	// NotSupplied pads the argument list when it is shorter than the
	// number of placeholders.
	NotSupplied = "NotSupplied"
	// MsgArgumentMismatch is the diagnostic emitted when the argument count
	// differs from the placeholder count.
	MsgArgumentMismatch = "template argument count does not match placeholder count"
)

// Count returns the number of non-overlapping placeholders in template.
func Count(template string) int {
	if template == "" {
		return 0
	}
	return strings.Count(template, Placeholder)
}

// Expand substitutes the placeholders of template left to right with the
// string form of args. An empty template yields an empty string.
func Expand(template string, args ...any) string {
	if template == "" {
		return ""
	}

	placeholders := Count(template)
	if len(args) != placeholders {
		diag.Warn("template", MsgArgumentMismatch,
			"template", template,
			"placeholders", placeholders,
			"arguments", len(args))
	}
	if placeholders == 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for i := 0; i < placeholders; i++ {
		at := strings.Index(rest, Placeholder)
		b.WriteString(rest[:at])
		b.WriteString(argString(args, i))
		rest = rest[at+len(Placeholder):]
	}
	b.WriteString(rest)

	return b.String()
}

func argString(args []any, i int) string {
	if i >= len(args) {
		return NotSupplied
	}
	return fmt.Sprint(args[i])
}
