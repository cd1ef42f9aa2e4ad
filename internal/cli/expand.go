package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/failure"
	"github.com/ib-77/outcome/pkg/rop/template"
)

// UnknownCategory tags lookups of names missing from the registry.
var UnknownCategory = failure.NewCategory("Unknown category", "no category named {}")

// MissingTemplate tags expand invocations without a template.
var MissingTemplate = failure.NewCategory("Missing template", "expand needs a template or --category")

// NewExpandCmd returns the expand command, which substitutes "{}" placeholders.
func NewExpandCmd(logger *zap.Logger) *cobra.Command {
	var categoryName string

	cmd := &cobra.Command{
		Use:   "expand [template] [args...]",
		Short: "Expand a message template",
		Long: `Replace each "{}" in the template with the next argument.
Missing arguments print as NotSupplied and extra ones are ignored; a mismatch
is logged as a warning. With --category the template of a registered category
is used and every argument is a substitution value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := runLogger(logger, "expand")
			p := NewPrinter(cmd)
			return report(p, log, Expand(categoryName, CategoriesFile(), args), func(s string) {
				p.Println(s)
			})
		},
	}

	cmd.Flags().StringVar(&categoryName, "category", "", "Name of a registered category whose template is expanded")

	return cmd
}

// Expand expands either args[0] with args[1:] or, when categoryName is set,
// the named category's template with all args.
func Expand(categoryName, registryPath string, args []string) rop.Outcome[string] {
	if categoryName == "" {
		if len(args) == 0 {
			return rop.Fail[string](failure.Categorized(MissingTemplate))
		}
		return rop.Success(template.Expand(args[0], toAny(args[1:])...))
	}

	category := rop.FlatMap(loadRegistry(registryPath), func(r *failure.Registry) rop.Outcome[failure.Category] {
		c, ok := r.Lookup(categoryName)
		if !ok {
			return rop.Fail[failure.Category](failure.Categorized(UnknownCategory, categoryName))
		}
		return rop.Success(c)
	})
	return rop.Map(category, func(c failure.Category) string {
		return template.Expand(c.Template(), toAny(args)...)
	})
}

func toAny(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}
