package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/failure"
)

// NewCategoriesCmd returns the categories command, which lists the generic
// categories followed by those loaded from --categories.
func NewCategoriesCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List known failure categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := runLogger(logger, "categories")
			p := NewPrinter(cmd)
			rows := rop.Map(loadRegistry(CategoriesFile()), categoryRows)
			return report(p, log, rows, func(data [][]string) {
				if err := p.Table(data); err != nil {
					log.Warn("Failed to render table", zap.Error(err))
				}
			})
		},
	}
}

func categoryRows(r *failure.Registry) [][]string {
	data := [][]string{{"Name", "Title", "Template", "Parameters"}}
	for _, c := range failure.Generics() {
		data = append(data, categoryRow(fmt.Sprint(c), c))
	}
	for _, entry := range r.Entries() {
		c, ok := r.Lookup(entry.Name)
		if !ok {
			continue
		}
		data = append(data, categoryRow(entry.Name, c))
	}
	return data
}

func categoryRow(name string, c failure.Category) []string {
	return []string{name, c.Title(), c.Template(), fmt.Sprint(c.TemplateParameterCount())}
}
