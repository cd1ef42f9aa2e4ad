package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/chain"
	"github.com/ib-77/outcome/pkg/rop/failure"
)

// NegativeInput tags sum arguments below zero.
var NegativeInput = failure.NewCategory("Negative input", "argument {} is negative: {}")

// NewSumCmd returns the sum command, which adds non-negative integers.
func NewSumCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "sum <ints...>",
		Short: "Add non-negative integers",
		Long: `Parse every argument as an integer, reject negative values and print the sum.
Parse errors exit with 2, negative values with 1.
Pass negative numbers after "--" so they are not read as flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := runLogger(logger, "sum")
			p := NewPrinter(cmd)
			return report(p, log, Sum(cmd.Context(), args), func(total int) {
				p.Println(total)
			})
		},
	}
}

// Sum parses args, validates them and adds them up.
func Sum(ctx context.Context, args []string) rop.Outcome[int] {
	if ctx == nil {
		ctx = context.Background()
	}
	parsed := chain.Attempt(ctx, func(context.Context) ([]int, error) {
		return parseInts(args)
	})
	valid := chain.Then(parsed, func(_ context.Context, values []int) rop.Outcome[[]int] {
		for i, v := range values {
			if v < 0 {
				return rop.Fail[[]int](failure.Categorized(NegativeInput, i+1, v))
			}
		}
		return rop.Success(values)
	})
	return chain.Map(valid, func(_ context.Context, values []int) int {
		total := 0
		for _, v := range values {
			total += v
		}
		return total
	}).Outcome()
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}
