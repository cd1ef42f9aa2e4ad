package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/outcome/internal/cli"
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/diag"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one CLI invocation and returns its process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	level := zapcore.InfoLevel
	if debugRequested(args) {
		level = zapcore.DebugLevel
	}
	logger, err := diag.NewConsoleLogger(level, "stderr")
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to init logger: %v\n", err)
		return cli.ExitFailure
	}
	defer logger.Sync()
	defer diag.UseZap(logger)()

	rootCmd := newRootCmd(logger)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(rop.WithInterruptFlag(ctx)); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitFailure
	}
	return cli.ExitOK
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	var (
		debug      bool
		categories string
	)

	rootCmd := &cobra.Command{
		Use:   "outcome",
		Short: "Outcome algebra playground",
		Long: `outcome runs small pipelines built on the outcome algebra:
- sum integers through parse, validate and map steps
- expand "{}" message templates
- list generic and YAML-registered failure categories`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.SetDebugMode(debug)
			cli.SetCategoriesFile(categories)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging and verbose failure output")
	rootCmd.PersistentFlags().StringVar(&categories, "categories", "", "YAML file with user-defined failure categories")

	initCommands(rootCmd, logger)
	return rootCmd
}

func initCommands(rootCmd *cobra.Command, logger *zap.Logger) {
	rootCmd.AddCommand(cli.NewSumCmd(logger))
	rootCmd.AddCommand(cli.NewExpandCmd(logger))
	rootCmd.AddCommand(cli.NewCategoriesCmd(logger))
}

// debugRequested scans raw args for --debug so the logger level is known
// before cobra parses flags.
func debugRequested(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--debug" || arg == "--debug=true" {
			return true
		}
	}
	return false
}
