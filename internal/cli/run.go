package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/failure"
)

// runLogger tags every log line of one command invocation with a fresh run id.
func runLogger(logger *zap.Logger, command string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger.With(zap.String("run_id", uuid.NewString()), zap.String("command", command))
}

// loadRegistry reads the configured category registry.
func loadRegistry(path string) rop.Outcome[*failure.Registry] {
	if path == "" {
		return rop.Attempt(func() (*failure.Registry, error) {
			return failure.NewRegistry()
		})
	}
	return rop.Attempt(func() (*failure.Registry, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return failure.LoadRegistry(f)
	})
}

// report prints and logs the terminal outcome of a command and returns the
// error cobra should see.
func report[T any](p *Printer, logger *zap.Logger, out rop.Outcome[T], onSuccess func(T)) error {
	return rop.Fold(out,
		func(v T) error {
			logger.Debug("command succeeded", zap.Stringer("outcome", out))
			onSuccess(v)
			return nil
		},
		func(d *failure.Description) error {
			logger.Debug("command failed",
				zap.String("category", fmt.Sprint(d.Category())),
				zap.String("detail", d.Detail()),
				zap.Int("exit_code", ExitCode(d)))
			p.Failure(d)
			return exitWith(d)
		})
}
