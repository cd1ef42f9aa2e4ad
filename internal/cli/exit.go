package cli

import "github.com/ib-77/outcome/pkg/rop/failure"

// Process exit codes derived from the failure category of a command.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitChecked     = 2
	ExitRuntime     = 3
	ExitInterrupted = 130
)

// ExitError carries a failed command's description and the exit code it maps to.
type ExitError struct {
	Code    int
	Failure *failure.Description
}

func (e *ExitError) Error() string {
	return e.Failure.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Failure
}

// ExitCode maps a failure to a process exit code. A nil failure is success.
// Generic categories get their own codes; every other category exits with 1.
func ExitCode(d *failure.Description) int {
	if d == nil {
		return ExitOK
	}
	switch d.Category() {
	case failure.CheckedError:
		return ExitChecked
	case failure.RuntimeError:
		return ExitRuntime
	case failure.Interrupted:
		return ExitInterrupted
	default:
		return ExitFailure
	}
}

func exitWith(d *failure.Description) error {
	return &ExitError{Code: ExitCode(d), Failure: d}
}
