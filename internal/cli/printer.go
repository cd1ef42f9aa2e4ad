package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ib-77/outcome/pkg/rop/failure"
)

// Printer renders command output. Results go to Out, failures to Err.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Quiet bool
}

// NewPrinter returns a Printer writing to the command's output streams.
func NewPrinter(cmd *cobra.Command) *Printer {
	if cmd == nil {
		return &Printer{Out: os.Stdout, Err: os.Stderr}
	}
	return &Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}

// Println writes a plain line to Out.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.Out, a...)
}

// Info writes an informational line unless the printer is quiet.
func (p *Printer) Info(format string, a ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprint(p.Out, pterm.Info.Sprintfln(format, a...))
}

// Success writes a success line unless the printer is quiet.
func (p *Printer) Success(format string, a ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprint(p.Out, pterm.Success.Sprintfln(format, a...))
}

// Failure writes d to Err. Debug mode prints the whole cause chain.
func (p *Printer) Failure(d *failure.Description) {
	fmt.Fprint(p.Err, pterm.Error.Sprintln(failureLine(d)))
}

func failureLine(d *failure.Description) string {
	msg := failure.UserString(d)
	if IsDebugMode() {
		msg = failure.DebugString(d)
	}
	switch title := d.Title(); {
	case title == "" || title == msg:
		return msg
	case msg == "":
		return title
	default:
		return title + ": " + msg
	}
}

// Table renders data with its first row as header. Empty data prints nothing.
func (p *Printer) Table(data [][]string) error {
	if len(data) == 0 {
		return nil
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(p.Out, out)
	return nil
}
