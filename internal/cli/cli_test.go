package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/failure"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const registryYAML = `categories:
  - name: not-found
    title: Resource not found
    template: "{} was not found in {}"
`

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(failure.New()))
	assert.Equal(t, ExitChecked, ExitCode(failure.Wrap(errors.New("io"))))
	assert.Equal(t, ExitRuntime, ExitCode(failure.Categorized(failure.RuntimeError)))
	assert.Equal(t, ExitInterrupted, ExitCode(failure.Categorized(failure.Interrupted)))
	assert.Equal(t, ExitFailure, ExitCode(failure.Categorized(NegativeInput, 1, -1)))
}

func TestSum(t *testing.T) {
	ctx := context.Background()

	t.Run("adds values", func(t *testing.T) {
		assert.Equal(t, rop.Success(6), Sum(ctx, []string{"1", "2", "3"}))
	})

	t.Run("no values", func(t *testing.T) {
		assert.Equal(t, rop.Success(0), Sum(ctx, nil))
	})

	t.Run("parse error is checked", func(t *testing.T) {
		out := Sum(ctx, []string{"1", "x"})
		require.True(t, out.IsFailure())
		d := out.Description()
		assert.Equal(t, failure.CheckedError, d.Category())
		assert.Equal(t, `argument 2: strconv.Atoi: parsing "x": invalid syntax`, d.Detail())
		assert.Equal(t, ExitChecked, ExitCode(d))
	})

	t.Run("negative value", func(t *testing.T) {
		out := Sum(ctx, []string{"4", "-3"})
		require.True(t, out.IsFailure())
		d := out.Description()
		assert.Equal(t, NegativeInput, d.Category())
		assert.Equal(t, "Negative input", d.Title())
		assert.Equal(t, "argument 2 is negative: -3", d.Detail())
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(rop.WithInterruptFlag(ctx))
		cancel()
		out := Sum(cctx, []string{"1"})
		require.True(t, out.IsFailure())
		assert.Equal(t, ExitInterrupted, ExitCode(out.Description()))
		assert.True(t, rop.Interrupted(cctx))
	})
}

func TestSumCmd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		out, _, err := execute(t, NewSumCmd(zap.NewNop()), "2", "5")
		require.NoError(t, err)
		assert.Equal(t, "7\n", out)
	})

	t.Run("failure maps to exit code", func(t *testing.T) {
		_, errOut, err := execute(t, NewSumCmd(zap.NewNop()), "--", "1", "-2")
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, ExitFailure, exitErr.Code)
		assert.Contains(t, errOut, "argument 2 is negative: -2")
	})
}

func TestExpand(t *testing.T) {
	t.Run("template from args", func(t *testing.T) {
		assert.Equal(t, rop.Success("a-b"), Expand("", "", []string{"{}-{}", "a", "b"}))
	})

	t.Run("missing template", func(t *testing.T) {
		out := Expand("", "", nil)
		require.True(t, out.IsFailure())
		assert.Equal(t, MissingTemplate, out.Description().Category())
	})

	t.Run("generic category has empty template", func(t *testing.T) {
		assert.Equal(t, rop.Success(""), Expand("checked-error", "", nil))
	})

	t.Run("registered category", func(t *testing.T) {
		path := writeRegistry(t, registryYAML)
		assert.Equal(t, rop.Success("user was not found in db"), Expand("not-found", path, []string{"user", "db"}))
	})

	t.Run("unknown category", func(t *testing.T) {
		out := Expand("nope", "", nil)
		require.True(t, out.IsFailure())
		assert.Equal(t, "no category named nope", out.Description().Detail())
	})

	t.Run("unreadable registry", func(t *testing.T) {
		out := Expand("not-found", filepath.Join(t.TempDir(), "missing.yaml"), nil)
		require.True(t, out.IsFailure())
		assert.Equal(t, failure.CheckedError, out.Description().Category())
		assert.ErrorIs(t, out.Err(), os.ErrNotExist)
	})
}

func TestExpandCmd(t *testing.T) {
	out, _, err := execute(t, NewExpandCmd(zap.NewNop()), "hello {}", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

func TestCategoriesCmd(t *testing.T) {
	SetCategoriesFile(writeRegistry(t, registryYAML))
	defer SetCategoriesFile("")

	out, _, err := execute(t, NewCategoriesCmd(zap.NewNop()))
	require.NoError(t, err)
	for _, want := range []string{"checked-error", "Operation panicked", "not-found", "{} was not found in {}"} {
		assert.Contains(t, out, want)
	}
}

func TestCategoryRows(t *testing.T) {
	r, err := failure.NewRegistry(failure.RegistryEntry{Name: "quota", Title: "Quota exceeded", Template: "{} over {}"})
	require.NoError(t, err)

	rows := categoryRows(r)
	require.Len(t, rows, 1+len(failure.Generics())+1)
	assert.Equal(t, []string{"Name", "Title", "Template", "Parameters"}, rows[0])
	assert.Equal(t, []string{"unspecified", "Unspecified failure", "", "0"}, rows[1])
	assert.Equal(t, []string{"quota", "Quota exceeded", "{} over {}", "2"}, rows[len(rows)-1])
}

func TestPrinter(t *testing.T) {
	var out, errOut bytes.Buffer
	p := &Printer{Out: &out, Err: &errOut}

	p.Success("done %d", 1)
	p.Info("note")
	p.Failure(failure.Titledf("Broken", "part {}", "x"))
	require.NoError(t, p.Table([][]string{{"Name"}, {"value"}}))
	require.NoError(t, p.Table(nil))

	assert.Contains(t, out.String(), "done 1")
	assert.Contains(t, out.String(), "value")
	assert.Contains(t, errOut.String(), "part x")

	out.Reset()
	quiet := &Printer{Out: &out, Err: &errOut, Quiet: true}
	quiet.Success("hidden")
	quiet.Info("hidden")
	assert.Empty(t, out.String())
}

func TestFailureLine(t *testing.T) {
	assert.Equal(t, "Unspecified failure", failureLine(failure.New()))
	assert.Equal(t, "Broken: part x", failureLine(failure.Titledf("Broken", "part {}", "x")))
	assert.Equal(t, "part x", failureLine(failure.NewBuilder().Title("").Detail("part x").Build()))
}

func TestDebugModeFailureOutput(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	var errOut bytes.Buffer
	p := &Printer{Out: &bytes.Buffer{}, Err: &errOut}
	p.Failure(failure.Wrap(errors.New("disk full")))
	assert.Contains(t, errOut.String(), "category=")
	assert.Contains(t, errOut.String(), "disk full")
}
