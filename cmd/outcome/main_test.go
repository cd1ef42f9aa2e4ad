package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ib-77/outcome/internal/cli"
)

func TestDebugRequested(t *testing.T) {
	assert.True(t, debugRequested([]string{"sum", "--debug", "1"}))
	assert.True(t, debugRequested([]string{"--debug=true", "categories"}))
	assert.False(t, debugRequested([]string{"sum", "1", "2"}))
	assert.False(t, debugRequested([]string{"sum", "--", "--debug"}))
}

func TestRun_ExitCodes(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		args    []string
		want    int
		wantOut string
	}{
		{name: "sum", ctx: context.Background(), args: []string{"sum", "1", "2"}, want: cli.ExitOK, wantOut: "3\n"},
		{name: "sum again", ctx: context.Background(), args: []string{"sum", "4", "5"}, want: cli.ExitOK, wantOut: "9\n"},
		{name: "negative input", ctx: context.Background(), args: []string{"sum", "--", "1", "-2"}, want: cli.ExitFailure},
		{name: "unknown command", ctx: context.Background(), args: []string{"nope"}, want: cli.ExitFailure},
		{name: "parse error", ctx: context.Background(), args: []string{"sum", "x"}, want: cli.ExitChecked},
		{name: "interrupted", ctx: cancelled, args: []string{"sum", "1"}, want: cli.ExitInterrupted},
		{name: "expand", ctx: context.Background(), args: []string{"expand", "{}!", "hi"}, want: cli.ExitOK, wantOut: "hi!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			got := run(tt.ctx, tt.args, &stdout, &stderr)
			assert.Equal(t, tt.want, got, "stderr: %s", stderr.String())
			if tt.wantOut != "" {
				assert.Equal(t, tt.wantOut, stdout.String())
			}
		})
	}
}

func TestNewRootCmd_FreshCommandTree(t *testing.T) {
	first := newRootCmd(zap.NewNop())
	second := newRootCmd(zap.NewNop())

	assert.Len(t, first.Commands(), 3)
	assert.Len(t, second.Commands(), 3)
	assert.NotSame(t, first, second)
}
