// Package cli wires configuration, logging and the greeter into a cobra
// command and maps failures to process exit codes.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sandrolain/greeter/src/config"
	"github.com/sandrolain/greeter/src/greeter"
	"github.com/sandrolain/greeter/src/logging"
)

const (
	ExitOK    = 0
	ExitError = 1
)

// NewCommand returns the root command. Flag parsing is disabled: every token,
// including ones starting with a dash, is handed to the greeter.
func NewCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "greeter NAME",
		Short:              "Print a greeting to NAME",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := greeter.NameFromArgs(args)
			if err != nil {
				return err
			}
			logger.Debug("greeting", "name", name, "ignored", len(args)-1)
			return greeter.Greet(cmd.OutOrStdout(), name)
		},
	}
}

// Run executes the program with args (without the program name) and returns
// the exit code. The greeting goes to stdout, diagnostics to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("failed to load configuration", "error", err)
		return ExitError
	}

	logger := logging.New(stderr, cfg.Log).With("run", uuid.NewString())
	logger.Debug("greeter started")
	logBuildInfo(logger)

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	cmd := NewCommand(logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := execute(ctx, cmd, args); err != nil {
		logger.Error("greeter failed", "error", err)
		return ExitError
	}

	logger.Debug("greeter finished")
	return ExitOK
}

// execute runs cmd. cobra routes its shell completion tokens to a hidden
// subcommand even with flag parsing disabled, so those bypass the router.
func execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		cmd.SetContext(ctx)
		return cmd.RunE(cmd, args)
	}
	return cmd.ExecuteContext(ctx)
}
