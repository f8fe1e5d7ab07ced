package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sdmc-web/envsettings/internal/environ"
)

func newRunCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "run -- COMMAND [ARG ...]",
		Short: "Run a command with the derived environment applied",
		Long: `Runs COMMAND with the process environment (plus any --env-file values) and
the variables derived by the matched profiles, e.g. AH_SITE_ENVIRONMENT=stg
on the stage box. The exit status of COMMAND is passed through.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.resolve()
			if err != nil {
				return err
			}

			derived := result.Settings().EnvMap(environ.EnvCI)
			for name, value := range derived {
				c.logger.Debug("applying derived variable",
					"name", name,
					"value", environ.MaskSensitiveValue(name, value))
			}
			env := c.env.With(derived)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			child := exec.CommandContext(ctx, args[0], args[1:]...)
			child.Env = env.Environ()
			child.Stdin = cmd.InOrStdin()
			child.Stdout = cmd.OutOrStdout()
			child.Stderr = cmd.ErrOrStderr()

			c.logger.Debug("starting command",
				"command", args[0],
				"args", len(args)-1,
				"profiles", result.Matched())

			if err := child.Run(); err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
					return &exitCodeError{code: exitErr.ExitCode()}
				}
				return fmt.Errorf("failed to run %s: %w", args[0], err)
			}
			return nil
		},
	}
}
