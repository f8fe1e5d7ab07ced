package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdmc-web/envsettings/internal/environ"
)

func newExportCommand(c *cli) *cobra.Command {
	var shell bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the derived environment variables",
		Long: `Prints the environment variables the matched profiles derive, including
CI=true for CI runs. The default output is a dotenv file; --shell prints
lines suitable for eval:

  eval "$(envsettings export --shell)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.resolve()
			if err != nil {
				return err
			}

			vars := result.Settings().EnvMap(environ.EnvCI)
			if len(vars) == 0 {
				return nil
			}

			if shell {
				return writeShellExports(cmd.OutOrStdout(), vars)
			}

			out, err := environ.MarshalDotenv(vars)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&shell, "shell", false, "Print POSIX shell export statements")
	return cmd
}

func writeShellExports(w io.Writer, vars map[string]string) error {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "export %s=%s\n", name, shellQuote(vars[name])); err != nil {
			return err
		}
	}
	return nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
