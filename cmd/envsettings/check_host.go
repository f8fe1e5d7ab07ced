package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sdmc-web/envsettings/internal/settings"
)

var errUntrustedHosts = errors.New("untrusted hosts")

func newCheckHostCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check-host HOST [HOST ...]",
		Short: "Check host names against the trusted host patterns",
		Long: `Matches each host (an optional port is ignored) against the resolved trusted
host patterns the way the framework does. Exits non-zero when any host is
untrusted. When no profile sets patterns every host is trusted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.resolve()
			if err != nil {
				return err
			}

			hosts, err := settings.CompileHosts(result.Settings().TrustedHostPatterns)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "HOST\tTRUSTED\tPATTERN")

			var untrusted []string
			for _, host := range args {
				pattern, ok := hosts.Match(host)
				if !ok {
					untrusted = append(untrusted, host)
				}
				if pattern == "" {
					pattern = "-"
				}
				fmt.Fprintf(tw, "%s\t%t\t%s\n", host, ok, pattern)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(untrusted) > 0 {
				c.logger.Warn("untrusted hosts found", "hosts", untrusted)
				return fmt.Errorf("%w: %s", errUntrustedHosts, strings.Join(untrusted, ", "))
			}
			return nil
		},
	}
}
