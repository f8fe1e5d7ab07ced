package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newProfilesCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List settings profiles and whether they match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := c.resolverSet()
			if err != nil {
				return err
			}
			result := set.Resolve(c.env)

			matched := make(map[string]bool, len(result.Matches))
			for _, name := range result.Matched() {
				matched[name] = true
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tMATCHED\tDESCRIPTION")
			for _, r := range set.Resolvers() {
				fmt.Fprintf(tw, "%s\t%t\t%s\n", r.Name(), matched[r.Name()], r.Description())
			}
			return tw.Flush()
		},
	}
}
