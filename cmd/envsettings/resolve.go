package main

import (
	"github.com/spf13/cobra"

	"github.com/sdmc-web/envsettings/internal/config"
	"github.com/sdmc-web/envsettings/internal/render"
)

func newResolveCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved settings",
		Long: `Evaluates every profile against the environment and prints the layered
result. With no matching profile the output is empty settings, meaning the
framework defaults stay untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(c.cfg.Output.Format)
			if err != nil {
				return err
			}

			result, err := c.resolve()
			if err != nil {
				return err
			}

			return render.Write(cmd.OutOrStdout(), result.Settings(), render.Options{
				Format:   format,
				Redact:   c.cfg.Output.Redact,
				Profiles: result.Matched(),
			})
		},
	}

	cmd.Flags().StringP("format", "f", config.DefaultOutputFormat, "Output format: json, yaml, php, dotenv")
	cmd.Flags().Bool("redact", false, "Replace database passwords with a placeholder")
	return cmd
}
