package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sdmc-web/envsettings/internal/settings"
)

var errAuditFailed = errors.New("settings audit failed")

var (
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
)

// formatFinding colours the severity when stdout is a terminal.
func formatFinding(f settings.Finding) string {
	sev := string(f.Severity)
	switch f.Severity {
	case settings.SeverityError:
		sev = red(sev)
	case settings.SeverityWarning:
		sev = yellow(sev)
	}
	return fmt.Sprintf("%s: %s: %s", sev, f.Path, f.Message)
}

func newDoctorCommand(c *cli) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Report problems with the resolved settings",
		Long: `Audits the resolved settings for values that should not reach production:
placeholder database passwords, the placeholder analytics account, invalid
connection fields and trusted host patterns that do not compile.

Errors always fail the command; with --strict warnings fail it too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.resolve()
			if err != nil {
				return err
			}

			findings := settings.NewAuditor().Audit(result.Settings())
			out := cmd.OutOrStdout()
			if len(findings) == 0 {
				fmt.Fprintln(out, green("no findings"))
				return nil
			}

			for _, f := range findings {
				fmt.Fprintln(out, formatFinding(f))
			}

			c.logger.Info("settings audited", "findings", len(findings), "profiles", result.Matched())

			if settings.HasErrors(findings) || strict {
				return fmt.Errorf("%w: %d finding(s)", errAuditFailed, len(findings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings as well as errors")
	return cmd
}
