package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdmc-web/envsettings/internal/config"
	"github.com/sdmc-web/envsettings/internal/environ"
	"github.com/sdmc-web/envsettings/internal/platform/logger"
	"github.com/sdmc-web/envsettings/internal/resolver"
)

// options are the process-level inputs of the CLI, replaced in tests.
type options struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	environ func() environ.Snapshot
}

func defaultOptions() options {
	return options{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: environ.FromOS,
	}
}

// cli holds state shared by all subcommands after the root pre-run.
type cli struct {
	opts    options
	cfgFile string

	cfg    *config.Config
	env    environ.Snapshot
	logger *slog.Logger
}

func newRootCommand(opts options) *cobra.Command {
	c := &cli{opts: opts}

	root := &cobra.Command{
		Use:   "envsettings",
		Short: "Resolve environment-conditional Drupal settings",
		Long: `envsettings evaluates the environment-conditional settings profiles of the
site against the process environment and prints what the settings.php
includes would produce.

Profiles:
  bitbucket   BITBUCKET_COMMIT is present (any value)
  stage       SDMC_ENV is exactly "stage"

Examples:
  envsettings resolve --format php > settings.local.php
  envsettings export --shell
  envsettings check-host stage.loc
  envsettings run -- drush status
  envsettings serve --addr :8080`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetIn(opts.stdin)
	root.SetOut(opts.stdout)
	root.SetErr(opts.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "Path to config file (default: ./envsettings.yaml if present)")
	pf.StringArray("env-file", nil, "Dotenv file layered over the process environment (repeatable)")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	pf.String("log-format", config.DefaultLogFormat, "Log format: json, text")
	pf.StringSlice("profile", nil, "Only evaluate the named profile (repeatable)")

	root.AddCommand(
		newResolveCommand(c),
		newExportCommand(c),
		newCheckHostCommand(c),
		newDoctorCommand(c),
		newRunCommand(c),
		newServeCommand(c),
		newProfilesCommand(c),
	)

	return root
}

// setup loads configuration, builds the environment snapshot and installs
// the logger. Logs always go to stderr.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	c.cfg = cfg

	env := c.opts.environ()
	if len(cfg.EnvFiles) > 0 {
		env, err = environ.LoadDotenv(env, cfg.EnvFiles...)
		if err != nil {
			return err
		}
	}
	c.env = env

	log, err := logger.Setup(cfg.Log, cmd.ErrOrStderr(), env)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	c.logger = log.With("command", cmd.Name())

	c.logger.Debug("configuration loaded",
		"log_level", cfg.Log.Level,
		"output_format", cfg.Output.Format,
		"env_files", cfg.EnvFiles,
		"env_vars", env.Len(),
		"ci", environ.IsCI(env),
		"profiles", cfg.Profiles)
	return nil
}

// resolverSet returns the default set restricted to the configured profiles.
func (c *cli) resolverSet() (*resolver.Set, error) {
	return resolver.Default(c.logger).Only(c.cfg.Profiles...)
}

func (c *cli) resolve() (resolver.Result, error) {
	set, err := c.resolverSet()
	if err != nil {
		return resolver.Result{}, err
	}
	return set.Resolve(c.env), nil
}
