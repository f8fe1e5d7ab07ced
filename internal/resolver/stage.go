package resolver

import (
	"github.com/sdmc-web/envsettings/internal/environ"
	"github.com/sdmc-web/envsettings/internal/settings"
)

// Config split entities toggled per environment.
const (
	SplitProd  = "config_split.config_split.prod"
	SplitLocal = "config_split.config_split.local"
	SplitDev   = "config_split.config_split.dev"
	SplitStage = "config_split.config_split.stage"

	splitStatusKey = "status"
)

// Stage configures the site for the stage box.
type Stage struct{}

var _ Resolver = Stage{}

func (Stage) Name() string { return "stage" }

func (Stage) Description() string {
	return "stage server (SDMC_ENV=stage)"
}

// Resolve fires only when SDMC_ENV is exactly "stage".
func (Stage) Resolve(env environ.Snapshot) (settings.Settings, bool) {
	if !env.Equals(environ.EnvSiteEnv, environ.SiteEnvStage) {
		return settings.Settings{}, false
	}

	return settings.Settings{
		Environment: []settings.EnvAssignment{
			{Name: environ.EnvSiteEnvironment, Value: environ.SiteEnvironStage},
		},
		Databases: settings.SingleDefault(settings.DatabaseConnection{
			Database:  "sdmc",
			Username:  "drupal",
			Password:  "insecure.password",
			Host:      "localhost",
			Port:      "3306",
			Namespace: settings.NamespaceMySQLDriver,
			Driver:    settings.DriverMySQL,
			Prefix:    "",
		}),
		TrustedHostPatterns: []string{
			`^stage\.loc$`,
			`^localhost`,
			`^10\.70\.20\.167`,
		},
		Config: settings.Overrides{
			settings.BoolOverride(SplitProd, splitStatusKey, false),
			settings.BoolOverride(SplitLocal, splitStatusKey, false),
			settings.BoolOverride(SplitDev, splitStatusKey, false),
			settings.BoolOverride(SplitStage, splitStatusKey, true),
			settings.StringOverride(settings.AnalyticsObject, settings.AnalyticsKey, "UA-XXXXXXXX-X"),
		},
	}, true
}
