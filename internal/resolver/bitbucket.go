package resolver

import (
	"github.com/sdmc-web/envsettings/internal/environ"
	"github.com/sdmc-web/envsettings/internal/settings"
)

// BitbucketCI detects a Bitbucket Pipelines build and points the site at the
// pipeline's MySQL service.
type BitbucketCI struct{}

var _ Resolver = BitbucketCI{}

func (BitbucketCI) Name() string { return "bitbucket" }

func (BitbucketCI) Description() string {
	return "Bitbucket Pipelines build (BITBUCKET_COMMIT is set)"
}

// Resolve fires whenever BITBUCKET_COMMIT is present, even when empty.
func (BitbucketCI) Resolve(env environ.Snapshot) (settings.Settings, bool) {
	if !env.Has(environ.EnvBitbucketCommit) {
		return settings.Settings{}, false
	}

	return settings.Settings{
		CI: true,
		Databases: settings.SingleDefault(settings.DatabaseConnection{
			Database:  "drupal",
			Username:  "drupal",
			Password:  "drupal",
			Host:      "127.0.0.1",
			Port:      "3306",
			Namespace: settings.NamespaceMySQLDriver,
			Driver:    settings.DriverMySQL,
			Prefix:    "",
		}),
	}, true
}
