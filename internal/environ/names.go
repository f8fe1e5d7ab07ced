package environ

// Environment variable names read or derived by the settings resolvers.
const (
	// EnvBitbucketCommit is set by Bitbucket Pipelines for every build.
	EnvBitbucketCommit = "BITBUCKET_COMMIT"

	// EnvSiteEnv selects the hosting environment of the site (e.g. "stage").
	EnvSiteEnv = "SDMC_ENV"

	// EnvSiteEnvironment is the Acquia-style environment name derived for
	// downstream settings includes.
	EnvSiteEnvironment = "AH_SITE_ENVIRONMENT"

	// EnvCI is the generic "running in CI" flag.
	EnvCI = "CI"
)

// CI provider detection variables
const (
	EnvBitbucketBuild = "BITBUCKET_BUILD_NUMBER"
	EnvGitHubActions  = "GITHUB_ACTIONS"
	EnvGitHubSHA      = "GITHUB_SHA"
	EnvGitLabCI       = "GITLAB_CI"
	EnvGitLabSHA      = "CI_COMMIT_SHA"
	EnvCircleCI       = "CIRCLECI"
	EnvCircleSHA      = "CIRCLE_SHA1"
	EnvJenkinsURL     = "JENKINS_URL"
	EnvTravisCI       = "TRAVIS"
	EnvTravisCommit   = "TRAVIS_COMMIT"
)

// Values of EnvSiteEnv and EnvSiteEnvironment understood by the resolvers.
const (
	SiteEnvStage     = "stage"
	SiteEnvironStage = "stg"
)
