package environ

// CI provider names returned by DetectCI.
const (
	ProviderBitbucket = "bitbucket"
	ProviderGitHub    = "github"
	ProviderGitLab    = "gitlab"
	ProviderCircleCI  = "circleci"
	ProviderJenkins   = "jenkins"
	ProviderTravis    = "travis"
	ProviderGeneric   = "generic"
)

// CIInfo describes the CI run a snapshot was taken in.
type CIInfo struct {
	Provider string
	Commit   string
}

// DetectCI reports which CI provider, if any, the snapshot belongs to.
// Provider-specific variables are checked before the generic CI flag.
func DetectCI(s Snapshot) (CIInfo, bool) {
	switch {
	case s.Has(EnvBitbucketCommit):
		return CIInfo{Provider: ProviderBitbucket, Commit: s.Get(EnvBitbucketCommit)}, true
	case s.Get(EnvGitHubActions) != "":
		return CIInfo{Provider: ProviderGitHub, Commit: s.Get(EnvGitHubSHA)}, true
	case s.Get(EnvGitLabCI) != "":
		return CIInfo{Provider: ProviderGitLab, Commit: s.Get(EnvGitLabSHA)}, true
	case s.Get(EnvCircleCI) != "":
		return CIInfo{Provider: ProviderCircleCI, Commit: s.Get(EnvCircleSHA)}, true
	case s.Get(EnvJenkinsURL) != "":
		return CIInfo{Provider: ProviderJenkins}, true
	case s.Get(EnvTravisCI) != "":
		return CIInfo{Provider: ProviderTravis, Commit: s.Get(EnvTravisCommit)}, true
	case s.Get(EnvCI) != "":
		return CIInfo{Provider: ProviderGeneric}, true
	}
	return CIInfo{}, false
}

// IsCI returns true if the snapshot looks like a CI environment.
func IsCI(s Snapshot) bool {
	_, ok := DetectCI(s)
	return ok
}
