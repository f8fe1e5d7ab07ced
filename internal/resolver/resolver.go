package resolver

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sdmc-web/envsettings/internal/environ"
	"github.com/sdmc-web/envsettings/internal/settings"
)

// ErrUnknownProfile is returned when a resolver name is not part of a Set.
var ErrUnknownProfile = errors.New("unknown settings profile")

// Resolver emits settings for one environment.
type Resolver interface {
	// Name returns the short identifier (e.g. "stage").
	Name() string

	// Description returns a one-line human readable summary.
	Description() string

	// Resolve returns the settings for env and true when the resolver's
	// condition holds, or a zero Settings and false otherwise.
	Resolve(env environ.Snapshot) (settings.Settings, bool)
}

// Match is the output of one resolver whose condition held.
type Match struct {
	Profile  string            `json:"profile" yaml:"profile"`
	Settings settings.Settings `json:"settings" yaml:"settings"`
}

// Result holds every match of one resolution, in resolver order.
type Result struct {
	Matches []Match `json:"matches" yaml:"matches"`
}

// Matched returns the names of the resolvers that fired.
func (r Result) Matched() []string {
	names := make([]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		names = append(names, m.Profile)
	}
	return names
}

// Settings layers all matches in order. With no match it is the zero value.
func (r Result) Settings() settings.Settings {
	var out settings.Settings
	for _, m := range r.Matches {
		out = settings.Layer(out, m.Settings)
	}
	return out
}

// Set is an ordered collection of resolvers.
type Set struct {
	resolvers []Resolver
	logger    *slog.Logger
}

// NewSet creates a Set. A nil logger falls back to slog.Default().
// When two resolvers share a name only the first one is kept.
func NewSet(logger *slog.Logger, resolvers ...Resolver) *Set {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Set{logger: logger}
	seen := make(map[string]struct{}, len(resolvers))
	for _, r := range resolvers {
		if _, dup := seen[r.Name()]; dup {
			continue
		}
		seen[r.Name()] = struct{}{}
		s.resolvers = append(s.resolvers, r)
	}
	return s
}

// Default returns a new Set with the built-in resolvers in settings include
// order: the Bitbucket CI resolver first, then the stage resolver.
func Default(logger *slog.Logger) *Set {
	return NewSet(logger, BitbucketCI{}, Stage{})
}

// Names returns the resolver names in order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.resolvers))
	for _, r := range s.resolvers {
		names = append(names, r.Name())
	}
	return names
}

// Resolvers returns the resolvers in order.
func (s *Set) Resolvers() []Resolver {
	out := make([]Resolver, len(s.resolvers))
	copy(out, s.resolvers)
	return out
}

// Lookup returns the resolver with the given name.
func (s *Set) Lookup(name string) (Resolver, error) {
	for _, r := range s.resolvers {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownProfile, name, strings.Join(s.Names(), ", "))
}

// Only returns a new Set restricted to the named resolvers. The original
// order of s is kept. With no names, s itself is returned.
func (s *Set) Only(names ...string) (*Set, error) {
	if len(names) == 0 {
		return s, nil
	}
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, err := s.Lookup(n); err != nil {
			return nil, err
		}
		want[n] = struct{}{}
	}

	var kept []Resolver
	for _, r := range s.resolvers {
		if _, ok := want[r.Name()]; ok {
			kept = append(kept, r)
		}
	}
	return NewSet(s.logger, kept...), nil
}

// Resolve runs every resolver once against env.
func (s *Set) Resolve(env environ.Snapshot) Result {
	var res Result
	for _, r := range s.resolvers {
		out, ok := r.Resolve(env)
		s.logger.Debug("settings profile evaluated",
			"profile", r.Name(),
			"matched", ok,
		)
		if !ok {
			continue
		}
		res.Matches = append(res.Matches, Match{Profile: r.Name(), Settings: out})
	}

	if len(res.Matches) == 0 {
		s.logger.Info("no settings profile matched, keeping framework defaults")
	} else {
		s.logger.Info("settings resolved", "profiles", res.Matched())
	}
	return res
}
