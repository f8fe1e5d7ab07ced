package settings

import (
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
)

// ErrInvalidHostPattern is returned when a trusted host pattern does not compile.
var ErrInvalidHostPattern = errors.New("invalid trusted host pattern")

// TrustedHosts is a compiled list of trusted host patterns.
//
// Patterns are matched case-insensitively against the request host without
// its port, and are not implicitly anchored. An empty list trusts every host,
// which is what the framework does when no patterns are configured.
type TrustedHosts struct {
	patterns []string
	compiled []*regexp.Regexp
}

// CompileHosts compiles the given patterns in order.
func CompileHosts(patterns []string) (*TrustedHosts, error) {
	th := &TrustedHosts{
		patterns: make([]string, 0, len(patterns)),
		compiled: make([]*regexp.Regexp, 0, len(patterns)),
	}
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidHostPattern, p, err)
		}
		th.patterns = append(th.patterns, p)
		th.compiled = append(th.compiled, re)
	}
	return th, nil
}

// Patterns returns the source patterns.
func (t *TrustedHosts) Patterns() []string {
	out := make([]string, len(t.patterns))
	copy(out, t.patterns)
	return out
}

// Empty reports whether no patterns are configured.
func (t *TrustedHosts) Empty() bool {
	return len(t.compiled) == 0
}

// Match reports whether host is trusted and which pattern accepted it.
// With no patterns configured every host is trusted and pattern is "".
func (t *TrustedHosts) Match(host string) (pattern string, ok bool) {
	if t.Empty() {
		return "", true
	}
	h := StripPort(host)
	if h == "" {
		return "", false
	}
	for i, re := range t.compiled {
		if re.MatchString(h) {
			return t.patterns[i], true
		}
	}
	return "", false
}

// StripPort removes a trailing :port and IPv6 brackets from a Host header
// value and lowercases the result.
func StripPort(host string) string {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	} else {
		host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	}
	return strings.ToLower(strings.TrimSuffix(host, "."))
}
