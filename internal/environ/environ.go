package environ

import (
	"os"
	"sort"
	"strings"
)

// Snapshot is a read-only copy of a set of environment variables.
// The zero value is an empty environment.
type Snapshot struct {
	vars map[string]string
}

// FromOS captures the current process environment.
func FromOS() Snapshot {
	return FromEnviron(os.Environ())
}

// FromEnviron builds a snapshot from KEY=VALUE pairs as returned by os.Environ.
// Entries without "=" are treated as variables set to the empty string; for
// duplicate keys the last entry wins, matching os.Getenv.
func FromEnviron(environ []string) Snapshot {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if kv == "" {
			continue
		}
		key, value, _ := strings.Cut(kv, "=")
		if key == "" {
			// Windows-style "=C:=C:\" entries
			continue
		}
		vars[key] = value
	}
	return Snapshot{vars: vars}
}

// FromMap builds a snapshot from a map. The map is copied.
func FromMap(m map[string]string) Snapshot {
	vars := make(map[string]string, len(m))
	for k, v := range m {
		vars[k] = v
	}
	return Snapshot{vars: vars}
}

// Lookup returns the value of key and whether it is present at all.
// A variable set to the empty string is present.
func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// Get returns the value of key, or "" when it is absent.
func (s Snapshot) Get(key string) string {
	return s.vars[key]
}

// Has reports whether key is present, regardless of its value.
func (s Snapshot) Has(key string) bool {
	_, ok := s.vars[key]
	return ok
}

// Equals reports whether key is present and exactly equal to value.
// The comparison is case-sensitive.
func (s Snapshot) Equals(key, value string) bool {
	v, ok := s.vars[key]
	return ok && v == value
}

// Len returns the number of variables in the snapshot.
func (s Snapshot) Len() int {
	return len(s.vars)
}

// Keys returns the sorted variable names.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.vars))
	for k := range s.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// With returns a new snapshot with the given variables set on top of s.
// s itself is not modified.
func (s Snapshot) With(overlay map[string]string) Snapshot {
	vars := make(map[string]string, len(s.vars)+len(overlay))
	for k, v := range s.vars {
		vars[k] = v
	}
	for k, v := range overlay {
		vars[k] = v
	}
	return Snapshot{vars: vars}
}

// Environ returns the snapshot as sorted KEY=VALUE pairs, suitable for
// exec.Cmd.Env.
func (s Snapshot) Environ() []string {
	keys := s.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+s.vars[k])
	}
	return out
}
