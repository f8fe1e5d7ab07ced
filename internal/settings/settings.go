package settings

import "sort"

// Default key and target of the primary database connection.
const (
	DefaultKey    = "default"
	DefaultTarget = "default"
)

// Well-known driver values.
const (
	DriverMySQL          = "mysql"
	NamespaceMySQLDriver = `Drupal\Core\Database\Driver\mysql`
)

// DatabaseConnection holds the connection parameters for one database target.
type DatabaseConnection struct {
	Database  string `json:"database" yaml:"database" validate:"required"`
	Username  string `json:"username" yaml:"username" validate:"required"`
	Password  string `json:"password" yaml:"password"`
	Host      string `json:"host" yaml:"host" validate:"required,hostname_rfc1123|ip"`
	Port      string `json:"port" yaml:"port" validate:"required,numeric"`
	Namespace string `json:"namespace" yaml:"namespace" validate:"required"`
	Driver    string `json:"driver" yaml:"driver" validate:"required,oneof=mysql pgsql sqlite"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// Databases maps a connection key to its targets, e.g. "default" -> "default".
type Databases map[string]map[string]DatabaseConnection

// Default returns the default/default connection if present.
func (d Databases) Default() (DatabaseConnection, bool) {
	targets, ok := d[DefaultKey]
	if !ok {
		return DatabaseConnection{}, false
	}
	conn, ok := targets[DefaultTarget]
	return conn, ok
}

// Keys returns the sorted connection keys.
func (d Databases) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Targets returns the sorted target names of a connection key.
func (d Databases) Targets(key string) []string {
	targets := make([]string, 0, len(d[key]))
	for t := range d[key] {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	return targets
}

// SingleDefault builds a Databases value holding only conn as default/default.
func SingleDefault(conn DatabaseConnection) Databases {
	return Databases{DefaultKey: {DefaultTarget: conn}}
}

// EnvAssignment is a derived environment variable the caller is expected to
// apply before handing control to downstream consumers.
type EnvAssignment struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// String renders the assignment as NAME=VALUE.
func (a EnvAssignment) String() string {
	return a.Name + "=" + a.Value
}

// Settings is everything a resolver can emit. Nil or zero fields mean the
// resolver left the framework default untouched.
type Settings struct {
	CI                  bool            `json:"ci,omitempty" yaml:"ci,omitempty"`
	Environment         []EnvAssignment `json:"environment,omitempty" yaml:"environment,omitempty"`
	Databases           Databases       `json:"databases,omitempty" yaml:"databases,omitempty"`
	TrustedHostPatterns []string        `json:"trusted_host_patterns,omitempty" yaml:"trusted_host_patterns,omitempty"`
	Config              Overrides       `json:"config,omitempty" yaml:"config,omitempty"`
}

// IsZero reports whether nothing was emitted.
func (s Settings) IsZero() bool {
	return !s.CI &&
		len(s.Environment) == 0 &&
		s.Databases == nil &&
		s.TrustedHostPatterns == nil &&
		len(s.Config) == 0
}

// Env returns the value of a derived environment variable. When the same name
// was assigned more than once, the last assignment wins.
func (s Settings) Env(name string) (string, bool) {
	for i := len(s.Environment) - 1; i >= 0; i-- {
		if s.Environment[i].Name == name {
			return s.Environment[i].Value, true
		}
	}
	return "", false
}

// EnvMap returns the derived environment as a map. The CI flag is included
// as CI=true when set.
func (s Settings) EnvMap(ciName string) map[string]string {
	out := make(map[string]string, len(s.Environment)+1)
	if s.CI {
		out[ciName] = "true"
	}
	for _, a := range s.Environment {
		out[a.Name] = a.Value
	}
	return out
}
