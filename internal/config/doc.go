// Package config loads the envsettings tool configuration from an optional
// YAML file, ENVSETTINGS_* environment variables and command-line flags, and
// validates it. It configures the tool itself (logging, output, HTTP server);
// the Drupal settings the tool resolves never pass through this package.
package config
