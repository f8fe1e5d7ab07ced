// Package settings defines the values a settings resolver emits for the Drupal
// bootstrap: database connections, trusted host patterns, configuration
// overrides, derived environment variables and the CI flag.
//
// A Settings value is assembled once per resolution and then only read. Helpers
// in this package compile trusted host patterns the way the framework applies
// them, redact credentials for display and audit values that look like
// non-production placeholders.
package settings
