// Package api exposes resolved settings over HTTP.
//
// The router serves the settings resolved at startup (always with passwords
// redacted), answers trusted-host checks, and itself enforces the trusted host
// patterns on every request, the same way the Drupal front controller would.
package api
