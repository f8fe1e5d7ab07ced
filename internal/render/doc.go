// Package render writes resolved settings in the formats their consumers
// read: JSON and YAML for tooling, a PHP include for the Drupal bootstrap, and
// a dotenv file for the derived environment variables.
package render
