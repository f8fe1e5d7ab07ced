// Package logger provides structured logging for the envsettings tool.
//
// It uses Go's standard library log/slog package. Setup builds a JSON or text
// handler on a caller-supplied writer (stderr for the CLI, so stdout stays
// machine-readable) and, when the environment snapshot is a CI run, wraps it in
// a CIHandler that stamps every record with the CI provider and commit.
package logger
