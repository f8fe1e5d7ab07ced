// Package environ provides immutable snapshots of process environment variables.
//
// Resolvers never call os.Getenv directly. They receive a Snapshot taken once at
// bootstrap (from the process, from a literal map in tests, or from dotenv files
// layered over the process environment), which keeps every resolution pure and
// testable in isolation.
//
// The package also centralizes the well-known variable names read by the
// resolvers, CI provider detection used for log metadata, and masking of values
// that may carry credentials.
package environ
