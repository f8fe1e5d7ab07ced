// Package resolver turns an environment snapshot into Drupal settings.
//
// Each [Resolver] guards one hosting environment (a CI build, the stage box)
// behind a condition on the snapshot. When the condition does not hold the
// resolver emits nothing; that is the normal "keep the framework defaults"
// path and never an error. A [Set] runs its resolvers once, in order, and
// layers the matched fragments with [settings.Layer].
package resolver
