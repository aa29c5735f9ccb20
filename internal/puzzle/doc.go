// Package puzzle holds what every day's solver shares: the Solver contract,
// a registry keyed by day number, line splitting, checked unsigned
// arithmetic and the common error vocabulary.
//
// Each day lives in its own subpackage (day01, day02, ...) and depends only
// on this package.
package puzzle
