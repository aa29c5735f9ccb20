// Package solver runs puzzle days: it loads settings, resolves each day's
// input, solves the requested days concurrently, prints the answers in day
// order and appends them to the answers history.
package solver
