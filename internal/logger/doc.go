// Package logger wraps zap for the puzzle runner.
//
// It keeps a global sugared logger writing to stderr (stdout is reserved
// for answers), carries scoped loggers through context.Context and parses
// level names coming from flags and settings.
package logger
