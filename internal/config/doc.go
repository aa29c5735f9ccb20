// Package config defines the runner settings and provides helpers to load,
// validate and save them in YAML format.
//
// The Config type points at the directory holding puzzle inputs, the file
// where answers are recorded and the default log level.
package config
