// Package logging builds slog loggers for cratedig.
//
// Two output formats are supported: a compact console handler
// (timestamp LEVEL component: message key=value ...) and standard JSON.
// NewFromConfig tees output to stdout and a log file under the configured
// log directory.
package logging
