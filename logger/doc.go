// Package logger provides structured logging for the scanning library
// using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. The lifecycle core
// logs through a package-level global that hosts may replace.
package logger
