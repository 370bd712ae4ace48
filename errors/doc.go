// Package errors provides structured error handling for the scanning
// library core. It implements code-bearing error types for the three
// failure classes the core can hit: caller programming errors,
// resource-acquisition failures, and collaborator init/teardown
// failures. All of them are fatal; there is no recoverable tier.
package errors
