// Package cli defines the pinlock command tree and maps application
// errors to process exit codes: 1 for operational failures, 2 for usage
// errors, 3 for validation or pin-check failures. The distinct codes let
// CI tell a broken pin file apart from a broken invocation.
package cli
