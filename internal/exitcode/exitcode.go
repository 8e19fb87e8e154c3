// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (unknown command, bad args, no such item).
	UserError = 1

	// ConfigError indicates the configuration could not be loaded.
	ConfigError = 2

	// StoreError indicates the todo file could not be read or written.
	StoreError = 3
)
