package flags

// Package flags defines canonical CLI flag names shared across the CLI and engine.
// Keeping these as constants helps avoid drift between Cobra flag wiring and other
// code paths that need to reference flags (e.g. config-file precedence checks).
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Header.Owner, flags.FlagOwner, "", "...")
//	arg := "--" + flags.FlagOwner
const (
	// Targeting
	FlagRoot    = "root"
	FlagDirs    = "dirs"
	FlagExt     = "ext"
	FlagExclude = "exclude"

	// Header
	FlagYear  = "year"
	FlagOwner = "owner"

	// Mode
	FlagCheck = "check"

	// Config
	FlagConfig = "config"

	// Output
	FlagConsoleFormat       = "console-format"
	FlagConsoleFilterStatus = "console-filter-status"
	FlagReport              = "report"
	FlagOut                 = "out"
	FlagOutFormat           = "out-format"
	FlagEmit                = "emit"
	FlagNoConsole           = "no-console"
)
