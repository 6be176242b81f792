package flags

// Package flags defines canonical CLI flag names shared across the CLI and
// engine. Keeping these as constants avoids drift between Cobra flag wiring
// and other code paths that reference flags by name.
// IMPORTANT: These are flag *names* without leading dashes.
const (
	// Targeting
	FlagInclude   = "include"
	FlagExclude   = "exclude"
	FlagRecursive = "recursive"
	FlagMaxFiles  = "max-files"
	FlagDryRun    = "dry-run"

	// Page
	FlagStylesheet = "stylesheet"
	FlagLang       = "lang"
	FlagTitle      = "title"

	// Config
	FlagConfig = "config"

	// Output
	FlagOutput              = "output"
	FlagClean               = "clean"
	FlagConsoleFormat       = "console-format"
	FlagConsoleFilterStatus = "console-filter-status"
	FlagReport              = "report"
	FlagOut                 = "out"
	FlagOutFormat           = "out-format"
	FlagEmit                = "emit"
	FlagNoConsole           = "no-console"

	// Runtime
	FlagConcurrency = "concurrency"
	FlagTimeout     = "timeout"
	FlagFailFast    = "fail-fast"
)
