// Package log builds the slog loggers used by wordhist.
//
// Loggers write warnings and errors by default and everything down to
// debug level in verbose mode. Records pass through PathHandler, which
// shortens paths under the user's home directory to "~" so that log lines
// stay readable and can be shared without exposing the account name.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Warn("spreadsheet export skipped", "path", "/home/alice/out.ods")
//	// level=WARN msg="spreadsheet export skipped" path=~/out.ods
package log
