// Package logger provides a small tagged console logger.
//
// # Output
//
// Every emitted call writes a single line to the configured sink (stdout by default):
//
//	[2026-10-15T09:30:00.000Z] - INFO - My App - #server: listening on 8080
//
// The line is wrapped in the level color unless Settings.SetColorize(false)
// is used. Without an app name the middle part is a single "-".
//
// # Usage
//
// Create one Logger per module:
//
//	log := logger.New("server")
//	log.Info("listening on {1}", 8080)
//	log.Error("request failed: {1}", err)
//
// Tokens {1}, {2}, ... are replaced by the matching parameter. Non-empty maps,
// structs, slices and arrays are printed as JSON, indented unless
// Settings.SetPrettyJSON(false) is used.
//
// Each call returns a Record describing what was written, which tests can
// assert on instead of parsing console output.
//
// # Configuration
//
// All loggers created with New read logger.Globals on every call, so changes
// apply to existing loggers immediately:
//
//	logger.Globals.SetAppName("My App")
//	logger.Globals.SetMinimumLevel(logger.WarnLevel)
//	logger.Globals.SetColor(logger.DebugLevel, logger.BrightCyan)
//
// Use NewWithSettings to bind a logger to its own Settings.
//
// # Level Filtering
//
// Levels are ordered verbose < info < debug < warn < success < error. Calls
// below the minimum level are skipped. The minimum level can also come from
// the environment or a dotenv file:
//
//	SLIMLOG_LEVEL=warn SLIMLOG_APP_NAME=api ./myapp
//
// after calling logger.LoadEnv() at startup.
package logger
