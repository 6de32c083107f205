// Package config seeds a registry from the process environment and an
// optional TOML file before the first log call.
//
// Recognized settings, as TOML keys and environment variables:
//
//	level           RADLOG_LEVEL            global threshold
//	console_level   RADLOG_CONSOLE_LEVEL    console backend threshold
//	file_level      RADLOG_FILE_LEVEL       file backend threshold
//	file            RADLOG_FILE             CSV log file path (enables the file backend)
//	console_disable RADLOG_CONSOLE_DISABLE  drop the console backend entirely
//
// Environment variables override file values. Levels are names
// ("warning") or digits ("3"); anything else fails with
// core.ErrInvalidLevel and leaves the registry untouched.
//
// Watch re-applies the threshold settings whenever the file changes,
// so log verbosity can be tuned on a running process.
package config
