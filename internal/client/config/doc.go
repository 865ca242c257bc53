// Package config loads runtime configuration for the packmate CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (-env, or ./.env when present) and the process
//     environment: PACKMATE_API_URL, PACKMATE_DB_PATH, PACKMATE_LOG_LEVEL,
//     PACKMATE_LOG_FORMAT. Process variables win over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API
//	-i int      online status check interval (seconds)
//	-t int      request timeout (seconds)
//	-d string   local database path
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "api_url": "http://localhost:5000",
//	  "online_check_interval": "3s",
//	  "request_timeout": "15s",
//	  "db_path": "packmate.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
