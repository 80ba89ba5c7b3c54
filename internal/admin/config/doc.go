// Package config loads runtime configuration for the PopCue admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config or $POPCUE_CONFIG.
//  3. .env and .env.local in the working directory, then POPCUE_* variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the PopCue API
//	-d string   path of the local session database
//	-t int      notice lifetime (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so either "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.example.com",
//	  "state_path": "admin_state.db",
//	  "notice_ttl": "3s",
//	  "request_timeout": "30s",
//	  "log_level": "warn",
//	  "color": "auto"
//	}
package config
