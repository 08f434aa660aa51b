// Package config loads runtime configuration for the induction portal.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//  4. Environment (see parseEnv), for the assistant API key only.
//
// Supported flags
//
//	-d string   path to the local state database file
//	-e string   base URL of the assistant service
//	-m string   assistant model identifier
//	-t int      assistant request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "database_path": "portal.db",
//	  "assistant_endpoint": "https://generativelanguage.googleapis.com",
//	  "assistant_model": "gemini-3-flash-preview",
//	  "assistant_timeout": 30
//	}
//
// The assistant API key is never read from flags or JSON; set the API_KEY
// environment variable (a .env file is honored at startup).
package config
