// Package config loads runtime configuration for the rfidcredits CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: RFIDCREDITS_SERVER, RFIDCREDITS_TIMEOUT (Go duration),
//     RFIDCREDITS_TAG_SOURCE, RFIDCREDITS_LOG_LEVEL. A ./.env file is loaded
//     first if present; variables already set are not overridden.
//  3. Optional JSON file selected via -c / -config or RFIDCREDITS_CONFIG.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   server base URL
//	-t int      request timeout (seconds)
//	-r string   tag reader path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000",
//	  "request_timeout": "10s",
//	  "tag_source": "/dev/ttyUSB0",
//	  "log_level": "info"
//	}
package config
