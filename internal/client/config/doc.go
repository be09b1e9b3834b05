// Package config loads runtime configuration for the AiVantu CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables prefixed AIVANTU_, after loading a .env file
//     from the working directory if one exists.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string   backend base URL, e.g. http://127.0.0.1:5000
//	-i int      online status check interval (seconds)
//	-u string   user email used when not signed in
//	-d string   path of the local SQLite database
//	-o string   directory downloads are saved to
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "3s" or integer
// nanoseconds. Absent keys keep their previous value:
//
//	{
//	  "server_base_url": "http://127.0.0.1:5000",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10m",
//	  "user_email": "demo@aivantu.com",
//	  "lang": "hi",
//	  "database_path": "aivantu.db",
//	  "download_dir": "downloads",
//	  "log_level": "info",
//	  "currency": "INR",
//	  "s3_bucket": "",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "",
//	  "s3_access_key": "",
//	  "s3_secret_key": ""
//	}
package config
