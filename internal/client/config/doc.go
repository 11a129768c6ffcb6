// Package config loads runtime configuration for the DraftKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      online status check interval (seconds)
//	-f string   local SQLite database file
//	-w int      push debounce interval (seconds)
//	-m string   remote backend, grpc or s3
//	-b -g -e -u -p   S3 bucket, region, endpoint, access key, secret key
//	-l string   log file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "database_path": "draftkeeper.db",
//	  "debounce_interval": "30s",
//	  "remote_backend": "s3",
//	  "s3_bucket": "drafts",
//	  "s3_endpoint": "http://127.0.0.1:9000",
//	  "log_file": "draftkeeper.log"
//	}
//
// Note: This package does not read environment variables directly; the S3
// backend falls back to the AWS SDK's default credential chain when no keys
// are configured.
package config
