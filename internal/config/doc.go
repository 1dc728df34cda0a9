// Package config provides configuration loading, merging, and validation
// facilities for the booking client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (optionally seeded from a .env file)
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the full merged view
// and [GetClientConfig] for the validated client runtime configuration.
package config
