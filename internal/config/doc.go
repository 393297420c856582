// Package config provides configuration loading, merging and validation for
// the protocol catalog server and client.
//
// Server configuration is assembled from several sources. For every field
// the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (.json or .toml)
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
