// Package config provides configuration loading, merging, and validation
// for the todo client and the local stand-in server.
//
// Configuration is assembled from the following sources, each one
// overriding the non-zero fields of the previous:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetClientConfig] and [GetServerConfig]; both derive
// a validated view from [GetStructuredConfig].
package config
