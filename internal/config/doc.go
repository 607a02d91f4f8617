// Package config loads and validates application settings from environment
// variables and an optional config file. It gives the rest of the server
// type-safe access to its configuration while keeping the loading mechanics
// out of business logic.
package config
