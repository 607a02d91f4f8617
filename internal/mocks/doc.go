// Package mocks provides hand-written test doubles for the application's
// store and auth interfaces. Each mock accepts optional function fields to
// override behavior per test and falls back to a simple in-memory default.
package mocks
