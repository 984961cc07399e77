// Package ciutil provides helpers for running tests consistently on developer
// machines and in CI: CI detection, environment variable fallbacks and masking
// of secrets before they reach logs.
package ciutil
