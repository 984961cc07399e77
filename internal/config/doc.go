// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config.yaml file. It provides
// type-safe access to the settings needed by the task server and the task
// client while keeping configuration details separate from business logic.
package config
