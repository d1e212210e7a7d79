// Package config defines the application configuration structure and
// loading logic. Configuration is read from environment variables with the
// SLIDEGENIE_ prefix (and optionally a config.yaml file), then validated.
package config
