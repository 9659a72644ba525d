// Package config holds the process-wide configuration store. Settings are
// resolved from multiple sources (YAML file, environment variables, CLI
// flags) with precedence: CLI flags > YAML config > Environment variables >
// Defaults. Free-form user-defined settings live alongside the typed toolkit
// settings and are handed out as defensive copies; mutating the store after
// bootstrap is undefined behavior.
package config
