// Package config defines the application configuration structure and its
// loading rules. Settings come from defaults, an optional YAML file, and
// PORTAL_* environment variables, in increasing order of precedence.
package config
