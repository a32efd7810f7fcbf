// Package config loads engine configuration from a TOML file and
// watches it for changes.
//
// A missing config file is not an error; defaults apply. Reload
// notifications are best-effort and debounced, since editors produce
// bursts of write events for a single save.
package config
