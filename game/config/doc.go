// Package config loads named match presets (deck mode, turn length) from a
// directory of YAML files, with caching and a built-in fallback.
package config
