// Package config loads, validates, and normalizes mesclador configuration.
//
// Configuration lives in a TOML file. Load resolves the file path (explicit
// flag, ~/.config/mesclador/config.toml, or ./mesclador.toml), applies
// defaults for anything unset, expands ~ in path fields, and validates the
// result. A missing config file is not an error; defaults apply.
package config
