// Package config loads and validates image-vault configuration from TOML.
//
// Defaults apply underneath any loaded file, tilde paths expand against the
// user's home directory, and validation rejects out-of-range render settings
// up front so downstream code receives usable values.
package config
