// Package config loads optional user defaults for project creation.
package config

// Config holds user defaults applied when the matching create flags
// are omitted. All fields are optional.
type Config struct {
	// Author is the default copyright holder.
	// Env: PUBFORGE_AUTHOR
	Author string `mapstructure:"author"`

	// Organization is the default reverse-domain identifier.
	// Env: PUBFORGE_ORGANIZATION
	Organization string `mapstructure:"organization"`

	// Platforms is the default platform list for app and plugin kinds.
	// Env: PUBFORGE_PLATFORMS (comma-separated)
	Platforms string `mapstructure:"platforms"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: only with --verbose. Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps"`
}
