package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default config location: ~/.pubforge/config.yaml.
const (
	configDirName  = ".pubforge"
	configFileName = "config.yaml"

	// EnvConfig overrides the config file path.
	EnvConfig = "PUBFORGE_CONFIG"

	envPrefix = "PUBFORGE"
)

// LoaderOptions controls config loading.
type LoaderOptions struct {
	// ConfigFlag is the --config flag value, highest precedence for
	// the file location.
	ConfigFlag string
}

// Load reads user defaults with precedence: env vars over file values.
// A missing file at the default location is not an error; a missing
// explicitly-requested file, or a malformed file anywhere, is.
func Load(opts LoaderOptions) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	path, explicit := resolvePath(opts)

	if path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr != nil && explicit:
			return nil, fmt.Errorf("config file %s: %w", path, statErr)
		case statErr == nil:
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// AutomaticEnv does not feed Unmarshal for keys absent from the
	// file; resolve the scalar defaults explicitly so env-only setups
	// work.
	if cfg.Author == "" {
		cfg.Author = v.GetString("author")
	}
	if cfg.Organization == "" {
		cfg.Organization = v.GetString("organization")
	}
	if cfg.Platforms == "" {
		cfg.Platforms = v.GetString("platforms")
	}

	return &cfg, nil
}

// resolvePath picks the config file path: flag, then env, then the
// default location. explicit marks user-chosen paths, which must exist.
func resolvePath(opts LoaderOptions) (path string, explicit bool) {
	if opts.ConfigFlag != "" {
		return opts.ConfigFlag, true
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, true
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, configDirName, configFileName), false
}
