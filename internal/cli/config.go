package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/addressbook/internal/lookup"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyFile          = "file"
	cfgKeyDataDir       = "data_dir"
	cfgKeyLookupBaseURL = "lookup.base_url"
	cfgKeyLookupTimeout = "lookup.timeout"
	cfgKeyLookupCache   = "lookup.cache"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	File    string       `yaml:"file,omitempty"`
	DataDir string       `yaml:"data_dir,omitempty"`
	Lookup  lookupConfig `yaml:"lookup"`
}

type lookupConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
	Cache   bool   `yaml:"cache"`
}

func defaultConfigFile() configFile {
	return configFile{
		Lookup: lookupConfig{
			BaseURL: lookup.DefaultBaseURL,
			Timeout: lookup.DefaultTimeout.String(),
			Cache:   true,
		},
	}
}

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml or config directory is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLookupBaseURL, lookup.DefaultBaseURL)
	v.SetDefault(cfgKeyLookupTimeout, lookup.DefaultTimeout)
	v.SetDefault(cfgKeyLookupCache, true)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// lookupTimeout returns the configured timeout, falling back to the default
// for unparsable values.
func lookupTimeout(v *viper.Viper) time.Duration {
	d := v.GetDuration(cfgKeyLookupTimeout)
	if d <= 0 {
		return lookup.DefaultTimeout
	}
	return d
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(configDir, storageFile string) (bool, error) {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfigFile()
	cfg.File = storageFile

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
