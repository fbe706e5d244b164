// Package config loads nexon settings from defaults, the base dir config file and NEXON_* variables.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "NEXON"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load resolves the settings. Precedence, highest first: NEXON_* environment
// variables, <base_dir>/config.yaml, built-in defaults.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("base_dir", domain.DefaultBaseDir())
	v.SetDefault("store", StoreFile)
	v.SetDefault("user", currentUser())
	v.SetDefault("log.json", false)
	v.SetDefault("resolver.strict", false)
	v.SetDefault("plugins", []string{})

	baseDir := expandHome(v.GetString("base_dir"))

	cfgPath := filepath.Join(baseDir, domain.ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "path", cfgPath)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "path", cfgPath)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigLoadFailed.Error())
	}
	// The config file lives inside the base dir, so it cannot move it.
	s.BaseDir = baseDir

	if err := validate.Struct(&s); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, err.Error()), "path", cfgPath)
	}
	return &s, nil
}

func currentUser() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(key); u != "" {
			return u
		}
	}
	return "unknown"
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return filepath.Clean(p)
}
