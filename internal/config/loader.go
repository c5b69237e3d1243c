package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Init points v at the config file and environment. An explicit path wins;
// otherwise hashenc.yaml is searched in the working directory and $HOME.
func Init(v *viper.Viper, explicitPath string) {
	SetDefaults(v)
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Read reads the config file, if any. A missing file found by search is not
// an error; a missing explicit file is.
func Read(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("reading config file: %w", err)
}

// Load decodes the effective settings from v and validates them.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	s.Output.Format = strings.ToLower(strings.TrimSpace(s.Output.Format))
	if err := Validate(&s); err != nil {
		return nil, err
	}
	path, err := ExpandHome(s.Audit.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving audit path: %w", err)
	}
	s.Audit.Path = path
	return &s, nil
}

// Validate checks field values that viper cannot type-check.
func Validate(s *Settings) error {
	switch s.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid config: output.format must be %q or %q, got %q", FormatText, FormatJSON, s.Output.Format)
	}
	if s.Audit.Enabled && strings.TrimSpace(s.Audit.Path) == "" {
		return fmt.Errorf("invalid config: audit.path is required when audit.enabled is true")
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
