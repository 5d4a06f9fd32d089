package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/springpress/create-springpress-app/internal/branding"
	"github.com/springpress/create-springpress-app/internal/manifest"
	"github.com/springpress/create-springpress-app/internal/platform"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood in the config file.
const (
	KeyManifestVersion = "manifest.version"
	KeyManifestPrivate = "manifest.private"
	KeyColor           = "color"
	KeyLogLevel        = "log.level"
)

// Settings is the resolved configuration.
type Settings struct {
	ManifestVersion string
	ManifestPrivate bool
	Color           string
	LogLevel        slog.Level
}

// Dir returns the config directory. SPRINGPRESS_HOME overrides ~/.springpress.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads the config file, if present, and the environment.
func Load() (*Settings, error) {
	return LoadFile(FilePath())
}

// LoadFile is Load with an explicit config file path. A missing file is not
// an error.
func LoadFile(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault(KeyManifestVersion, manifest.DefaultVersion)
	v.SetDefault(KeyManifestPrivate, manifest.DefaultPrivate)
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyLogLevel, "warn")

	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	exists, err := platform.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}
	if exists {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	s := &Settings{
		ManifestVersion: v.GetString(KeyManifestVersion),
		ManifestPrivate: v.GetBool(KeyManifestPrivate),
		Color:           v.GetString(KeyColor),
	}

	if err := manifest.CheckVersion(s.ManifestVersion); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyManifestVersion, err)
	}
	if err := s.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	return s, nil
}
