package safety

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the optional user configuration.
type Config struct {
	// Protected lists additional paths the guard must refuse to delete.
	Protected []string `yaml:"protected"`
}

// DefaultConfigPath returns the default config location under the user
// config directory, or "" when that directory cannot be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "rmdir", "config.yaml")
}

// LoadConfig reads a YAML config from path. A missing file (or an empty
// path) yields an empty config; a present-but-invalid file is an error,
// since silently ignoring a safety config would defeat its purpose.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}

	return cfg, nil
}
