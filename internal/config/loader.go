package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDirName is the directory under the user config dir that holds
// the high score, config overrides and screenshots.
const AppDirName = "FlappyBird"

// AppDir returns <user-config-dir>/FlappyBird. The directory is not created.
func AppDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot locate user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// LoadFlappy loads the game configuration.
// Search order: customPath -> <user-config-dir>/FlappyBird/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files found on the search path are overlaid on the defaults, so partial files are fine.
// A custom path that cannot be read or parsed is an error; other candidates are skipped silently.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		cfg := embeddedDefault()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryLoad(filepath.Join("configs", "flappy.yaml")); ok {
		return cfg, nil
	}

	return embeddedDefault(), nil
}

// tryLoad reads an optional config file; it reports false when the file is
// missing, unparsable or invalid.
func tryLoad(path string) (FlappyConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, false
	}
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, false
	}
	if cfg.Validate() != nil {
		return FlappyConfig{}, false
	}
	return cfg, true
}

func embeddedDefault() FlappyConfig {
	var cfg FlappyConfig
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Marshal renders the configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if the config dir is unavailable.
func userConfigPath(filename string) string {
	dir, err := AppDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, filename)
}
