package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names for Load results.
const (
	SourceEmbedded = "embedded"
	SourceFallback = "builtin"
)

// Load loads the bounce configuration and reports where it came from.
// Search order: customPath -> ~/.bounce/configs/bounce.yaml -> ./configs/bounce.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps the
// embedded default. The result is validated.
func Load(customPath string) (BounceConfig, string, error) {
	base := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data, base)
		if err != nil {
			return base, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{"configs/bounce.yaml"}
	if userCfgPath := userConfigPath("bounce.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	// Unreadable or broken files on the search path are skipped, like the
	// embedded default would be if it failed.
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data, base); err == nil {
			return cfg, path, nil
		}
	}

	if err := base.Validate(); err != nil {
		return DefaultBounceConfig(), SourceFallback, nil
	}
	return base, SourceEmbedded, nil
}

// Parse decodes YAML on top of base and validates the result.
func Parse(data []byte, base BounceConfig) (BounceConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg BounceConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// embeddedDefault decodes the embedded YAML, falling back to the
// hard-coded defaults if the embed is broken.
func embeddedDefault() BounceConfig {
	var cfg BounceConfig
	if err := yaml.Unmarshal(defaultBounceYAML, &cfg); err != nil {
		return DefaultBounceConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", "configs", filename)
}
